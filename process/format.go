// Package process implements actions behind program subcommands.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"inikit/config"
	"inikit/ini"
	"inikit/state"
)

// resolveBoundary picks the fold width: explicit request wins, then
// configuration, then the width of the terminal we are writing to.
func resolveBoundary(env *state.LocalEnv, requested int) int {
	if requested > 0 {
		return requested
	}
	if env.Cfg != nil && env.Cfg.Format.Boundary > 0 {
		return env.Cfg.Format.Boundary
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return ini.DefaultBoundary
}

// Format reads configuration file(s), refolds all values to the requested
// width and writes the result back (or to STDOUT).
func Format(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fmt")

	if cmd.Args().Len() == 0 {
		return errors.New("no input files have been specified")
	}

	env.Boundary = resolveBoundary(env, int(cmd.Int("width")))
	env.Overwrite = cmd.Bool("write")

	env.Sort = env.Cfg.Format.Sort
	if name := cmd.String("sort"); len(name) > 0 {
		if env.Sort, err = config.ParseSortMode(name); err != nil {
			log.Warn("Unknown sort mode requested, ignoring", zap.String("sort", name), zap.Error(err))
			env.Sort = env.Cfg.Format.Sort
		}
	}

	files := cmd.Args().Slice()

	output := cmd.String("output")
	if len(output) > 0 && len(files) != 1 {
		return errors.New("--output can only be used with a single input file")
	}

	log.Info("Formatting starting",
		zap.Strings("files", files),
		zap.Int("boundary", env.Boundary),
		zap.Stringer("sort", env.Sort),
		zap.Bool("in place", env.Overwrite))
	defer func(start time.Time) {
		log.Info("Formatting completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if !env.Overwrite {
		// STDOUT (or --output) keeps command line order
		for _, fname := range files {
			if err := formatFile(env, log, fname, output); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, fname := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return formatFile(env, log, fname, "")
		})
	}
	return g.Wait()
}

func formatFile(env *state.LocalEnv, log *zap.Logger, fname, output string) error {
	f, err := loadFile(env, log, fname)
	if err != nil {
		return err
	}

	if err := f.Refold(env.Boundary); err != nil {
		return fmt.Errorf("unable to fold values in '%s': %w", fname, err)
	}
	switch {
	case env.Sort.Keys():
		f.Sort()
	case env.Sort.Sections():
		f.SortSections()
	}

	data := render(env, f)
	switch {
	case env.Overwrite:
		return writeFile(fname, data)
	case len(output) > 0:
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("unable to write '%s': %w", output, err)
		}
		return nil
	default:
		_, err := os.Stdout.Write(data)
		return err
	}
}

// render serializes the file using the configured line terminator.
// Values never contain line breaks so blanket replacement is safe.
func render(env *state.LocalEnv, f *ini.File) []byte {
	data := f.Serialize()
	if env.Cfg != nil && env.Cfg.Format.Terminator == "crlf" {
		data = bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
	}
	return data
}

// loadFile parses a single configuration file honoring program settings
// and stores troubleshooting artifacts when debug report was requested.
func loadFile(env *state.LocalEnv, log *zap.Logger, fname string) (*ini.File, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", fname, err)
	}
	text, err := ini.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", fname, err)
	}

	p := ini.NewParser(log)
	p.Boundary = env.Boundary
	if env.Cfg != nil {
		p.StopOnError = env.Cfg.Format.StopOnError
	}
	f, err := p.Parse(text, fname)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", fname, err)
	}

	if env.Rpt != nil {
		// keyed by the full path so inputs with the same base name from
		// different directories do not collide in the report
		name := reportName(fname)
		env.Rpt.Store("input/"+name, fname)
		env.Rpt.StoreData("structure/"+name+".txt", []byte(f.DebugDump()))
	}
	return f, nil
}

func reportName(fname string) string {
	return strings.TrimLeft(filepath.ToSlash(fname), "/")
}

// writeFile replaces fname content keeping its permissions. A temporary
// file in the same directory is renamed over the original so readers
// never observe a partially written file.
func writeFile(fname string, data []byte) error {
	info, err := os.Stat(fname)
	if err != nil {
		return fmt.Errorf("unable to stat '%s': %w", fname, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fname), filepath.Base(fname)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file for '%s': %w", fname, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write '%s': %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to set permissions on '%s': %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to close '%s': %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), fname); err != nil {
		return fmt.Errorf("unable to replace '%s': %w", fname, err)
	}
	return nil
}
