package process

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"inikit/state"
)

// Get prints the value of a single key to STDOUT. Continuation lines are
// unfolded, the value is printed the way the program sees it.
func Get(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("get")

	if cmd.Args().Len() < 3 {
		return errors.New("usage: get FILE SECTION KEY (use '' for the default section)")
	}
	fname, section, key := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	env.Boundary = resolveBoundary(env, 0)

	f, err := loadFile(env, log, fname)
	if err != nil {
		return err
	}
	v, ok := f.Get(section, key)
	if !ok {
		return fmt.Errorf("key '%s' not found in section '%s' of '%s'", key, section, fname)
	}

	_, err = fmt.Fprintln(os.Stdout, v.String())
	return err
}

// Set updates (or creates) a single key and writes the file back. The
// rest of the file - order, comments, folding of untouched values - is
// left exactly as it was.
func Set(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("set")

	if cmd.Args().Len() < 4 {
		return errors.New("usage: set FILE SECTION KEY VALUE (use '' for the default section)")
	}
	fname, section, key, val := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2), cmd.Args().Get(3)
	if cmd.Args().Len() > 4 {
		log.Warn("Malformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[4:]))
	}

	env.Boundary = resolveBoundary(env, int(cmd.Int("width")))

	f, err := loadFile(env, log, fname)
	if err != nil {
		return err
	}
	if err := f.Set(section, key, []byte(val), env.Boundary); err != nil {
		return fmt.Errorf("unable to set '%s' in section '%s' of '%s': %w", key, section, fname, err)
	}

	log.Info("Updating key", zap.String("file", fname), zap.String("section", section), zap.String("key", key))
	return writeFile(fname, render(env, f))
}
