package ini

import (
	"bytes"
	"fmt"

	parse "github.com/tdewolff/parse/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"inikit/ini/comment"
	"inikit/ini/value"
)

// Parser parses INI text into a File.
//
// Grammar, line oriented: "[name]" opens a section, "key = value" starts a
// key, a line beginning with a space or tab directly after a key line is a
// continuation of its value, lines beginning with ';' or '#' and blank
// lines form comment runs attached to the next key or section header.
type Parser struct {
	// Boundary is the fold width recorded on parsed values, 0 means
	// DefaultBoundary.
	Boundary int
	// StopOnError makes Parse return at the first malformed line instead
	// of collecting all errors.
	StopOnError bool

	log *zap.Logger
}

// NewParser creates a new INI parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{Boundary: DefaultBoundary, log: log.Named("ini-parser")}
}

// Parse parses INI text into a File. The optional source parameter
// identifies what is being parsed (for debug logging and nothing else).
// In collecting mode all malformed lines are reported in one combined
// error and no file is returned.
func (p *Parser) Parse(data []byte, source ...string) (*File, error) {
	var src string
	if len(source) > 0 {
		src = source[0]
	}
	if src != "" {
		p.log.Debug("Parsing INI", zap.String("source", src), zap.Int("bytes", len(data)))
	}

	boundary := p.Boundary
	if boundary < 1 {
		boundary = DefaultBoundary
	}

	f := NewFile()
	var (
		errs    error
		section = f.Section("")
		pending *comment.Comment
		key     string
		keyLine int
		frags   *value.Fragments
	)

	takeComment := func() *comment.Comment {
		c := pending
		pending = nil
		return c
	}

	// fold accumulated fragments into a value and store it under the
	// current key
	flush := func() error {
		if key == "" {
			return nil
		}
		v, err := value.FromFragments(frags, keyLine, value.OriginFile, len(key), boundary, takeComment())
		if err != nil {
			return err
		}
		section.put(key, v)
		key, frags = "", nil
		return nil
	}

	addComment := func(line []byte) {
		if pending == nil {
			pending = comment.New()
		}
		// classification guarantees the line is a valid comment
		_ = pending.Append(line)
	}

	fail := func(n int, format string, args ...any) bool {
		err := fmt.Errorf("line %d: "+format, append([]any{n}, args...)...)
		p.log.Debug("Malformed line", zap.String("source", src), zap.Error(err))
		errs = multierr.Append(errs, err)
		return p.StopOnError
	}

	input := parse.NewInputBytes(data)
	for n := 1; ; n++ {
		line, more := nextLine(input)
		if !more && len(line) == 0 {
			break
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		switch {
		case len(bytes.Trim(line, " \t")) == 0:
			// blank line ends any open value and joins the comment run
			if err := flush(); err != nil {
				return nil, err
			}
			addComment(nil)

		case line[0] == ';' || line[0] == '#':
			if err := flush(); err != nil {
				return nil, err
			}
			addComment(line)

		case line[0] == ' ' || line[0] == '\t':
			if key == "" {
				if fail(n, "continuation line without a key") {
					return nil, errs
				}
				break
			}
			frags.Append(line)

		case line[0] == '[':
			if err := flush(); err != nil {
				return nil, err
			}
			end := bytes.IndexByte(line, ']')
			if end < 0 {
				if fail(n, "section header is not closed") {
					return nil, errs
				}
				break
			}
			if rest := bytes.Trim(line[end+1:], " \t"); len(rest) != 0 {
				if fail(n, "unexpected %q after section header", rest) {
					return nil, errs
				}
				break
			}
			name := string(bytes.Trim(line[1:end], " \t"))
			if name == "" {
				if fail(n, "empty section name") {
					return nil, errs
				}
				break
			}
			section = f.addSectionAt(name, n)
			if pending != nil {
				section.PutComment(takeComment())
			}

		default:
			eq := bytes.IndexByte(line, '=')
			if eq < 0 {
				if fail(n, "missing '=' separator") {
					return nil, errs
				}
				break
			}
			if err := flush(); err != nil {
				return nil, err
			}
			k := string(bytes.Trim(line[:eq], " \t"))
			if k == "" {
				if fail(n, "empty key") {
					return nil, errs
				}
				break
			}
			key, keyLine = k, n
			frags = value.NewFragments()
			frags.Append(bytes.Trim(line[eq+1:], " \t"))
		}

		if !more {
			break
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	f.trailing = takeComment()

	if errs != nil {
		return nil, errs
	}
	if src != "" {
		p.log.Debug("Parsed INI", zap.String("source", src), zap.Int("sections", len(f.sections)))
	}
	return f, nil
}

// nextLine returns the next physical line without its terminator and
// whether more input remains.
func nextLine(z *parse.Input) (line []byte, more bool) {
	for {
		c := z.Peek(0)
		if c == '\n' {
			line = z.Shift()
			z.Move(1)
			z.Skip()
			return line, true
		}
		if c == 0 && z.Err() != nil {
			return z.Shift(), false
		}
		z.Move(1)
	}
}

// addSectionAt returns the named section creating it at the given source
// line when necessary.
func (f *File) addSectionAt(name string, line int) *Section {
	if s, ok := f.index[name]; ok {
		return s
	}
	s := newSection(name, line)
	f.sections = append(f.sections, s)
	f.index[name] = s
	return s
}
