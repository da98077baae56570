package ini

import (
	"errors"
	"fmt"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrBinaryInput is returned when the input is recognizably not a text
// configuration file.
var ErrBinaryInput = errors.New("input is not a text file")

// DecodeText prepares raw file bytes for parsing: refuses recognizably
// binary input and converts UTF-16 text (either endianness, by BOM) to
// UTF-8, stripping the byte order mark. Plain text passes through as is.
func DecodeText(data []byte) ([]byte, error) {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return nil, fmt.Errorf("%w (looks like %s)", ErrBinaryInput, kind.MIME.Value)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode input: %w", err)
	}
	return text, nil
}
