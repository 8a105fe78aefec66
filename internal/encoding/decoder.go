package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeInput trims whitespace and returns valid UTF-8 untouched. Anything
// else is assumed to be Windows-1252, which is what spreadsheet exports of
// date columns usually are. The result is always valid UTF-8.
func DecodeInput(input []byte) (string, error) {
	trimmedInput := bytes.TrimSpace(input)

	if utf8.Valid(trimmedInput) {
		return string(trimmedInput), nil
	}

	reader := charmap.Windows1252.NewDecoder().Reader(bytes.NewReader(trimmedInput))
	output, err := io.ReadAll(reader)

	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(output), ""), nil
}
