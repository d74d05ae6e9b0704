package jsontree

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Message prefixes shown by the JSON editor.
const (
	ParseErrorPrefix  = "Parse Error:"
	FormatErrorPrefix = "Cannot format:"
	MinifyErrorPrefix = "Cannot minify:"
)

// Message joins an editor message prefix and an error.
func Message(prefix string, err error) string {
	return prefix + " " + err.Error()
}

// Format pretty-prints src with two-space indentation.
// Member order and number literals are kept as written.
func Format(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", "  "); err != nil {
		return "", describe(err, src)
	}
	return buf.String(), nil
}

// Minify removes insignificant whitespace from src.
func Minify(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	var buf bytes.Buffer
	if err := json.Compact(&buf, src); err != nil {
		return "", describe(err, src)
	}
	return buf.String(), nil
}

// IsBlank reports whether src holds only whitespace.
func IsBlank(src string) bool {
	return strings.TrimSpace(src) == ""
}
