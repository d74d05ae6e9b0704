// Package jsontree parses JSON into an order-preserving tree and renders it
// for the JSON viewer. It also pretty-prints and minifies JSON text.
package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind is the JSON value type of a Node.
type Kind int

// Node kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one JSON value. Object members keep their source order.
type Node struct {
	// Kind is the value type.
	Kind Kind

	// Key is the member name when the node is an object member.
	Key string

	// Value holds the scalar text: the number literal as written, the
	// unquoted string, "true"/"false" or "null". Empty for containers.
	Value string

	// Children are the array elements or object members.
	Children []*Node
}

// ErrTrailingData indicates extra content after the top-level value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// IsContainer reports whether the node is an array or object.
func (n *Node) IsContainer() bool {
	return n.Kind == KindArray || n.Kind == KindObject
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.Children)
}

// Depth returns the number of nested container levels below and including n.
// Scalars and empty containers have depth 0.
func (n *Node) Depth() int {
	if n == nil || n.Len() == 0 {
		return 0
	}
	deepest := 0
	for _, child := range n.Children {
		deepest = max(deepest, child.Depth())
	}
	return deepest + 1
}

// Parse decodes data into a tree.
// Errors carry the line and column of the offending byte when known.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := parseValue(dec)
	if err != nil {
		return nil, describe(err, data)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, trailingError(err, data)
	}
	return root, nil
}

// trailingError wraps ErrTrailingData with the position of the extra
// content. A valid trailing token leaves err nil; rescanning the whole input
// still finds it.
func trailingError(err error, data []byte) error {
	if err == nil {
		var raw json.RawMessage
		err = json.Unmarshal(data, &raw)
	}
	if err == nil {
		return ErrTrailingData
	}
	return fmt.Errorf("%w: %w", ErrTrailingData, describe(err, data))
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", rune(v))
		}
	case nil:
		return &Node{Kind: KindNull, Value: "null"}, nil
	case bool:
		if v {
			return &Node{Kind: KindBool, Value: "true"}, nil
		}
		return &Node{Kind: KindBool, Value: "false"}, nil
	case json.Number:
		return &Node{Kind: KindNumber, Value: v.String()}, nil
	case string:
		return &Node{Kind: KindString, Value: v}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Node, error) {
	node := &Node{Kind: KindObject}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		child.Key = key
		node.Children = append(node.Children, child)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func parseArray(dec *json.Decoder) (*Node, error) {
	node := &Node{Kind: KindArray}
	for dec.More() {
		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

// describe adds a line and column to syntax errors.
func describe(err error, data []byte) error {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}
	// Decoder offsets are relative to the value being read; rescan the
	// whole input for an absolute one.
	var raw json.RawMessage
	if scanErr := json.Unmarshal(data, &raw); errors.As(scanErr, &syntaxErr) {
		err = scanErr
	}
	line, col := position(data, syntaxErr.Offset)
	return fmt.Errorf("%w (line %d, column %d)", err, line, col)
}

// position converts a syntax error offset to a 1-based line and column.
// The offset counts the offending byte.
func position(data []byte, offset int64) (line, col int) {
	i := min(max(offset-1, 0), int64(len(data)))
	before := data[:i]
	line = bytes.Count(before, []byte("\n")) + 1
	col = int(i) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// LooksLikeJSON reports whether body is a JSON object or array.
// Used for content based detection where no Content-Type can be trusted.
func LooksLikeJSON(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid(trimmed)
}

// quote renders s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
