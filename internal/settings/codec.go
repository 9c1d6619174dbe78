// SPDX-License-Identifier: MIT

package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeValues parses a JSON object whose values are all strings.
// Anything else (non-object root, non-string values, trailing content) is a *ParseError.
func decodeValues(path string, data []byte) (Values, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: errors.New("empty document")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if raw == nil {
		return nil, &ParseError{Path: path, Err: errors.New("root must be a JSON object, got null")}
	}

	// Strict: exactly one document
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("trailing content after JSON object")}
	}

	values := make(Values, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		s, ok := raw[key].(string)
		if !ok {
			return nil, &ParseError{Path: path, Key: key, Err: fmt.Errorf("value must be a string, got %s", jsonKind(raw[key]))}
		}
		values[key] = s
	}
	return values, nil
}

// encodeValues renders values as two-space indented JSON with sorted keys.
func encodeValues(values Values) ([]byte, error) {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
