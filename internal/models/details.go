package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrFieldMissing is returned when a named detail field is not present.
var ErrFieldMissing = errors.New("detail field missing")

// LabelSeparator marks a line as a field label rather than a value line.
const LabelSeparator = ":"

// Details holds the free-text detail lines of a bank transfer, grouped into
// chunks. A chunk is either a labeled group (a line ending in the label
// separator followed by its value lines) or a bare run of value lines.
type Details struct {
	Chunks [][]string
	Amount Money // the mandatory "částka" field, parsed at construction
}

// Field returns the joined value text of a named field. It matches either an
// inline form ("name: value" or "name value") or a labeled group whose label
// is the bare name.
func (d Details) Field(name string) (string, error) {
	for _, chunk := range d.Chunks {
		for i, line := range chunk {
			rest, ok := strings.CutPrefix(line, name)
			if !ok || rest == "" {
				continue
			}
			sep, _ := utf8.DecodeRuneInString(rest)
			if !strings.HasPrefix(rest, LabelSeparator) && !unicode.IsSpace(sep) {
				continue
			}
			value := strings.TrimSpace(strings.TrimPrefix(rest, LabelSeparator))
			if value == "" && i == 0 && len(chunk) > 1 {
				value = strings.TrimSpace(strings.Join(chunk[1:], ", "))
			}
			if value != "" {
				return value, nil
			}
		}
	}
	return "", fmt.Errorf("detail field %q: %w", name, ErrFieldMissing)
}

// Map returns the labeled chunks as a label → value lines mapping.
func (d Details) Map() map[string][]string {
	m := make(map[string][]string, len(d.Chunks))
	for _, chunk := range d.Chunks {
		if labeled(chunk) {
			m[chunk[0]] = chunk[1:]
		}
	}
	return m
}

func (d Details) String() string {
	parts := make([]string, 0, len(d.Chunks))
	for _, chunk := range d.Chunks {
		if labeled(chunk) {
			parts = append(parts, strings.TrimSpace(chunk[0]+" "+strings.Join(chunk[1:], ", ")))
		} else {
			parts = append(parts, strings.Join(chunk, ", "))
		}
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON renders labeled chunks as an object, preserving source order.
func (d Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, chunk := range d.Chunks {
		if !labeled(chunk) {
			continue
		}
		key, err := json.Marshal(chunk[0])
		if err != nil {
			return nil, err
		}
		values, err := json.Marshal(chunk[1:])
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func labeled(chunk []string) bool {
	return len(chunk) > 0 && strings.Contains(chunk[0], LabelSeparator)
}
