package probset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Field names produced by the extraction behaviors.
const (
	FieldText       = "text"
	FieldAnswer     = "answer"
	FieldStatement  = "statement"
	FieldLabel      = "label"
	FieldSentence   = "sentence"
	FieldBasis      = "basis"
	FieldPhrase     = "phrase"
	FieldConnection = "connection"

	// FieldSource holds the name of the page a record was extracted from.
	// It is provenance, not content, and is ignored by ContentEqual.
	FieldSource = "source"
)

// Field is a single named value of a Record.
// Values are either strings or booleans.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered set of fields extracted from one problem.
// Records are not modified after extraction: With and Without return copies.
type Record []Field

// NewRecord returns a record holding a copy of fields.
func NewRecord(fields ...Field) Record {
	return Record(slices.Clone(fields))
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the named field as a string.
// Returns an empty string if the field is absent or not a string.
func (r Record) String(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// Bool returns the named field as a boolean.
// Returns false if the field is absent or not a boolean.
func (r Record) Bool(name string) bool {
	v, _ := r.Get(name)
	b, _ := v.(bool)
	return b
}

// With returns a copy of the record with the named field set to value.
// An existing field keeps its position; a new field is appended.
func (r Record) With(name string, value any) Record {
	out := slices.Clone(r)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Name: name, Value: value})
}

// Without returns a copy of the record without the named field.
func (r Record) Without(name string) Record {
	out := make(Record, 0, len(r))
	for _, f := range r {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}

// Content returns a copy of the record without its source field.
func (r Record) Content() Record {
	return r.Without(FieldSource)
}

// ContentEqual reports whether both records hold the same fields and
// values, ignoring the source field and field order.
func (r Record) ContentEqual(other Record) bool {
	a, b := r.Content(), other.Content()
	if len(a) != len(b) {
		return false
	}
	for _, f := range a {
		v, ok := b.Get(f.Name)
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as a JSON object in field order.
// Non-ASCII characters and HTML-sensitive characters are written literally.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		switch f.Value.(type) {
		case string, bool:
		default:
			return nil, Errorf(EINVALID, "field %q: unsupported value type %T", f.Name, f.Value)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, keeping key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Errorf(EINVALID, "record must be a JSON object")
	}

	var fields Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return Errorf(EINVALID, "unexpected record key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string, bool:
			fields = append(fields, Field{Name: name, Value: v})
		default:
			return Errorf(EINVALID, "field %q: unsupported value %v", name, tok)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = fields
	return nil
}

// writeJSON appends the JSON encoding of v to buf without HTML escaping.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %T: %w", v, err)
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ContentHash returns an xxhash of the record content. Records that are
// ContentEqual have the same hash.
func (r Record) ContentHash() uint64 {
	var b strings.Builder
	r.canonicalContent(&b)
	return xxhash.Sum64String(b.String())
}

// canonicalContent writes the record content with fields sorted by name.
func (r Record) canonicalContent(b *strings.Builder) {
	content := r.Content()
	slices.SortFunc(content, func(x, y Field) int {
		return strings.Compare(x.Name, y.Name)
	})
	for _, f := range content {
		b.WriteString(f.Name)
		b.WriteByte(0)
		switch v := f.Value.(type) {
		case bool:
			fmt.Fprintf(b, "b%t", v)
		default:
			fmt.Fprintf(b, "s%v", v)
		}
		b.WriteByte(0)
	}
}
