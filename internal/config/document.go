package config

import (
	"github.com/BurntSushi/toml"
)

// document is the generic, order-preserving form of a parsed TOML file.
// Values stay as undecoded primitives; domain validation happens in build.
type document struct {
	meta   toml.MetaData
	values map[string]toml.Primitive
}

// parseDocument parses raw TOML text. It knows nothing about pages or
// settings; unknown shapes pass through unexamined.
func parseDocument(data []byte) (*document, error) {
	var values map[string]toml.Primitive
	meta, err := toml.Decode(string(data), &values)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return &document{meta: meta, values: values}, nil
}

// keys returns the top-level keys in first-appearance order. A table only
// ever named as the parent of a dotted header, e.g. [page.entry] with no
// bare [page], is still a top-level key: toml.MetaData does not emit such
// implicit parents on their own, so every key's first segment counts.
func (d *document) keys() []string {
	seen := make(map[string]bool)
	var out []string
	for _, key := range d.meta.Keys() {
		if seen[key[0]] {
			continue
		}
		seen[key[0]] = true
		out = append(out, key[0])
	}
	return out
}

// tableKeys returns the immediate child keys of a top-level table in
// first-appearance order, deduplicated for the same reason as keys.
func (d *document) tableKeys(name string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, key := range d.meta.Keys() {
		if len(key) < 2 || key[0] != name || seen[key[1]] {
			continue
		}
		seen[key[1]] = true
		out = append(out, key[1])
	}
	return out
}

// table decodes a top-level value into a mapping of undecoded primitives.
// Scalar or array values fail here, which build reports as a shape error.
func (d *document) table(name string) (map[string]toml.Primitive, error) {
	var out map[string]toml.Primitive
	if err := d.meta.PrimitiveDecode(d.values[name], &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decode decodes a top-level value into v.
func (d *document) decode(name string, v any) error {
	return d.meta.PrimitiveDecode(d.values[name], v)
}

// decodePrimitive decodes any primitive captured from this document into v.
func (d *document) decodePrimitive(prim toml.Primitive, v any) error {
	return d.meta.PrimitiveDecode(prim, v)
}
