package enum

import (
	"bytes"

	"github.com/warpfork/go-errcat"
	"gopkg.in/yaml.v3"

	"github.com/patrickhuber/go-types/internal/codec"
	"github.com/patrickhuber/go-types/result"
	"github.com/patrickhuber/go-types/variant"
)

// Binary form: enum header (tag + case index u32 LE) followed by the
// external name as a length-prefixed string.  The name is authoritative on
// decode; the index is a consistency check, so a buffer cannot be decoded
// into a different case than it was encoded from even across redeclaration.

// Marshal encodes the value into its binary form.
func Marshal(v Value) ([]byte, error) {
	if v.typ == nil {
		return nil, errcat.Errorf(variant.ErrUnknownCase, "marshal of zero enum value")
	}
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	w.WriteEnumHeader(uint32(v.index))
	w.WriteString(v.ExternalName())
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a binary-form buffer into a value of this type.
//
// Decoding fails closed with ErrDeserialize: unknown encoded names, index
// and name disagreement, truncated or trailing bytes all fail rather than
// substituting a default case.  A type declared WithFallback maps unknown
// names (only) to its declared fallback case.
func (t *Type) Unmarshal(buf []byte) result.Result[Value, error] {
	fail := func(format string, args ...interface{}) result.Result[Value, error] {
		return result.Err[Value, error](errcat.Errorf(variant.ErrDeserialize, "enum %q: "+format, append([]interface{}{t.name}, args...)...))
	}

	r := codec.NewReader(bytes.NewReader(buf))
	index, err := r.ReadEnumHeader()
	if err != nil {
		return fail("decode header: %s", err)
	}
	name, err := r.ReadString()
	if err != nil {
		return fail("decode name: %s", err)
	}
	if r.BytesRead() != len(buf) {
		return fail("%d trailing bytes after value", len(buf)-r.BytesRead())
	}

	i, known := t.set.Index(name)
	if !known {
		if t.fallback >= 0 {
			return result.Ok[Value, error](Value{typ: t, index: t.fallback})
		}
		return fail("unknown encoded name %q", name)
	}
	if uint32(i) != index {
		return fail("encoded index %d disagrees with name %q (ordinal %d)", index, name, i)
	}
	return result.Ok[Value, error](Value{typ: t, index: i})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() ([]byte, error) {
	return Marshal(v)
}

// MarshalText implements encoding.TextMarshaler, emitting the external
// name.  This is what encoding/json uses for values in document fields.
// Decoding text requires the declaring type: use Type.Parse.
func (v Value) MarshalText() ([]byte, error) {
	if v.typ == nil {
		return nil, errcat.Errorf(variant.ErrUnknownCase, "marshal of zero enum value")
	}
	return []byte(v.ExternalName()), nil
}

// MarshalYAML implements yaml.Marshaler, emitting the external name.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.typ == nil {
		return nil, errcat.Errorf(variant.ErrUnknownCase, "marshal of zero enum value")
	}
	return v.ExternalName(), nil
}

// DecodeYAML decodes a scalar YAML node holding an external name into a
// value of this type.  Unknown names fail closed with ErrDeserialize unless
// the type declared a fallback, exactly as in Unmarshal.
func (t *Type) DecodeYAML(node *yaml.Node) (Value, error) {
	var name string
	if err := node.Decode(&name); err != nil {
		return Value{}, errcat.Errorf(variant.ErrDeserialize, "enum %q: decode yaml node: %s", t.name, err)
	}
	i, known := t.set.Index(name)
	if !known {
		if t.fallback >= 0 {
			return Value{typ: t, index: t.fallback}, nil
		}
		return Value{}, errcat.Errorf(variant.ErrDeserialize, "enum %q: unknown encoded name %q", t.name, name)
	}
	return Value{typ: t, index: i}, nil
}
