package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEnumValue(t *testing.T) {
	cases := []struct {
		index uint32
		name  string
	}{
		{0, "Red"},
		{1, "Green"},
		{2, "Blue"},
		{41, ""},
		{1 << 30, "péché"},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteEnumHeader(c.index)
		w.WriteString(c.name)
		require.NoError(t, w.Error())
		require.Equal(t, buf.Len(), w.BytesWritten())

		r := NewReader(bytes.NewReader(buf.Bytes()))
		index, err := r.ReadEnumHeader()
		require.NoError(t, err)
		name, err := r.ReadString()
		require.NoError(t, err)

		assert.Equal(t, c.index, index)
		assert.Equal(t, c.name, name)
		assert.Equal(t, buf.Len(), r.BytesRead())
	}
}

func TestWriterWireFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteEnumHeader(2)
	w.WriteString("Blue")
	require.NoError(t, w.Error())

	want := []byte{
		TagEnum, 0x02, 0x00, 0x00, 0x00,
		TagString, 0x04, 0x00, 0x00, 0x00, 'B', 'l', 'u', 'e',
	}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Fatalf("wire format mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, w.Bytes())
}

func TestWriterErrors(t *testing.T) {
	t.Run("invalid utf8", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteString(string([]byte{0xff, 0xfe}))
		assert.ErrorIs(t, w.Error(), ErrInvalidUTF8)
		assert.Nil(t, w.Bytes())
	})

	t.Run("too large", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteString(strings.Repeat("a", MaxPayloadLen+1))
		assert.ErrorIs(t, w.Error(), ErrTooLarge)
	})

	t.Run("sticky after first error", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteString(string([]byte{0xff}))
		before := w.BytesWritten()
		w.WriteEnumHeader(7)
		w.WriteString("ok")
		assert.ErrorIs(t, w.Error(), ErrInvalidUTF8)
		assert.Equal(t, before, w.BytesWritten())
	})
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty", nil, ErrShortBuffer},
		{"wrong tag", []byte{TagString, 0x00, 0x00, 0x00, 0x00}, ErrInvalidTag},
		{"truncated index", []byte{TagEnum, 0x01}, ErrShortBuffer},
		{"truncated name", []byte{TagEnum, 0x01, 0x00, 0x00, 0x00, TagString, 0x04, 0x00, 0x00, 0x00, 'a'}, ErrShortBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.buf))
			_, err := r.ReadEnumHeader()
			if err == nil {
				_, err = r.ReadString()
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("oversized length prefix", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteByte(TagString)
		buf.Write([]byte{0xff, 0xff, 0xff, 0xff})
		r := NewReader(bytes.NewReader(buf.Bytes()))
		_, err := r.ReadString()
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("sticky after first error", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte{TagString}))
		_, err := r.ReadEnumHeader()
		require.ErrorIs(t, err, ErrInvalidTag)
		_, err = r.ReadString()
		assert.ErrorIs(t, err, ErrInvalidTag)
	})
}

func TestTagToString(t *testing.T) {
	assert.Equal(t, "TagString", TagToString(TagString))
	assert.Equal(t, "TagEnum", TagToString(TagEnum))
	assert.Equal(t, "UnknownTag(0x7f)", TagToString(0x7f))
}
