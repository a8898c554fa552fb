package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Writer encodes values into the tagged wire format.
// It wraps an io.Writer (typically a bytes.Buffer) and records the first
// error encountered; all later writes become no-ops so call sites can chain
// writes and check the error once at the end.
type Writer struct {
	w            io.Writer
	err          error
	bytesWritten int
}

// NewWriter creates a Writer that writes to the provided io.Writer.
// A bytes.Buffer is commonly used as the underlying writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bytes returns the written bytes if the underlying writer is a *bytes.Buffer.
// It returns nil if the writer is not a *bytes.Buffer or if an error occurred.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}
	if bb, ok := w.w.(*bytes.Buffer); ok {
		return bb.Bytes()
	}
	return nil
}

// Error returns the first error that occurred during writing, if any.
func (w *Writer) Error() error {
	return w.err
}

// BytesWritten returns the number of bytes successfully written so far.
func (w *Writer) BytesWritten() int {
	return w.bytesWritten
}

// recordError records the first error encountered.
func (w *Writer) recordError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.bytesWritten += n
	w.recordError(err)
}

// WriteTag writes a single tag byte.
func (w *Writer) WriteTag(tag byte) {
	w.write([]byte{tag})
}

// writeUint32LE writes a uint32 in little-endian format.
func (w *Writer) writeUint32LE(val uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	w.write(buf[:])
}

// WriteString encodes and writes a string value.
func (w *Writer) WriteString(val string) {
	if w.err != nil {
		return
	}
	if !utf8.ValidString(val) {
		w.recordError(ErrInvalidUTF8)
		return
	}
	if len(val) > MaxPayloadLen {
		w.recordError(ErrTooLarge)
		return
	}
	w.WriteTag(TagString)
	w.writeUint32LE(uint32(len(val)))
	if len(val) > 0 {
		w.write([]byte(val))
	}
}

// WriteEnumHeader writes the TagEnum and the case index.
// The caller is then responsible for writing the case payload (if any).
func (w *Writer) WriteEnumHeader(caseIndex uint32) {
	if w.err != nil {
		return
	}
	w.WriteTag(TagEnum)
	w.writeUint32LE(caseIndex)
}
