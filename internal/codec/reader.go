package codec

import (
	"encoding/binary"
	"io"
)

// Reader decodes values from the tagged wire format.
// It wraps an io.Reader (typically a bytes.Reader) and records the first
// error encountered; once an error is recorded all further reads fail fast.
type Reader struct {
	r         io.Reader
	bytesRead int
	err       error
}

// NewReader creates a Reader that reads from the provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Error returns the first error that occurred during reading, if any.
func (r *Reader) Error() error {
	return r.err
}

// BytesRead returns the total number of bytes successfully consumed.
func (r *Reader) BytesRead() int {
	return r.bytesRead
}

// recordError records the first error encountered.
func (r *Reader) recordError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// readBytes reads exactly len(p) bytes into p.
func (r *Reader) readBytes(p []byte) error {
	if r.err != nil {
		return r.err
	}
	n, err := io.ReadFull(r.r, p)
	r.bytesRead += n
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = ErrShortBuffer
	}
	r.recordError(err)
	return err
}

// ReadTag reads and returns the next tag byte.
func (r *Reader) ReadTag() (byte, error) {
	var b [1]byte
	if err := r.readBytes(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ExpectTag reads the next tag byte and fails with ErrInvalidTag when it
// does not match want.
func (r *Reader) ExpectTag(want byte) error {
	tag, err := r.ReadTag()
	if err != nil {
		return err
	}
	if tag != want {
		r.recordError(ErrInvalidTag)
		return r.err
	}
	return nil
}

// readUint32LE reads a uint32 in little-endian.
func (r *Reader) readUint32LE() (uint32, error) {
	var buf [4]byte
	if err := r.readBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadString decodes and returns a string value, tag included.
func (r *Reader) ReadString() (string, error) {
	if err := r.ExpectTag(TagString); err != nil {
		return "", err
	}
	size, err := r.readUint32LE()
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	if int(size) > MaxPayloadLen {
		r.recordError(ErrTooLarge)
		return "", r.err
	}
	data := make([]byte, size)
	if err := r.readBytes(data); err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadEnumHeader reads the TagEnum and returns the case index.
func (r *Reader) ReadEnumHeader() (uint32, error) {
	if err := r.ExpectTag(TagEnum); err != nil {
		return 0, err
	}
	return r.readUint32LE()
}
