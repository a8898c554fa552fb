package codec

import "errors"

var (
	ErrInvalidTag  = errors.New("codec: invalid type tag")
	ErrInvalidUTF8 = errors.New("codec: invalid utf8 string")
	ErrTooLarge    = errors.New("codec: payload too large")
	ErrShortBuffer = errors.New("codec: buffer too small")
)
