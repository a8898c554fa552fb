package codec

import "fmt"

// TagToString converts a tag byte to a human-readable name.
// Useful for diagnostics and error messages.
func TagToString(tag byte) string {
	switch tag {
	case TagString:
		return "TagString"
	case TagEnum:
		return "TagEnum"
	default:
		return fmt.Sprintf("UnknownTag(0x%x)", tag)
	}
}
