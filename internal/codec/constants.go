package codec

const (
	TagString byte = 0x01 // length prefixed u32 LE
	TagEnum   byte = 0x02 // case index u32 LE + payload(optional)

	MaxPayloadLen int = 1 << 20 // 1 MiB safety cap for encoded names
)
