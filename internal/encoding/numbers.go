package encoding

// EncodeInt8 appends n as a single two's-complement byte.
func EncodeInt8(dst []byte, n int8) []byte {
	return write1(dst, uint8(n))
}

// EncodeInt16 appends n in big-endian two's complement.
func EncodeInt16(dst []byte, n int16) []byte {
	return write2(dst, uint16(n))
}

// EncodeInt32 appends n in big-endian two's complement.
func EncodeInt32(dst []byte, n int32) []byte {
	return write4(dst, uint32(n))
}

func DecodeUint16(b []byte) uint16 {
	return (uint16(b[0]) << 8) | uint16(b[1])
}

func DecodeUint32(b []byte) uint32 {
	return (uint32(b[0]) << 24) |
		(uint32(b[1]) << 16) |
		(uint32(b[2]) << 8) |
		uint32(b[3])
}

func DecodeInt8(b []byte) int8 {
	return int8(b[0])
}

func DecodeInt16(b []byte) int16 {
	return int16(DecodeUint16(b))
}

func DecodeInt32(b []byte) int32 {
	return int32(DecodeUint32(b))
}

// EncodeUint64 appends n in big-endian order.
// It is used for row ids, which are not Values.
func EncodeUint64(dst []byte, n uint64) []byte {
	return write8(dst, n)
}

func DecodeUint64(b []byte) uint64 {
	return (uint64(b[0]) << 56) |
		(uint64(b[1]) << 48) |
		(uint64(b[2]) << 40) |
		(uint64(b[3]) << 32) |
		(uint64(b[4]) << 24) |
		(uint64(b[5]) << 16) |
		(uint64(b[6]) << 8) |
		uint64(b[7])
}
