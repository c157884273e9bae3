package encoding

func write1(dst []byte, n uint8) []byte {
	return append(dst, n)
}

func write2(dst []byte, n uint16) []byte {
	return append(dst, byte(n>>8), byte(n))
}

func write4(dst []byte, n uint32) []byte {
	return append(
		dst,
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}

func write8(dst []byte, n uint64) []byte {
	return append(
		dst,
		byte(n>>56),
		byte(n>>48),
		byte(n>>40),
		byte(n>>32),
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}
