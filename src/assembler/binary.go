package assembler

// formatBinary renders the low w bits of v, most significant first. Values
// that do not fit wrap silently.
func formatBinary(v int64, w int) string {
	buf := make([]byte, w)
	for k := 0; k < w; k++ {
		if uint64(v)>>uint(w-1-k)&1 == 1 {
			buf[k] = '1'
		} else {
			buf[k] = '0'
		}
	}
	return string(buf)
}
