package tmcl

// Checksum computes the TMCL datagram checksum: the low byte of the sum of
// the datagram's first eight bytes.
func Checksum(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}
