package nfa

const (
	// Golden ratio bit mixer.
	PHI_C64 = uint64(0x9e3779b97f4a7c15)
)

// MurmurHash3 64-bit finalizer.
func mix64(v uint64) uint64 {
	k := v
	k = (k ^ (k >> 33)) * 0xff51afd7ed558ccd
	k = (k ^ (k >> 33)) * 0xc4ceb9fe1a85ec53
	return k ^ (k >> 33)
}

// Order-sensitive combination of a running hash with the next value.
func mixInto(h uint64, v int) uint64 {
	return mix64(h*PHI_C64 + uint64(v) + 1)
}
