package x86

// registerNames is the fixed 16-entry table indexed by 2*reg + word, giving
// every general-purpose register name in the 8086 encoding. It is a
// bijection on (reg in 0..7, word in {false,true}).
var registerNames = [16]string{
	"al", "ax", "cl", "cx", "dl", "dx", "bl", "bx",
	"ah", "sp", "ch", "bp", "dh", "si", "bh", "di",
}

// registerName returns the canonical lowercase name for a 3-bit register
// field and the word flag.
func registerName(reg uint8, word bool) string {
	idx := 2*int(reg&0x7) + boolIndex(word)
	return registerNames[idx]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
