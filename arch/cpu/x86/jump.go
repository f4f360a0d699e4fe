package x86

import "fmt"

// jumpMnemonics maps each supported conditional-jump/loop opcode byte to its
// mnemonic. Every value here must also appear in BranchMnemonics; the
// package init checks that invariant.
var jumpMnemonics = map[byte]string{
	0x70: "jo", 0x71: "jno", 0x72: "jb", 0x73: "jnb",
	0x74: "je", 0x75: "jne", 0x76: "jbe", 0x77: "jnbe",
	0x78: "js", 0x79: "jns", 0x7A: "jp", 0x7B: "jnp",
	0x7C: "jl", 0x7D: "jnl", 0x7E: "jle", 0x7F: "jnle",
	0xE0: "loopne", 0xE1: "loope", 0xE2: "loop", 0xE3: "jcxz",
}

// decodeJump decodes a conditional jump or loop: a one-byte opcode followed
// by a signed 8-bit displacement relative to the address immediately
// following the instruction. It always consumes 2 bytes.
func decodeJump(data []byte, offset int, st *decodeState) (string, int, error) {
	mnemonic, ok := jumpMnemonics[data[offset]]
	if !ok {
		return "", 0, newDecodeError(ErrInvalidJumpOpcode, offset)
	}

	disp, err := readSigned8(data, offset+1)
	if err != nil {
		return "", 0, err
	}

	target := offset + 2 + int(disp)
	label := st.labelFor(target)
	return fmt.Sprintf("%s %s", mnemonic, label), 2, nil
}
