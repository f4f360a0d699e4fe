package x86

// groupRow classifies a first byte by which group-dispatch row it belongs
// to. Only row 0 (ADD/SUB/CMP immediate-to-r/m, opcodes 0x80-0x83) is
// wired to a family decoder; rows 1-3 correspond to the shift/rotate and
// unary/multiply/divide groups, out of this decoder's scope. primaryDispatch
// never routes a row 1-3 byte anywhere, let alone to decodeGroup0, so this
// function is not called from the decode path; it documents and tests the
// row layout from the opcode map, and gives UnknownGroupRow a producer to
// check error-taxonomy behavior against directly.
func groupRow(b byte) (int, error) {
	switch {
	case b >= 0x80 && b <= 0x83:
		return 0, nil
	case b >= 0xD0 && b <= 0xD3:
		return 1, nil
	case b == 0xF6 || b == 0xF7:
		return 2, nil
	case b == 0xFE || b == 0xFF:
		return 3, nil
	default:
		return 0, ErrUnknownGroupRow
	}
}

// decodeGroup0 handles opcodes 0x80-0x83, the only group-dispatch row this
// decoder wires up: the first byte carries the sign-extend and word flags,
// and the ModR/M reg field selects which arithmetic family (ADD/SUB/CMP)
// handles the instruction.
func decodeGroup0(data []byte, offset int, _ *decodeState) (string, int, error) {
	if offset+1 >= len(data) {
		return "", 0, newDecodeError(ErrTruncated, offset)
	}
	m := decodeModRM(data[offset+1])
	fam, ok := groupZeroFamilies[m.Reg]
	if !ok {
		return "", 0, newDecodeError(ErrUnknownGroupMember, offset)
	}
	return decodeArithmeticImmRM(fam, data, offset)
}
