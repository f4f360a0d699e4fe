package x86

// decodeFunc is the uniform shape of every family decoder: given the full
// byte stream and the offset of its first byte, render one instruction's
// text and report how many bytes it consumed.
type decodeFunc func(data []byte, offset int, st *decodeState) (text string, consumed int, err error)

// primaryDispatch is the 256-entry table indexed by the first opcode byte.
// Unpopulated entries fall back to stubDecode, which always fails: a
// well-formed stream within this decoder's supported subset never reaches
// it.
var primaryDispatch [256]decodeFunc

func init() {
	for i := range primaryDispatch {
		primaryDispatch[i] = stubDecode
	}

	for b := byte(0x00); b <= 0x03; b++ {
		primaryDispatch[b] = wrapArithmeticRMR(addFamily.Mnemonic)
	}
	primaryDispatch[0x04] = wrapArithmeticImmAcc(addFamily)
	primaryDispatch[0x05] = wrapArithmeticImmAcc(addFamily)

	for b := byte(0x28); b <= 0x2B; b++ {
		primaryDispatch[b] = wrapArithmeticRMR(subFamily.Mnemonic)
	}
	primaryDispatch[0x2C] = wrapArithmeticImmAcc(subFamily)
	primaryDispatch[0x2D] = wrapArithmeticImmAcc(subFamily)

	for b := byte(0x38); b <= 0x3B; b++ {
		primaryDispatch[b] = wrapArithmeticRMR(cmpFamily.Mnemonic)
	}
	primaryDispatch[0x3C] = wrapArithmeticImmAcc(cmpFamily)
	primaryDispatch[0x3D] = wrapArithmeticImmAcc(cmpFamily)

	for b := 0x70; b <= 0x7F; b++ {
		primaryDispatch[b] = decodeJump
	}
	for b := 0xE0; b <= 0xE3; b++ {
		primaryDispatch[b] = decodeJump
	}

	for b := 0x80; b <= 0x83; b++ {
		primaryDispatch[b] = decodeGroup0
	}

	for b := 0x88; b <= 0x8B; b++ {
		primaryDispatch[b] = decodeMovRMR
	}
	for b := 0xA0; b <= 0xA3; b++ {
		primaryDispatch[b] = decodeMovAccMem
	}
	for b := 0xB0; b <= 0xBF; b++ {
		primaryDispatch[b] = decodeMovImmReg
	}
	primaryDispatch[0xC6] = decodeMovImmRM
	primaryDispatch[0xC7] = decodeMovImmRM
}

func stubDecode(_ []byte, offset int, _ *decodeState) (string, int, error) {
	return "", 0, newDecodeError(ErrUnknownOpcode, offset)
}

func wrapArithmeticRMR(mnemonic string) decodeFunc {
	return func(data []byte, offset int, _ *decodeState) (string, int, error) {
		return decodeArithmeticRMR(mnemonic, data, offset)
	}
}

func wrapArithmeticImmAcc(fam arithmeticFamily) decodeFunc {
	return func(data []byte, offset int, _ *decodeState) (string, int, error) {
		return decodeArithmeticImmAcc(fam, data, offset)
	}
}
