package x86

import "fmt"

// memAddrModeMapping gives the effective-address base expression for each
// rm field, used whenever mode != 11 and the rm=110/mode=00 direct-address
// exception does not apply.
var memAddrModeMapping = [8]string{
	"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx",
}

// modRM is the decomposed second byte of most two-operand instructions.
type modRM struct {
	Mod uint8
	Reg uint8
	RM  uint8
}

// decodeModRM splits a ModR/M byte into its mode, reg and rm fields.
func decodeModRM(b byte) modRM {
	return modRM{
		Mod: b >> 6,
		Reg: (b >> 3) & 0x7,
		RM:  b & 0x7,
	}
}

// readSigned8 reads a single signed byte at offset.
func readSigned8(data []byte, offset int) (int8, error) {
	if offset >= len(data) {
		return 0, newDecodeError(ErrTruncated, offset)
	}
	return int8(data[offset]), nil
}

// readSigned16 reads a little-endian signed 16-bit value at offset.
func readSigned16(data []byte, offset int) (int16, error) {
	if offset+1 >= len(data) {
		return 0, newDecodeError(ErrTruncated, offset)
	}
	return int16(uint16(data[offset]) | uint16(data[offset+1])<<8), nil
}

// readImmediate consumes 1 byte if !word, else 2 little-endian bytes, and
// returns the value together with the number of bytes consumed.
func readImmediate(data []byte, offset int, word bool) (uint16, int, error) {
	if !word {
		if offset >= len(data) {
			return 0, 0, newDecodeError(ErrTruncated, offset)
		}
		return uint16(data[offset]), 1, nil
	}
	v, err := readSigned16(data, offset)
	if err != nil {
		return 0, 0, err
	}
	return uint16(v), 2, nil
}

// effectiveAddress renders the bracketed effective-address text for a
// ModR/M whose mode is not 11 (register-direct), and returns the number of
// bytes consumed beyond the ModR/M byte itself (the displacement, or the
// direct-address literal).
func effectiveAddress(data []byte, offset int, m modRM) (string, int, error) {
	if m.Mod == 0 && m.RM == 6 {
		disp, err := readSigned16(data, offset)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[%d]", disp), 2, nil
	}

	base := memAddrModeMapping[m.RM]

	switch m.Mod {
	case 0:
		return fmt.Sprintf("[%s]", base), 0, nil
	case 1:
		disp, err := readSigned8(data, offset)
		if err != nil {
			return "", 0, err
		}
		if disp == 0 {
			return fmt.Sprintf("[%s]", base), 1, nil
		}
		return fmt.Sprintf("[%s + %d]", base, disp), 1, nil
	case 2:
		disp, err := readSigned16(data, offset)
		if err != nil {
			return "", 0, err
		}
		if disp == 0 {
			return fmt.Sprintf("[%s]", base), 2, nil
		}
		return fmt.Sprintf("[%s + %d]", base, disp), 2, nil
	default:
		// mod=11 is register-direct and never reaches this function.
		return "", 0, newDecodeError(ErrUnknownOpcode, offset)
	}
}
