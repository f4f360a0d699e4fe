package x86

import "fmt"

// arithmeticFamily parameterizes the shared ADD/SUB/CMP decoder over the
// three differences between the families: the mnemonic text, the reg field
// that selects the family in the immediate-to-r/m group dispatch, and the
// opcode used for the immediate-to-accumulator form.
type arithmeticFamily struct {
	Mnemonic   string
	GroupReg   uint8
	ImmAccBase byte
}

var (
	addFamily = arithmeticFamily{Mnemonic: "add", GroupReg: 0, ImmAccBase: 0x04}
	subFamily = arithmeticFamily{Mnemonic: "sub", GroupReg: 5, ImmAccBase: 0x2C}
	cmpFamily = arithmeticFamily{Mnemonic: "cmp", GroupReg: 7, ImmAccBase: 0x3C}
)

// groupZeroFamilies maps the reg field of a group-0 ModR/M byte (opcodes
// 0x80-0x83) to the arithmetic family it selects.
var groupZeroFamilies = map[uint8]arithmeticFamily{
	addFamily.GroupReg: addFamily,
	subFamily.GroupReg: subFamily,
	cmpFamily.GroupReg: cmpFamily,
}

// decodeArithmeticRMR decodes the r/m<->r form shared by MOV, ADD, SUB and
// CMP: a ModR/M byte whose mode/reg/rm fields are interpreted exactly as in
// MOV's r/m<->r form, rendered with the given mnemonic.
func decodeArithmeticRMR(mnemonic string, data []byte, offset int) (string, int, error) {
	b := data[offset]
	d := b&0x02 != 0
	w := b&0x01 != 0

	if offset+1 >= len(data) {
		return "", 0, newDecodeError(ErrTruncated, offset)
	}
	m := decodeModRM(data[offset+1])
	consumed := 2

	var dest, src string
	if m.Mod == 3 {
		reg := registerName(m.Reg, w)
		rm := registerName(m.RM, w)
		dest, src = selectByDirection(d, reg, rm)
	} else {
		addr, n, err := effectiveAddress(data, offset+2, m)
		if err != nil {
			return "", 0, err
		}
		consumed += n
		reg := registerName(m.Reg, w)
		dest, src = selectByDirection(d, reg, addr)
	}
	return fmt.Sprintf("%s %s, %s", mnemonic, dest, src), consumed, nil
}

// selectByDirection applies the direction bit: when d, reg is the
// destination; otherwise the roles swap.
func selectByDirection(d bool, reg, rm string) (dest, src string) {
	if d {
		return reg, rm
	}
	return rm, reg
}

// decodeArithmeticImmRM decodes the immediate-to-r/m form: first byte's bit
// 1 is the sign-extend flag, bit 0 is word. The ModR/M byte has already
// been peeked by the group dispatcher to select fam.
func decodeArithmeticImmRM(fam arithmeticFamily, data []byte, offset int) (string, int, error) {
	b := data[offset]
	sign := b&0x02 != 0
	word := b&0x01 != 0

	if offset+1 >= len(data) {
		return "", 0, newDecodeError(ErrTruncated, offset)
	}
	m := decodeModRM(data[offset+1])
	consumed := 2

	immWord := word && !sign

	if m.Mod == 3 {
		dest := registerName(m.RM, word)
		imm, n, err := readImmediate(data, offset+consumed, immWord)
		if err != nil {
			return "", 0, err
		}
		consumed += n
		return fmt.Sprintf("%s %s, %d", fam.Mnemonic, dest, signExtend(imm, immWord)), consumed, nil
	}

	addr, n, err := effectiveAddress(data, offset+consumed, m)
	if err != nil {
		return "", 0, err
	}
	consumed += n
	imm, n, err := readImmediate(data, offset+consumed, immWord)
	if err != nil {
		return "", 0, err
	}
	consumed += n

	size := "byte"
	if word {
		size = "word"
	}
	return fmt.Sprintf("%s %s, %s %d", fam.Mnemonic, addr, size, signExtend(imm, immWord)), consumed, nil
}

// decodeArithmeticImmAcc decodes the immediate-to-accumulator form.
func decodeArithmeticImmAcc(fam arithmeticFamily, data []byte, offset int) (string, int, error) {
	b := data[offset]
	word := b&0x01 != 0

	acc := registerName(0, word)
	imm, n, err := readImmediate(data, offset+1, word)
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%s %s, %d", fam.Mnemonic, acc, signExtend(imm, word)), 1 + n, nil
}

// signExtend renders a 1-byte immediate that was not read as a full 16-bit
// word as its signed 8-bit value, matching NASM's decimal rendering of
// negative immediates; a 16-bit read is rendered as its signed 16-bit value.
func signExtend(v uint16, wasWord bool) int {
	if wasWord {
		return int(int16(v))
	}
	return int(int8(v))
}
