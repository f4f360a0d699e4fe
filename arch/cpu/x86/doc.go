// Package x86 decodes a subset of the 16-bit 8086 instruction set into
// NASM-syntax assembly text.
//
// The package covers the MOV, ADD, SUB and CMP instruction families, the
// conditional jump and loop opcodes, and ModR/M effective-address
// computation. It does not execute or simulate instructions, and it does
// not cover the full 8086 ISA: segment-register MOVs, string operations,
// I/O instructions, shift/rotate, unary/multiply/divide, and far/near
// call/ret are out of scope.
//
// Example usage:
//
//	text, err := x86.Decode([]byte{0x89, 0xD9})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(text) // "bits 16\n\nmov cx, bx\n"
package x86
