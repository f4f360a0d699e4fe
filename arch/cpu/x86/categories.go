package x86

import "github.com/retroenv/x86dis/set"

// BranchMnemonics is the set of mnemonics produced by the conditional jump
// and loop decoder. It exists so other parts of the package (and callers)
// can classify a rendered mnemonic without hard-coding the jump table a
// second time.
var BranchMnemonics = set.NewFromSlice([]string{
	"je", "jl", "jle", "jb", "jbe", "jp", "jo", "js",
	"jne", "jnl", "jnle", "jnb", "jnbe", "jnp", "jno", "jns",
	"loop", "loope", "loopne", "jcxz",
})

// groupZeroMembers is the set of reg-field values row 0 of the group
// dispatch table assigns a mnemonic to. reg fields are 3 bits, so a BitSet
// is a tighter fit than a map-backed Set here. Used by init to self-check
// the group dispatch table is fully populated for the rows this package
// supports.
var groupZeroMembers = set.NewBitSetFromSlice([]int{0, 5, 7})

func init() {
	if len(jumpMnemonics) != BranchMnemonics.Size() {
		panic("x86: jump opcode table and BranchMnemonics set disagree in size")
	}
	for _, mnemonic := range jumpMnemonics {
		if !BranchMnemonics.Contains(mnemonic) {
			panic("x86: jump opcode table produces a mnemonic outside BranchMnemonics: " + mnemonic)
		}
	}
	groupZeroMembers.ForEach(func(reg int) {
		if _, ok := groupZeroFamilies[uint8(reg)]; !ok {
			panic("x86: group dispatch row 0 missing a documented member")
		}
	})
}
