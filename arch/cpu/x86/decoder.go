package x86

import (
	"sort"
	"strconv"
	"strings"
)

// record is one decoded instruction's text together with the byte offset
// at which it began. Offsets are used both for output ordering and as keys
// to match jump targets during label stitching.
type record struct {
	Offset int
	Text   string
}

// labelInsert is a queued label declaration waiting to be stitched in
// before the record at Offset, in first-seen order.
type labelInsert struct {
	Offset int
	Name   string
}

// decodeState is per-call state: the label table and the pending insert
// queue. It must never be shared across calls to Decode, so that repeated
// decodes of different inputs produce deterministic, independent label
// numbering.
type decodeState struct {
	labels  map[int]string
	queue   []labelInsert
	counter int
}

func newDecodeState() *decodeState {
	return &decodeState{labels: make(map[int]string)}
}

// labelFor returns the label name bound to target, allocating and queuing
// a new one (label0, label1, ...) the first time target is seen.
func (st *decodeState) labelFor(target int) string {
	if name, ok := st.labels[target]; ok {
		return name
	}
	name := "label" + strconv.Itoa(st.counter)
	st.counter++
	st.labels[target] = name
	st.queue = append(st.queue, labelInsert{Offset: target, Name: name})
	return name
}

// Decode translates a byte stream into NASM-syntax assembly text, starting
// with a "bits 16" declaration and interleaving synthesized labels at
// every decoded control-flow target. It returns a DecodeError, with no
// partial output, if any byte in the stream falls outside the decoder's
// supported opcode subset.
func Decode(data []byte) (string, error) {
	st := newDecodeState()
	records := make([]record, 0, len(data))

	offset := 0
	for offset < len(data) {
		fn := primaryDispatch[data[offset]]
		text, n, err := fn(data, offset, st)
		if err != nil {
			return "", err
		}
		if n <= 0 {
			return "", newDecodeError(ErrUnknownOpcode, offset)
		}
		records = append(records, record{Offset: offset, Text: text})
		offset += n
	}

	return st.render(records), nil
}

// render merges the queued label declarations into the record list and
// writes the final listing. Each queued insert locates its target record
// by binary search over the offset-sorted record list, mirroring a
// classic two-pass disassembler's patchback pass; a target that does not
// land on any decoded instruction boundary (a malformed or unreachable
// jump target) is silently dropped rather than stitched in mid-instruction.
func (st *decodeState) render(records []record) string {
	labelAt := make(map[int]string, len(st.queue))
	for _, ins := range st.queue {
		idx := sort.Search(len(records), func(i int) bool { return records[i].Offset >= ins.Offset })
		if idx < len(records) && records[idx].Offset == ins.Offset {
			labelAt[ins.Offset] = ins.Name
		}
	}

	var b strings.Builder
	b.WriteString("bits 16\n\n")
	for _, r := range records {
		if name, ok := labelAt[r.Offset]; ok {
			b.WriteString(name)
			b.WriteString(":\n")
		}
		b.WriteString(r.Text)
		b.WriteString("\n")
	}
	return b.String()
}

