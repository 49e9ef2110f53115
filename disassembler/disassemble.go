package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/terasm/ternary"
)

// Disassemble turns a tryte image into assembly source. Code reachable from
// address 0 is decoded; everything else is emitted as data.
func Disassemble(img ternary.Word) (string, error) {
	if len(img) == 0 {
		return "", nil
	}

	// --- STAGE 1: Linear Sweep ---
	instructions := make(map[int64]*Instruction, len(img))
	for pc := range img {
		instructions[int64(pc)] = decode(img, pc)
	}

	// --- STAGE 2: Control Flow Analysis ---
	labelTargets := make(map[int64]bool)
	q := newQueue()
	q.push(0)

	for {
		addr, ok := q.pop()
		if !ok {
			break
		}

		inst, exists := instructions[addr]
		if !exists || inst.IsCode || inst.Data {
			continue
		}
		inst.IsCode = true

		if !isTerminal(inst) {
			q.push(addr + int64(inst.Size))
		}
		for _, a := range inst.Args {
			if a.Branch && a.Target >= 0 && a.Target < int64(len(img)) {
				q.push(a.Target)
				labelTargets[a.Target] = true
			}
		}
	}

	total := int64(len(img))

	// --- STAGE 3: Row Layout ---
	// Labels are only emitted where a code row starts.
	rows := make(map[int64]bool)
	for pc := int64(0); pc < total; {
		if inst := instructions[pc]; inst.IsCode {
			rows[pc] = true
			pc += int64(inst.Size)
			continue
		}
		pc++
	}
	for target := range labelTargets {
		if !rows[target] {
			delete(labelTargets, target)
		}
	}

	// --- STAGE 4: Render Final Output ---
	var out strings.Builder
	section := ""
	enter := func(s string) {
		if section != s {
			fmt.Fprintf(&out, "%s\n", s)
			section = s
		}
	}

	pc := int64(0)
	for pc < total {
		inst := instructions[pc]
		if !inst.IsCode {
			dataStart := pc
			dataEnd := dataStart
			for dataEnd < total && !instructions[dataEnd].IsCode {
				dataEnd++
			}
			enter(".data")
			out.WriteString(formatData(img[dataStart:dataEnd]))
			pc = dataEnd
			continue
		}

		enter(".code")
		label := ""
		if labelTargets[pc] {
			label = labelName(pc) + ":"
		}
		fmt.Fprintf(&out, "%-10s%s\n", label, inst.render(labelTargets))
		pc += int64(inst.Size)
	}

	return out.String(), nil
}

// render writes the instruction with branch targets replaced by their labels.
func (inst *Instruction) render(labels map[int64]bool) string {
	if len(inst.Args) == 0 {
		return inst.Mnemonic
	}

	args := make([]string, len(inst.Args))
	for i, a := range inst.Args {
		args[i] = a.Text
		if a.Branch && labels[a.Target] {
			args[i] = labelName(a.Target)
		}
	}

	if inst.HasDest {
		last := len(args) - 1
		return fmt.Sprintf("%-8s %s → %s", inst.Mnemonic, strings.Join(args[:last], ", "), args[last])
	}
	return fmt.Sprintf("%-8s %s", inst.Mnemonic, strings.Join(args, ", "))
}

// isTerminal checks if an instruction unconditionally stops linear execution.
func isTerminal(inst *Instruction) bool {
	return inst.Mnemonic == "jmp" || inst.Mnemonic == "restart"
}

// addrQueue is a FIFO of addresses still to be visited. Each address is queued once.
type addrQueue struct {
	items []int64
	seen  map[int64]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[int64]bool)}
}

func (q *addrQueue) push(addr int64) {
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (int64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	addr := q.items[0]
	q.items = q.items[1:]
	return addr, true
}
