package bytecode

import (
	"bufio"
	"io"
	"strings"
)

// Code is the compiled instruction stream of one unit. It is immutable after
// creation and safe for concurrent use.
type Code struct {
	name         string
	instructions []Instruction
}

// NewCode creates a Code from the given instructions. The slice is copied.
func NewCode(name string, instructions []Instruction) *Code {
	ins := make([]Instruction, len(instructions))
	copy(ins, instructions)
	return &Code{name: name, instructions: ins}
}

// Name returns the unit name, which is the class name for compiled code.
func (c *Code) Name() string {
	return c.name
}

// InstructionCount returns the number of instructions.
func (c *Code) InstructionCount() int {
	return len(c.instructions)
}

// InstructionAt returns the instruction at index i.
func (c *Code) InstructionAt(i int) Instruction {
	return c.instructions[i]
}

// Lines returns the rendered instructions, one per element.
func (c *Code) Lines() []string {
	lines := make([]string, len(c.instructions))
	for i, ins := range c.instructions {
		lines[i] = ins.String()
	}
	return lines
}

// WriteTo writes the VM text of the code to w.
func (c *Code) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, ins := range c.instructions {
		n, err := bw.WriteString(ins.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}
	return total, bw.Flush()
}

// String returns the VM text of the code.
func (c *Code) String() string {
	var b strings.Builder
	c.WriteTo(&b)
	return b.String()
}

// WriteAll writes the VM text of each code to w, in the order given.
func WriteAll(w io.Writer, codes ...*Code) error {
	for _, c := range codes {
		if _, err := c.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
