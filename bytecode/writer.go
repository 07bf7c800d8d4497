package bytecode

import (
	"fmt"

	"github.com/deepnoodle-ai/jackc/op"
)

// Placeholder is written as the local count of a function header whose
// count is not yet known. It must be replaced via PatchLocals before the
// Code is produced.
const Placeholder = -1

// Writer appends instructions to the stream of one compilation unit.
type Writer struct {
	name         string
	instructions []Instruction
	pending      map[int]bool
}

// NewWriter returns an empty Writer for the named unit.
func NewWriter(name string) *Writer {
	return &Writer{name: name, pending: map[int]bool{}}
}

// SetName sets the unit name, usually the class name once it is known.
func (w *Writer) SetName(name string) {
	w.name = name
}

func (w *Writer) emit(ins Instruction) int {
	pos := len(w.instructions)
	w.instructions = append(w.instructions, ins)
	return pos
}

// Len returns the number of instructions written so far.
func (w *Writer) Len() int {
	return len(w.instructions)
}

// WritePush writes a push instruction.
func (w *Writer) WritePush(segment op.Segment, index int) {
	w.emit(Push(segment, index))
}

// WritePop writes a pop instruction.
func (w *Writer) WritePop(segment op.Segment, index int) {
	w.emit(Pop(segment, index))
}

// WriteArithmetic writes an arithmetic or logical instruction.
func (w *Writer) WriteArithmetic(operator op.Operator) {
	w.emit(Arithmetic(operator))
}

// WriteLabel writes a label declaration.
func (w *Writer) WriteLabel(label string) {
	w.emit(Label(label))
}

// WriteGoto writes an unconditional jump.
func (w *Writer) WriteGoto(label string) {
	w.emit(Goto(label))
}

// WriteIf writes a conditional jump.
func (w *Writer) WriteIf(label string) {
	w.emit(IfGoto(label))
}

// WriteCall writes a call instruction.
func (w *Writer) WriteCall(name string, args int) {
	w.emit(Call(name, args))
}

// WriteFunction writes a function header and returns its position. Pass
// Placeholder as locals to patch the count later.
func (w *Writer) WriteFunction(name string, locals int) int {
	pos := w.emit(Function(name, locals))
	if locals == Placeholder {
		w.pending[pos] = true
	}
	return pos
}

// WriteReturn writes a return instruction.
func (w *Writer) WriteReturn() {
	w.emit(Return())
}

// PatchLocals sets the local count of the function header at pos.
func (w *Writer) PatchLocals(pos, locals int) error {
	if pos < 0 || pos >= len(w.instructions) {
		return fmt.Errorf("patch position %d out of range", pos)
	}
	if w.instructions[pos].Code != op.Function {
		return fmt.Errorf("instruction %d is %q, not a function header", pos, w.instructions[pos])
	}
	if locals < 0 {
		return fmt.Errorf("invalid local count %d", locals)
	}
	w.instructions[pos].Index = locals
	delete(w.pending, pos)
	return nil
}

// Code returns the finished instruction stream. It fails if a function
// header still carries a Placeholder.
func (w *Writer) Code() (*Code, error) {
	first := -1
	for pos := range w.pending {
		if first < 0 || pos < first {
			first = pos
		}
	}
	if first >= 0 {
		return nil, fmt.Errorf("function header %q at %d was never patched", w.instructions[first].Name, first)
	}
	return NewCode(w.name, w.instructions), nil
}
