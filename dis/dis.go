// Package dis produces a readable listing of compiled Jack code. Each
// instruction is shown with its offset, command, operands and a short
// annotation: the local count of a function, the arity of a call, the
// target offset of a jump, or the character pushed while building a string.
package dis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/jackc/bytecode"
	"github.com/deepnoodle-ai/jackc/internal/table"
	"github.com/deepnoodle-ai/jackc/op"
)

// Instruction is a single disassembled instruction.
type Instruction struct {
	Offset      int
	Name        string
	Operands    []string
	Annotation  string
	Instruction bytecode.Instruction
}

var operatorSymbols = map[op.Operator]string{
	op.Add: "x + y",
	op.Sub: "x - y",
	op.Neg: "-y",
	op.Eq:  "x = y",
	op.Gt:  "x > y",
	op.Lt:  "x < y",
	op.And: "x & y",
	op.Or:  "x | y",
	op.Not: "~y",
}

// Disassemble returns the listing of the given code. It fails if a jump
// refers to a label that is not declared in the code.
func Disassemble(code *bytecode.Code) ([]Instruction, error) {
	labels := map[string]int{}
	for i := 0; i < code.InstructionCount(); i++ {
		ins := code.InstructionAt(i)
		if ins.Code == op.Label {
			labels[ins.Name] = i
		}
	}

	instructions := make([]Instruction, 0, code.InstructionCount())
	for i := 0; i < code.InstructionCount(); i++ {
		ins := code.InstructionAt(i)
		var operands []string
		var annotation string
		switch ins.Code {
		case op.Push, op.Pop:
			operands = []string{ins.Segment.String(), strconv.Itoa(ins.Index)}
			annotation = segmentAnnotation(code, i)
		case op.Arithmetic:
			annotation = operatorSymbols[ins.Operator]
		case op.Label:
			operands = []string{ins.Name}
		case op.Goto, op.IfGoto:
			operands = []string{ins.Name}
			target, ok := labels[ins.Name]
			if !ok {
				return nil, fmt.Errorf("%s at offset %d: undefined label %q", ins.Code, i, ins.Name)
			}
			annotation = fmt.Sprintf("-> %d", target)
		case op.Function:
			operands = []string{ins.Name, strconv.Itoa(ins.Index)}
			annotation = plural(ins.Index, "local")
		case op.Call:
			operands = []string{ins.Name, strconv.Itoa(ins.Index)}
			annotation = plural(ins.Index, "arg")
		}
		name := ins.Code.String()
		if ins.Code == op.Arithmetic {
			name = ins.Operator.String()
		}
		instructions = append(instructions, Instruction{
			Offset:      i,
			Name:        name,
			Operands:    operands,
			Annotation:  annotation,
			Instruction: ins,
		})
	}
	return instructions, nil
}

func segmentAnnotation(code *bytecode.Code, i int) string {
	ins := code.InstructionAt(i)
	switch ins.Segment {
	case op.Pointer:
		if ins.Index == 0 {
			return "this"
		}
		return "that"
	case op.Constant:
		// A character of a string constant
		if i+1 < code.InstructionCount() {
			next := code.InstructionAt(i + 1)
			if next.Code == op.Call && next.Name == "String.appendChar" {
				return strconv.QuoteRune(rune(ins.Index))
			}
		}
	}
	return ""
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

// Print writes the listing as a table. Colors follow color.NoColor.
func Print(instructions []Instruction, writer io.Writer) error {
	bold := color.New(color.Bold)
	header := color.New(color.FgMagenta, color.Bold)
	info := color.New(color.FgHiCyan)
	char := color.New(color.FgGreen)

	var rows [][]string
	for _, instr := range instructions {
		name := instr.Name
		if instr.Instruction.Code == op.Function {
			name = header.Sprint(name)
		} else {
			name = bold.Sprint(name)
		}
		annotation := instr.Annotation
		switch {
		case annotation == "":
		case instr.Instruction.Segment == op.Constant:
			annotation = char.Sprint(annotation)
		default:
			annotation = info.Sprint(annotation)
		}
		rows = append(rows, []string{
			strconv.Itoa(instr.Offset),
			name,
			strings.Join(instr.Operands, " "),
			annotation,
		})
	}

	return table.NewTable(writer).
		WithHeader([]string{"OFFSET", "COMMAND", "OPERANDS", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignLeft,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(rows).
		Render()
}
