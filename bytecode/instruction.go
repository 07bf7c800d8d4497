package bytecode

import (
	"strconv"

	"github.com/deepnoodle-ai/jackc/op"
)

// Instruction is one stack machine instruction. Which fields are meaningful
// depends on Code:
//
//	Push, Pop:   Segment, Index
//	Arithmetic:  Operator
//	Label, Goto, IfGoto: Name
//	Function:    Name, Index (local count)
//	Call:        Name, Index (argument count)
//	Return:      none
type Instruction struct {
	Code     op.Code
	Segment  op.Segment
	Operator op.Operator
	Name     string
	Index    int
}

// String renders the instruction in VM text format.
func (i Instruction) String() string {
	switch i.Code {
	case op.Push, op.Pop:
		return i.Code.String() + " " + i.Segment.String() + " " + strconv.Itoa(i.Index)
	case op.Arithmetic:
		return i.Operator.String()
	case op.Label, op.Goto, op.IfGoto:
		return i.Code.String() + " " + i.Name
	case op.Function, op.Call:
		return i.Code.String() + " " + i.Name + " " + strconv.Itoa(i.Index)
	case op.Return:
		return i.Code.String()
	default:
		return ""
	}
}

// Push returns a push instruction.
func Push(segment op.Segment, index int) Instruction {
	return Instruction{Code: op.Push, Segment: segment, Index: index}
}

// Pop returns a pop instruction.
func Pop(segment op.Segment, index int) Instruction {
	return Instruction{Code: op.Pop, Segment: segment, Index: index}
}

// Arithmetic returns an arithmetic or logical instruction.
func Arithmetic(operator op.Operator) Instruction {
	return Instruction{Code: op.Arithmetic, Operator: operator}
}

// Label returns a label declaration.
func Label(name string) Instruction {
	return Instruction{Code: op.Label, Name: name}
}

// Goto returns an unconditional jump.
func Goto(label string) Instruction {
	return Instruction{Code: op.Goto, Name: label}
}

// IfGoto returns a jump taken when the popped value is not false.
func IfGoto(label string) Instruction {
	return Instruction{Code: op.IfGoto, Name: label}
}

// Function returns a function header.
func Function(name string, locals int) Instruction {
	return Instruction{Code: op.Function, Name: name, Index: locals}
}

// Call returns a call instruction.
func Call(name string, args int) Instruction {
	return Instruction{Code: op.Call, Name: name, Index: args}
}

// Return returns a return instruction.
func Return() Instruction {
	return Instruction{Code: op.Return}
}
