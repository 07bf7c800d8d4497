// Package op defines the commands, memory segments and operators of the
// stack machine that compiled Jack code targets.
package op

// Code identifies the shape of an instruction.
type Code uint8

const (
	Invalid Code = iota

	// Memory access
	Push
	Pop

	// Arithmetic and logic. The operator is carried separately.
	Arithmetic

	// Branching
	Label
	Goto
	IfGoto

	// Functions
	Function
	Call
	Return
)

// Segment is a virtual memory segment addressed by push and pop.
type Segment uint8

const (
	InvalidSegment Segment = iota
	Constant
	Argument
	Local
	Static
	This
	That
	Pointer
	Temp
)

var segmentNames = [...]string{
	InvalidSegment: "",
	Constant:       "constant",
	Argument:       "argument",
	Local:          "local",
	Static:         "static",
	This:           "this",
	That:           "that",
	Pointer:        "pointer",
	Temp:           "temp",
}

// String returns the name of the segment as it appears in VM text.
func (s Segment) String() string {
	if int(s) < len(segmentNames) {
		return segmentNames[s]
	}
	return ""
}

// LookupSegment returns the segment with the given name.
func LookupSegment(name string) (Segment, bool) {
	for i, n := range segmentNames {
		if n != "" && n == name {
			return Segment(i), true
		}
	}
	return InvalidSegment, false
}

// Operator is an arithmetic, comparison or logical operation applied to the
// top of the stack.
type Operator uint8

const (
	InvalidOperator Operator = iota
	Add
	Sub
	Neg
	Eq
	Gt
	Lt
	And
	Or
	Not
)

var operatorNames = [...]string{
	InvalidOperator: "",
	Add:             "add",
	Sub:             "sub",
	Neg:             "neg",
	Eq:              "eq",
	Gt:              "gt",
	Lt:              "lt",
	And:             "and",
	Or:              "or",
	Not:             "not",
}

// String returns the mnemonic of the operator.
func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return ""
}

// IsUnary reports whether the operator consumes a single operand.
func (o Operator) IsUnary() bool {
	return o == Neg || o == Not
}

// LookupOperator returns the operator with the given mnemonic.
func LookupOperator(name string) (Operator, bool) {
	for i, n := range operatorNames {
		if n != "" && n == name {
			return Operator(i), true
		}
	}
	return InvalidOperator, false
}

// Info contains information about an instruction code.
type Info struct {
	Code Code
	// Name is the mnemonic. Arithmetic instructions are written using the
	// operator mnemonic instead.
	Name         string
	OperandCount int
}

var infos = make([]Info, Return+1)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{Push, "push", 2},
		{Pop, "pop", 2},
		{Arithmetic, "arithmetic", 0},
		{Label, "label", 1},
		{Goto, "goto", 1},
		{IfGoto, "if-goto", 1},
		{Function, "function", 2},
		{Call, "call", 2},
		{Return, "return", 0},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:         o.op,
			Name:         o.name,
			OperandCount: o.count,
		}
	}
}

// GetInfo returns information about the given code.
func GetInfo(code Code) Info {
	if int(code) >= len(infos) {
		return Info{}
	}
	return infos[code]
}

// String returns the mnemonic of the code.
func (c Code) String() string {
	return GetInfo(c).Name
}

// Lookup returns the code for a command mnemonic. Operator mnemonics resolve
// to Arithmetic.
func Lookup(name string) (Code, bool) {
	if _, ok := LookupOperator(name); ok {
		return Arithmetic, true
	}
	for _, info := range infos {
		if info.Name != "" && info.Code != Arithmetic && info.Name == name {
			return info.Code, true
		}
	}
	return Invalid, false
}
