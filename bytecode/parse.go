package bytecode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/jackc/op"
)

// Parse reads VM text. Blank lines and "//" comments are ignored.
func Parse(r io.Reader) ([]Instruction, error) {
	var instructions []Instruction
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ins, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		instructions = append(instructions, ins)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instructions, nil
}

// ParseCode reads VM text into a named Code.
func ParseCode(name string, r io.Reader) (*Code, error) {
	instructions, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return NewCode(name, instructions), nil
}

func parseFields(fields []string) (Instruction, error) {
	code, ok := op.Lookup(fields[0])
	if !ok {
		return Instruction{}, fmt.Errorf("unknown command %q", fields[0])
	}
	info := op.GetInfo(code)
	if len(fields)-1 != info.OperandCount {
		return Instruction{}, fmt.Errorf("%s expects %d operands, got %d", fields[0], info.OperandCount, len(fields)-1)
	}
	switch code {
	case op.Arithmetic:
		operator, _ := op.LookupOperator(fields[0])
		return Arithmetic(operator), nil
	case op.Push, op.Pop:
		segment, ok := op.LookupSegment(fields[1])
		if !ok {
			return Instruction{}, fmt.Errorf("unknown segment %q", fields[1])
		}
		index, err := parseIndex(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Code: code, Segment: segment, Index: index}, nil
	case op.Label, op.Goto, op.IfGoto:
		return Instruction{Code: code, Name: fields[1]}, nil
	case op.Function, op.Call:
		n, err := parseIndex(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Code: code, Name: fields[1], Index: n}, nil
	default:
		return Return(), nil
	}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return n, nil
}
