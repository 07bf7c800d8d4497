package compiler

import "fmt"

// SubroutineKind determines how a subroutine binds its receiver.
type SubroutineKind int

const (
	Function SubroutineKind = iota
	Constructor
	Method
)

func (k SubroutineKind) String() string {
	switch k {
	case Constructor:
		return "constructor"
	case Method:
		return "method"
	default:
		return "function"
	}
}

var subroutineKinds = map[string]SubroutineKind{
	"constructor": Constructor,
	"function":    Function,
	"method":      Method,
}

// Context is the state threaded through the compilation of one class.
type Context struct {
	// ClassName qualifies the subroutines of the class.
	ClassName string

	// Subroutine is the name of the subroutine being compiled.
	Subroutine string

	// Kind of the subroutine being compiled.
	Kind SubroutineKind

	labels int
}

// StartSubroutine records the subroutine being compiled. The label counter
// keeps running across subroutines.
func (c *Context) StartSubroutine(name string, kind SubroutineKind) {
	c.Subroutine = name
	c.Kind = kind
}

// FunctionName returns the qualified name of the current subroutine.
func (c *Context) FunctionName() string {
	return c.ClassName + "." + c.Subroutine
}

// Labels returns a pair of branch labels that is unique within the class.
func (c *Context) Labels(first, second string) (string, string) {
	n := c.labels
	c.labels++
	return fmt.Sprintf("%s_%d", first, n), fmt.Sprintf("%s_%d", second, n)
}
