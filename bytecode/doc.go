// Package bytecode provides the instruction stream produced by compiling one
// Jack class.
//
// # Key Types
//
//   - [Instruction]: a single stack machine instruction (value type)
//   - [Writer]: the append-only emitter used by the compiler
//   - [Code]: the finished, immutable instruction stream of one unit
//
// The Writer appends exactly one instruction per call, in call order. The
// only edit it permits is patching the local count of a function header
// written earlier with [Placeholder], because a subroutine's locals are
// declared after its header position in a single forward pass. A Code can
// only be produced once every header has been patched.
//
// # Text Format
//
// Code renders to the line format consumed by the VM translator: one
// instruction per line, space separated fields, lower case mnemonics.
//
//	function Main.main 1
//	push constant 7
//	pop local 0
//	push constant 0
//	return
//
// [Parse] reads the same format back.
package bytecode
