package codegen

import (
	"baby/pkg/parser/stack"
	"fmt"
)

// Every operand-stack slot is one 64-bit word.
const WordSize = 8

// Variable is an integer variable living in an operand-stack slot.
type Variable struct {
	Name string
	Slot int // operand-stack depth when the variable was declared
}

// Literal is an interned string constant.
type Literal struct {
	Label string
	Text  string
}

// Len is the byte length written when the literal is printed
func (l Literal) Len() int {
	return len(l.Text)
}

// Codegen holds the compile-time state of one program: the symbol table,
// string bindings, interned literals, label counter and the running depth
// of the operand stack.
type Codegen struct {
	vars     []Variable         // symbol table, innermost declarations last
	scopes   *stack.Stack[int]  // symbol table length at each open scope
	bindings map[string]Literal // string variables, program-global
	literals map[string]Literal // interned literals by content
	order    []Literal          // interned literals in first-use order
	labels   int                // label counter
	depth    int                // running operand-stack depth, in words
}

// NewCodegen creates a new Codegen instance
func NewCodegen() *Codegen {
	return &Codegen{
		vars:     make([]Variable, 0),
		scopes:   stack.NewStack[int](),
		bindings: make(map[string]Literal),
		literals: make(map[string]Literal),
		order:    make([]Literal, 0),
	}
}

// Depth returns the number of words currently on the operand stack
func (c *Codegen) Depth() int {
	return c.depth
}

// Push records one word pushed onto the operand stack
func (c *Codegen) Push() {
	c.depth++
}

// Pop records one word popped from the operand stack
func (c *Codegen) Pop() {
	if c.depth == 0 {
		panic("codegen: operand stack underflow")
	}
	c.depth--
}

// Offset returns the byte offset of v from the stack pointer
func (c *Codegen) Offset(v Variable) int {
	return (c.depth - v.Slot - 1) * WordSize
}

// NewLabel returns a fresh jump label
func (c *Codegen) NewLabel() string {
	label := fmt.Sprintf("label_%d", c.labels)
	c.labels++
	return label
}

// Literals returns the interned literals in declaration order
func (c *Codegen) Literals() []Literal {
	return c.order
}

// Variables returns the visible symbol table, outermost first
func (c *Codegen) Variables() []Variable {
	return c.vars
}
