package interpreter

import (
	"errors"
	"io"
	"os"

	"baby/pkg/codegen"
)

// Interpreter executes a generated listing on an emulated x86-64 machine:
// general registers, the operand stack and the flags of the last compare.
// The print_int routine and the write and exit system calls run natively.
type Interpreter struct {
	text []codegen.Instruction // entry routine
	ip   int                   // instruction pointer

	regs  map[codegen.Register]Value // general registers
	stack []Value                    // operand stack, top last
	flags flags                      // operands of the last cmp or test

	entry  string            // label execution starts at
	labels map[string]int    // label -> instruction index
	data   map[string][]byte // data label -> bytes

	out io.Writer // output writer for write(2) and print_int

	// Exec hook (implemented in step.go, via SetExecStep)
	execStep func(*Interpreter) (halted bool, err error)

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed

	exitCode int // status passed to exit(2)
}

// flags keeps both operands of the last comparison; test compares a&b with 0
type flags struct {
	lhs int64
	rhs int64
}

type Option func(*Interpreter)

// WithWriter sets the output writer for the program's stdout
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(listing codegen.Listing, opts ...Option) *Interpreter {
	it := &Interpreter{
		out:      nil, // caller should set, or use WithWriter
		maxSteps: 0,   // 0 => unlimited
	}

	it.Load(listing)
	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.execStep == nil {
		it.execStep = coreStep
	}

	return it
}

// Load replaces the current listing with a new one, resetting state
func (i *Interpreter) Load(listing codegen.Listing) {
	i.text = append([]codegen.Instruction(nil), listing.Text...)
	i.entry = listing.Entry

	i.data = make(map[string][]byte, len(listing.Data))
	for _, lit := range listing.Data {
		i.data[lit.Label] = []byte(lit.Text)
	}

	i.indexProgram()
	i.Reset()
}

// Reset clears runtime state (registers, stack, IP, counters)
func (i *Interpreter) Reset() {
	i.ip = i.labels[i.entry]
	i.regs = make(map[codegen.Register]Value)
	i.stack = i.stack[:0]
	i.flags = flags{}
	i.steps = 0
	i.exitCode = 0
}

// Output returns the output writer
func (i *Interpreter) Output() io.Writer {
	return i.out
}

// SetExecStep installs the core step function
func (i *Interpreter) SetExecStep(fn func(*Interpreter) (bool, error)) {
	i.execStep = fn
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if i.execStep == nil {
		return false, ErrNotImplemented
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := i.execStep(i)
	i.steps++

	return halted, err
}

// Run executes until exit or error
func (i *Interpreter) Run() error {
	if _, ok := i.labels[i.entry]; !ok {
		return ErrNoEntry
	}

	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// ExitCode returns the status the program exited with
func (i *Interpreter) ExitCode() int {
	return i.exitCode
}

// Steps returns the number of instructions executed
func (i *Interpreter) Steps() int {
	return i.steps
}

// StackDepth returns the number of words on the operand stack
func (i *Interpreter) StackDepth() int {
	return len(i.stack)
}

// PC returns the current instruction pointer
func (i *Interpreter) PC() int {
	return i.ip
}

// SetPC sets the current instruction pointer
func (i *Interpreter) SetPC(pc int) {
	i.ip = pc
}

// indexProgram records the position of every label
func (i *Interpreter) indexProgram() {
	i.labels = make(map[string]int)

	for idx, ins := range i.text {
		if ins.Op == codegen.OpLabel {
			i.labels[ins.Dst.String()] = idx
		}
	}
}

var (
	ErrNotImplemented   = errors.New("interpreter step function not linked")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
	ErrNoEntry          = errors.New("entry label not found")
	ErrStackUnderflow   = errors.New("operand stack underflow")
	ErrDivisionByZero   = errors.New("integer division by zero")
	ErrDivisionOverflow = errors.New("integer division overflow")
	ErrInvalidOperand   = errors.New("invalid operand")
	ErrUnknownLabel     = errors.New("unknown label")
	ErrUnsupported      = errors.New("unsupported instruction")
)
