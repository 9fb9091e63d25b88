package interpreter

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"baby/pkg/codegen"

	"github.com/charmbracelet/log"
)

// Linux system call numbers understood by the interpreter
const (
	sysWrite = 1
	sysExit  = 60
)

// Exec runs a listing with the default step function and stdout as writer
func Exec(listing codegen.Listing) (int, error) {
	it := NewInterpreter(listing, WithWriter(os.Stdout))
	it.SetExecStep(coreStep)
	err := it.Run()
	return it.ExitCode(), err
}

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	pc := i.PC()
	if pc < 0 || pc >= len(i.text) {
		// halt if PC goes out of bounds
		return true, nil
	}

	in := i.text[pc]
	next := pc + 1

	switch in.Op {
	case codegen.OpLabel:
		// nothing to do

	case codegen.OpMov:
		v, err := i.load(in.Src)
		if err != nil {
			return false, err
		}
		if err := i.store(in.Dst, v); err != nil {
			return false, err
		}

	case codegen.OpMovzx:
		v, err := i.load(in.Src)
		if err != nil {
			return false, err
		}
		n, err := v.AsInt()
		if err != nil {
			return false, err
		}
		if err := i.store(in.Dst, newInt(n&0xff)); err != nil {
			return false, err
		}

	case codegen.OpPush:
		v, err := i.load(in.Dst)
		if err != nil {
			return false, err
		}
		i.stack = append(i.stack, v)

	case codegen.OpPop:
		if len(i.stack) == 0 {
			return false, ErrStackUnderflow
		}
		v := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		if err := i.store(in.Dst, v); err != nil {
			return false, err
		}

	case codegen.OpAdd, codegen.OpSub, codegen.OpImul:
		if in.Dst == codegen.RSP {
			if err := i.adjustStack(in); err != nil {
				return false, err
			}
			break
		}
		if err := i.arith(in); err != nil {
			return false, err
		}

	case codegen.OpCqo:
		rax, err := i.loadInt(codegen.RAX)
		if err != nil {
			return false, err
		}
		i.regs[codegen.RDX] = newInt(rax >> 63)

	case codegen.OpIdiv:
		if err := i.divide(in); err != nil {
			return false, err
		}

	case codegen.OpCmp, codegen.OpTest:
		a, err := i.loadInt(in.Dst)
		if err != nil {
			return false, err
		}
		b, err := i.loadInt(in.Src)
		if err != nil {
			return false, err
		}
		if in.Op == codegen.OpTest {
			i.flags = flags{lhs: a & b, rhs: 0}
		} else {
			i.flags = flags{lhs: a, rhs: b}
		}

	case codegen.OpSete, codegen.OpSetne, codegen.OpSetl, codegen.OpSetle, codegen.OpSetg, codegen.OpSetge:
		var bit int64
		if i.condition(in.Op) {
			bit = 1
		}
		if err := i.store(in.Dst, newInt(bit)); err != nil {
			return false, err
		}

	case codegen.OpJz, codegen.OpJmp:
		if in.Op == codegen.OpJz && i.flags.lhs != i.flags.rhs {
			break
		}
		target, ok := i.labels[in.Dst.String()]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownLabel, in.Dst)
		}
		next = target

	case codegen.OpCall:
		if in.Dst.String() != codegen.PrintIntLabel {
			return false, fmt.Errorf("%w: call %s", ErrUnknownLabel, in.Dst)
		}
		rax, err := i.loadInt(codegen.RAX)
		if err != nil {
			return false, err
		}
		if _, err := io.WriteString(i.out, strconv.FormatInt(rax, 10)+"\n"); err != nil {
			return false, err
		}

	case codegen.OpSyscall:
		return i.syscall(next)

	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupported, in)
	}

	i.SetPC(next)
	return false, nil
}

// syscall performs write(2) or exit(2) as selected by rax
func (i *Interpreter) syscall(next int) (bool, error) {
	nr, err := i.loadInt(codegen.RAX)
	if err != nil {
		return false, err
	}

	switch nr {
	case sysWrite:
		addr, err := i.regs[codegen.RSI].AsAddr()
		if err != nil {
			return false, err
		}
		n, err := i.loadInt(codegen.RDX)
		if err != nil {
			return false, err
		}
		buf, ok := i.data[addr]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownLabel, addr)
		}
		if n < 0 || n > int64(len(buf)) {
			return false, fmt.Errorf("%w: write of %d bytes from %s", ErrInvalidOperand, n, addr)
		}
		if _, err := i.out.Write(buf[:n]); err != nil {
			return false, err
		}
		i.regs[codegen.RAX] = newInt(n)
		i.SetPC(next)
		return false, nil

	case sysExit:
		status, err := i.loadInt(codegen.RDI)
		if err != nil {
			return false, err
		}
		// the kernel keeps the low byte of the status
		i.exitCode = int(status & 0xff)
		log.Debug("Program exited", "status", i.exitCode, "steps", i.steps+1)
		return true, nil

	default:
		return false, fmt.Errorf("%w: syscall %d", ErrUnsupported, nr)
	}
}

// adjustStack handles `add rsp, n`, which discards n/8 operand-stack words
func (i *Interpreter) adjustStack(in codegen.Instruction) error {
	n, err := i.loadInt(in.Src)
	if err != nil {
		return err
	}
	if in.Op != codegen.OpAdd || n%codegen.WordSize != 0 {
		return fmt.Errorf("%w: %s", ErrUnsupported, in)
	}

	words := int(n / codegen.WordSize)
	if words > len(i.stack) {
		return ErrStackUnderflow
	}
	i.stack = i.stack[:len(i.stack)-words]

	return nil
}

func (i *Interpreter) arith(in codegen.Instruction) error {
	a, err := i.loadInt(in.Dst)
	if err != nil {
		return err
	}
	b, err := i.loadInt(in.Src)
	if err != nil {
		return err
	}

	var res int64
	switch in.Op {
	case codegen.OpAdd:
		res = a + b
	case codegen.OpSub:
		res = a - b
	case codegen.OpImul:
		res = a * b
	}

	return i.store(in.Dst, newInt(res))
}

// divide handles `idiv src`: rax = rdx:rax / src, rdx = remainder
func (i *Interpreter) divide(in codegen.Instruction) error {
	divisor, err := i.loadInt(in.Dst)
	if err != nil {
		return err
	}
	dividend, err := i.loadInt(codegen.RAX)
	if err != nil {
		return err
	}

	if divisor == 0 {
		return ErrDivisionByZero
	}
	if dividend == math.MinInt64 && divisor == -1 {
		return ErrDivisionOverflow
	}

	i.regs[codegen.RAX] = newInt(dividend / divisor)
	i.regs[codegen.RDX] = newInt(dividend % divisor)

	return nil
}

// condition evaluates a setCC against the last comparison
func (i *Interpreter) condition(op codegen.Operation) bool {
	a, b := i.flags.lhs, i.flags.rhs

	switch op {
	case codegen.OpSete:
		return a == b
	case codegen.OpSetne:
		return a != b
	case codegen.OpSetl:
		return a < b
	case codegen.OpSetle:
		return a <= b
	case codegen.OpSetg:
		return a > b
	case codegen.OpSetge:
		return a >= b
	}
	return false
}

// load reads an operand
func (i *Interpreter) load(op codegen.Operand) (Value, error) {
	switch o := op.(type) {
	case codegen.Register:
		return i.regs[o], nil
	case codegen.Imm:
		return newInt(int64(o)), nil
	case codegen.Sym:
		if _, ok := i.data[string(o)]; !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrUnknownLabel, o)
		}
		return newAddr(string(o)), nil
	case codegen.Mem:
		idx, err := i.slot(o)
		if err != nil {
			return Value{}, err
		}
		return i.stack[idx], nil
	default:
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidOperand, op)
	}
}

func (i *Interpreter) loadInt(op codegen.Operand) (int64, error) {
	v, err := i.load(op)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// store writes a register or an operand-stack slot
func (i *Interpreter) store(op codegen.Operand, v Value) error {
	switch o := op.(type) {
	case codegen.Register:
		i.regs[o] = v
		return nil
	case codegen.Mem:
		idx, err := i.slot(o)
		if err != nil {
			return err
		}
		i.stack[idx] = v
		return nil
	default:
		return fmt.Errorf("%w: cannot store to %v", ErrInvalidOperand, op)
	}
}

// slot maps [rsp + disp] to an index into the operand stack
func (i *Interpreter) slot(m codegen.Mem) (int, error) {
	if m.Disp < 0 || m.Disp%codegen.WordSize != 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidOperand, m)
	}

	idx := len(i.stack) - 1 - m.Disp/codegen.WordSize
	if idx < 0 {
		return 0, ErrStackUnderflow
	}
	return idx, nil
}
