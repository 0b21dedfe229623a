package interpreter

import (
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/log"
)

// Tick executes a single instruction. While the interpreter is waiting for a
// key it does nothing. Once an instruction failed, the interpreter is halted
// and every further call returns the same error.
func (i *Interpreter) Tick() error {
	if i.err != nil {
		return i.err
	}
	if i.state.Mode == WaitingForKey {
		return nil
	}

	pc := i.pc
	b, err := i.mem.Slice(pc, pc+opcode.Size)
	if err != nil {
		i.err = &ExecError{
			Err:   err,
			PC:    pc,
			Fetch: true,
		}
		return i.err
	}
	ins := opcode.Decode(b[0], b[1])

	if i.opts.Trace {
		i.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.String("word", ins.String()),
			log.String("instruction", ins.Mnemonic()),
			log.Stringer("registers", i.reg))
	}

	// control transfers overwrite this default advance
	i.pc += opcode.Size

	if err := i.execute(ins); err != nil {
		return i.halt(pc, ins.Word, err)
	}
	return nil
}

func (i *Interpreter) halt(pc, word uint16, err error) error {
	i.err = &ExecError{
		Err:  err,
		PC:   pc,
		Word: word,
	}
	return i.err
}

func (i *Interpreter) execute(ins opcode.Instruction) error {
	switch ins.Word {
	case 0x00E0:
		i.display.Clear()
		return nil
	case 0x00EE:
		return i.ret()
	}

	switch ins.Class {
	case 0x1: // JP nnn
		i.pc = ins.NNN
	case 0x2: // CALL nnn
		return i.call(ins.NNN)
	case 0x3: // SE Vx, nn
		i.skipIf(i.reg.Get(ins.X) == ins.NN)
	case 0x4: // SNE Vx, nn
		i.skipIf(i.reg.Get(ins.X) != ins.NN)
	case 0x5: // SE Vx, Vy
		i.skipIf(i.reg.Get(ins.X) == i.reg.Get(ins.Y))
	case 0x6: // LD Vx, nn
		i.reg.Set(ins.X, ins.NN)
	case 0x7: // ADD Vx, nn, no carry
		*i.reg.Ptr(ins.X) += ins.NN
	case 0x8:
		return i.alu(ins)
	case 0x9: // SNE Vx, Vy
		i.skipIf(i.reg.Get(ins.X) != i.reg.Get(ins.Y))
	case 0xA: // LD I, nnn
		i.index = ins.NNN
	case 0xB: // JP V0, nnn
		i.pc = ins.NNN + uint16(i.reg.Get(register.V0))
	case 0xC: // RND Vx, nn
		i.reg.Set(ins.X, i.rnd.Byte()&ins.NN)
	case 0xD: // DRW Vx, Vy, n
		return i.draw(ins)
	case 0xE:
		return i.keySkip(ins)
	case 0xF:
		return i.misc(ins)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (i *Interpreter) skipIf(cond bool) {
	if cond {
		i.pc += opcode.Size
	}
}

func (i *Interpreter) call(address uint16) error {
	if i.sp == len(i.stack) {
		return ErrStackOverflow
	}
	i.stack[i.sp] = i.pc
	i.sp++
	i.pc = address
	return nil
}

func (i *Interpreter) ret() error {
	if i.sp == 0 {
		return ErrStackUnderflow
	}
	i.sp--
	i.pc = i.stack[i.sp]
	return nil
}

// alu executes the 8XYN register pair operations.
func (i *Interpreter) alu(ins opcode.Instruction) error {
	vx := i.reg.Get(ins.X)
	vy := i.reg.Get(ins.Y)

	switch ins.N {
	case 0x0: // LD Vx, Vy
		i.reg.Set(ins.X, vy)
	case 0x1: // OR Vx, Vy
		i.reg.Set(ins.X, vx|vy)
	case 0x2: // AND Vx, Vy
		i.reg.Set(ins.X, vx&vy)
	case 0x3: // XOR Vx, Vy
		i.reg.Set(ins.X, vx^vy)
	case 0x4: // ADD Vx, Vy, carry into VF
		sum := vx + vy
		i.reg.Set(ins.X, sum)
		i.reg.SetFlag(boolToFlag(sum < vy))
	case 0x5: // SUB Vx, Vy, borrow into VF
		i.reg.SetFlag(boolToFlag(vy > vx))
		i.reg.Set(ins.X, vx-vy)
	case 0x6: // SHR Vx, Vy, shifted out bit into VF
		i.reg.SetFlag(vy & 0x1)
		i.reg.Set(ins.X, vy>>1)
	case 0x7: // SUBN Vx, Vy, borrow into VF
		i.reg.SetFlag(boolToFlag(vx > vy))
		i.reg.Set(ins.X, vy-vx)
	case 0xE: // SHL Vx, Vy, shifted out bit into VF
		i.reg.SetFlag(vy >> 7)
		i.reg.Set(ins.X, vy<<1)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (i *Interpreter) draw(ins opcode.Instruction) error {
	sprite, err := i.mem.Slice(i.index, i.index+uint16(ins.N))
	if err != nil {
		return err
	}
	collision := i.display.Draw(sprite, i.reg.Get(ins.X), i.reg.Get(ins.Y))
	i.reg.SetFlag(boolToFlag(collision))
	return nil
}

func (i *Interpreter) keySkip(ins opcode.Instruction) error {
	key := i.reg.Get(ins.X)
	switch ins.NN {
	case 0x9E: // SKP Vx
		i.skipIf(i.keyPressed(key))
	case 0xA1: // SKNP Vx
		i.skipIf(!i.keyPressed(key))
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// misc executes the FXNN timer, keypad and memory instructions.
func (i *Interpreter) misc(ins opcode.Instruction) error {
	switch ins.NN {
	case 0x07: // LD Vx, DT
		i.reg.Set(ins.X, i.delayTimer)
	case 0x0A: // LD Vx, K
		i.state = State{Mode: WaitingForKey, Target: ins.X}
		i.logger.Debug("Waiting for key", log.Uint8("register", ins.X))
	case 0x15: // LD DT, Vx
		i.delayTimer = i.reg.Get(ins.X)
	case 0x18: // LD ST, Vx
		i.soundTimer = i.reg.Get(ins.X)
	case 0x29: // LD F, Vx
		i.index = i.mem.FontOffset(i.reg.Get(ins.X))
	case 0x1E: // ADD I, Vx
		i.index += uint16(i.reg.Get(ins.X))
	case 0x33: // LD B, Vx
		return i.storeBCD(i.reg.Get(ins.X))
	case 0x55: // LD [I], Vx
		return i.storeRegisters(ins.X)
	case 0x65: // LD Vx, [I]
		return i.loadRegisters(ins.X)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (i *Interpreter) storeBCD(value byte) error {
	dst, err := i.mem.MutSlice(i.index, i.index+3)
	if err != nil {
		return err
	}
	dst[0] = value / 100
	dst[1] = value / 10 % 10
	dst[2] = value % 10
	return nil
}

func (i *Interpreter) storeRegisters(x byte) error {
	end := i.index + uint16(x) + 1
	dst, err := i.mem.MutSlice(i.index, end)
	if err != nil {
		return err
	}
	i.reg.Store(dst, x)
	i.index = end
	return nil
}

func (i *Interpreter) loadRegisters(x byte) error {
	end := i.index + uint16(x) + 1
	src, err := i.mem.Slice(i.index, end)
	if err != nil {
		return err
	}
	i.reg.Load(src, x)
	i.index = end
	return nil
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
