package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembly representation of the instruction for trace
// output, or an empty string if the word does not match any known opcode.
func (i Instruction) Mnemonic() string {
	ins := lookup(i.Word)
	if ins == nil {
		return ""
	}
	if params := i.operands(ins.Name); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// lookup finds the instruction in the opcode table of the instruction class.
func lookup(w uint16) *chip8.Instruction {
	for _, op := range chip8.Opcodes[int(w>>12)] {
		if op.Info.Mask&w == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

func (i Instruction) operands(name string) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return ""
	case chip8.JpName:
		if i.Class == 0xB {
			return fmt.Sprintf("V0, $%03X", i.NNN)
		}
		return fmt.Sprintf("$%03X", i.NNN)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", i.NNN)
	case chip8.SeName, chip8.SneName:
		if i.Class == 0x3 || i.Class == 0x4 {
			return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
		}
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case chip8.LdName:
		return i.loadOperands()
	case chip8.AddName:
		switch i.Class {
		case 0x7:
			return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
		case 0xF:
			return fmt.Sprintf("I, V%X", i.X)
		}
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName,
		chip8.ShrName, chip8.ShlName:
		// shifts take their source from VY
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", i.X)
	}
	return ""
}

func (i Instruction) loadOperands() string {
	switch i.Class {
	case 0x6:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case 0xF:
		return i.miscLoadOperands()
	}
	return ""
}

func (i Instruction) miscLoadOperands() string {
	switch i.NN {
	case 0x07:
		return fmt.Sprintf("V%X, DT", i.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", i.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", i.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", i.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", i.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", i.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", i.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}
