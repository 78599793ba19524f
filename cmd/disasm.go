package cmd

import (
	"fmt"
	"os"

	"github.com/nvestern/chippy-core/internal/chip8"
	"github.com/spf13/cobra"
)

// disasmCmd statically decodes a ROM into a mnemonic listing without
// executing it, using the same opcode decoder the VM dispatches through.
var disasmCmd = &cobra.Command{
	Use:   "disasm `path/to/rom`",
	Short: "disassemble a ROM into CHIP-8 mnemonics",
	Args:  cobra.ExactArgs(1),
	Run:   runDisasm,
}

func runDisasm(cmd *cobra.Command, args []string) {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading ROM %s: %v\n", args[0], err)
		os.Exit(1)
	}

	addr := uint16(chip8.EntryPoint)
	for i := 0; i+1 < len(rom); i += 2 {
		op := uint16(rom[i])<<8 | uint16(rom[i+1])
		fmt.Printf("%04X: %04X  %s\n", addr, op, chip8.Disassemble(op))
		addr += 2
	}
}
