package cmd

import (
	"log"
	"os"

	"github.com/nvestern/chippy-core/internal/chip8"
	"github.com/nvestern/chippy-core/internal/host"
	"github.com/spf13/cobra"
)

var (
	runHz    int
	runScale float64
	runMute  bool
	runBeep  string
)

// runCmd loads a ROM and runs the chippy emulator until the window closes.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().IntVar(&runHz, "hz", 500, "CPU cycles per second")
	runCmd.Flags().Float64Var(&runScale, "scale", 1, "window pixel scale factor")
	runCmd.Flags().BoolVar(&runMute, "mute", false, "disable the audio sink")
	runCmd.Flags().StringVar(&runBeep, "beep", "assets/beep.mp3", "path to the beep tone played each time the sound timer becomes nonzero")
}

func runChippy(cmd *cobra.Command, args []string) {
	pathToROM := args[0]
	logger := log.New(os.Stderr, "chippy: ", 0)

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		logger.Printf("error reading ROM %s: %v\n", pathToROM, err)
		os.Exit(1)
	}

	vm := chip8.NewVM()
	if err := vm.LoadProgram(rom); err != nil {
		logger.Printf("error loading ROM into VM: %v\n", err)
		os.Exit(1)
	}

	session, err := host.NewSession(vm, host.Config{
		CPUHz:         runHz,
		Scale:         runScale,
		Mute:          runMute,
		BeepAssetPath: runBeep,
		WindowTitle:   "chippy",
	}, logger)
	if err != nil {
		logger.Printf("error starting session: %v\n", err)
		os.Exit(1)
	}

	session.Run()
}
