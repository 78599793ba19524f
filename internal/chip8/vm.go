// Package chip8 implements the core of a CHIP-8 virtual machine: the
// fetch-decode-execute interpreter, its register and memory model, the
// sprite-XOR display engine, and the input-gated wait semantics the
// instruction set requires. It does no I/O of its own — windowing, audio,
// keyboard event sourcing, and ROM file loading are all external
// collaborators the host wires up around the methods below.
package chip8

import "fmt"

const (
	// MemSize is the total addressable memory, byte-addressable.
	MemSize = 4096

	// EntryPoint is where the program counter starts and where
	// LoadProgram writes the first ROM byte. Addresses below it are
	// reserved for the interpreter; this implementation stores the font
	// set there instead of an interpreter image.
	EntryPoint = 0x200

	// ProgramMaxSize is the largest ROM LoadProgram will accept.
	ProgramMaxSize = MemSize - EntryPoint

	// NumRegisters is the number of general-purpose V registers.
	NumRegisters = 16

	// StackDepth is the number of stack slots. CALL pre-increments SP
	// before storing, so slot 0 is never used and at most StackDepth-1
	// CALLs can be nested.
	StackDepth = 16

	// timerTickEvery is the CPU-tick ratio at which DT/ST decrement, per
	// the canonical ~500Hz-CPU / ~62.5Hz-timer pacing relationship.
	timerTickEvery = 8
)

// VM is the CHIP-8 virtual machine aggregate. It exclusively owns all core
// state; the host only ever calls the methods below, never reaches into
// its fields.
type VM struct {
	memory [MemSize]byte

	v [NumRegisters]byte
	i uint16
	pc uint16

	stack [StackDepth]uint16
	sp    uint8

	delayTimer byte
	soundTimer byte

	display Display
	dirty   bool

	keypad [16]bool

	// waiting is true when the VM is in the WaitingForKey state (set by
	// Fx0A). waitReg names which register the eventual keycode is
	// written to.
	waiting bool
	waitReg uint16

	cycleCount uint64

	rand RandSource
}

// NewVM produces a VM with PC=0x200, all other registers/timers zero,
// stack empty, display cleared, keypad released, wait latch empty, and the
// font sprites preloaded at memory[0x000..0x050].
func NewVM() *VM {
	vm := &VM{
		pc:   EntryPoint,
		rand: DefaultRandSource{},
	}
	copy(vm.memory[fontBaseAddr:], fontSet[:])
	return vm
}

// SetRandSource overrides the capability CXNN draws from. Production code
// may leave the platform default in place; tests install a deterministic
// sequence.
func (vm *VM) SetRandSource(r RandSource) {
	vm.rand = r
}

// LoadProgram writes bytes into memory starting at 0x200. It fails if bytes
// would overflow the 0x200-0xFFF program/data region.
func (vm *VM) LoadProgram(program []byte) error {
	if len(program) > ProgramMaxSize {
		return fmt.Errorf("%w: %d bytes exceeds max %d", ErrProgramTooLarge, len(program), ProgramMaxSize)
	}
	copy(vm.memory[EntryPoint:], program)
	return nil
}

// ViewDisplay returns a read-only view of the framebuffer. The returned
// pointer's contents are stable until the next Tick call; the host must
// read it between ticks.
func (vm *VM) ViewDisplay() *Display {
	return &vm.display
}

// HasDisplayUpdate reports the dirty flag: whether CLS or DRW ran during
// the last executing tick.
func (vm *VM) HasDisplayUpdate() bool {
	return vm.dirty
}

// SoundTimer returns the current value of ST. The core never emits sound
// itself; the host is expected to play a tone while this is nonzero.
func (vm *VM) SoundTimer() byte {
	return vm.soundTimer
}

// DelayTimer returns the current value of DT.
func (vm *VM) DelayTimer() byte {
	return vm.delayTimer
}

// SetKeyPressed marks key index (0..15) as held down. If the wait latch is
// set, this is the fresh key-down edge Fx0A is waiting for: it writes the
// key index into the latched register and clears the latch. A key already
// held when Fx0A executes does NOT satisfy the wait — only this
// false-to-true transition does.
func (vm *VM) SetKeyPressed(index int) {
	if index < 0 || index > 0xF {
		return
	}
	wasDown := vm.keypad[index]
	vm.keypad[index] = true
	if vm.waiting && !wasDown {
		vm.v[vm.waitReg] = byte(index)
		vm.waiting = false
	}
}

// SetKeyReleased marks key index (0..15) as released. It never affects the
// wait latch.
func (vm *VM) SetKeyReleased(index int) {
	if index < 0 || index > 0xF {
		return
	}
	vm.keypad[index] = false
}

// Tick advances one CPU cycle: if the wait latch is set, no instruction is
// fetched and PC does not advance. Otherwise it clears the dirty flag,
// fetches the big-endian instruction at PC, advances PC by two, and
// dispatches it. Timer bookkeeping happens last, regardless of wait state,
// on every call except one whose fetch fails. A non-nil error is fatal: the VM's program is corrupt and the
// caller should not continue ticking it.
func (vm *VM) Tick() error {
	var err error
	if !vm.waiting {
		vm.dirty = false

		op, ferr := vm.fetch(vm.pc)
		if ferr != nil {
			return ferr
		}
		vm.pc += 2

		err = vm.execute(op)
	}

	vm.cycleCount++
	if vm.cycleCount%timerTickEvery == 0 {
		vm.decrementTimers()
	}

	return err
}

// TickTimers60Hz decrements DT/ST by one each, independent of Tick's own
// cycle-gated decrement. This is the alternative contract spec.md §4.5/§9
// allows for hosts that prefer to pulse timers from a dedicated 60Hz
// scheduler rather than relying on the CPU-tick ratio.
func (vm *VM) TickTimers60Hz() {
	vm.decrementTimers()
}

func (vm *VM) decrementTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// fetch reads the big-endian instruction word at addr (high byte at addr,
// low byte at addr+1).
func (vm *VM) fetch(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemSize {
		return 0, fmt.Errorf("%w: fetch at 0x%04X", ErrMemoryOutOfRange, addr)
	}
	return uint16(vm.memory[addr])<<8 | uint16(vm.memory[addr+1]), nil
}

func (vm *VM) readByte(addr uint16) (byte, error) {
	if int(addr) >= MemSize {
		return 0, fmt.Errorf("%w: read at 0x%04X", ErrMemoryOutOfRange, addr)
	}
	return vm.memory[addr], nil
}

func (vm *VM) writeByte(addr uint16, val byte) error {
	if int(addr) >= MemSize {
		return fmt.Errorf("%w: write at 0x%04X", ErrMemoryOutOfRange, addr)
	}
	vm.memory[addr] = val
	return nil
}
