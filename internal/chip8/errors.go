package chip8

import "errors"

// Sentinel error kinds. Every fatal condition the VM can encounter wraps
// one of these with fmt.Errorf("%w: ...") so callers can errors.Is against
// a stable kind regardless of the message text.
var (
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrStackOverflow    = errors.New("stack overflow")
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrMemoryOutOfRange = errors.New("memory out of range")
	ErrProgramTooLarge  = errors.New("program too large")
)
