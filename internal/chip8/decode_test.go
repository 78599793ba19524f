package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		op   uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1ABC, "JP   0xABC"},
		{0x2ABC, "CALL 0xABC"},
		{0x3A12, "SE   VA, 0x12"},
		{0x6A12, "LD   VA, 0x12"},
		{0x8AB4, "ADD  VA, VB"},
		{0xA123, "LD   I, 0x123"},
		{0xDAB5, "DRW  VA, VB, 0x5"},
		{0xFA0A, "LD   VA, K"},
		{0xFA33, "LD   B, VA"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Disassemble(tc.op))
	}
}

func TestDisassemble_UnknownShapeFallsBackToData(t *testing.T) {
	require.Equal(t, "DATA 0x5001", Disassemble(0x5001))
}
