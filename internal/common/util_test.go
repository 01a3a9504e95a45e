package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pastor@Church.com", "pastor@church.com"},
		{"  guest@church.com \n", "guest@church.com"},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, NormalizeEmail(tc.in))
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("profile: %w", ErrValidation)
	require.True(t, errors.Is(err, ErrValidation))
	require.False(t, errors.Is(err, ErrNotFound))
}
