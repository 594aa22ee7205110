package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New()
		require.Len(t, id, Length)
		require.True(t, IsValid(id), "generated id %q should be valid", id)
		require.False(t, seen[id], "generated id %q repeated", id)
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"507F1F77BCF86CD799439011", true},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507f1f77bcf86cd79943901z", false},
		{"", false},
		{"not-an-id", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValid(tc.value), "value %q", tc.value)
	}
}
