package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerID(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "pokernow quoted name with device id",
			line: `"Alice @ AbC123xyz" raises to 20`,
			want: "alice",
		},
		{
			name: "name with spaces before separator",
			line: `"Big Slick @ dEv42" calls 6`,
			want: "big slick",
		},
		{
			name: "no separator falls back to first token",
			line: `Bob folds`,
			want: "bob",
		},
		{
			name: "quoted first token without separator",
			line: `"Carol" checks`,
			want: "carol",
		},
		{
			name: "identity is lowercased",
			line: `"DANIEL @ Q1" folds`,
			want: "daniel",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
		{
			name: "separator at line start",
			line: ` @weird calls`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlayerID(tt.line))
		})
	}
}

func TestMatchActionPriorityOrder(t *testing.T) {
	// When several keywords are present only the first in vocabulary order
	// counts for the pass.
	action, ok := matchAction(`"alice @ a1" calls, everyone else raises`, preflopActions)
	assert.True(t, ok)
	assert.Equal(t, ActionCalls, action)

	action, ok = matchAction(`"bob @ b2" checks then bets`, flopActions)
	assert.True(t, ok)
	assert.Equal(t, ActionBets, action)
}

func TestMatchActionNoKeyword(t *testing.T) {
	_, ok := matchAction(`"alice @ a1" shows a K♠`, preflopActions)
	assert.False(t, ok)
}
