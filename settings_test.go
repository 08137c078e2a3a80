package regx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupSettings(t *testing.T) {
	tests := []struct {
		in   string
		want GroupSettings
		str  string
	}{
		{"", GroupSettings{}, ":"},
		{":", GroupSettings{}, ":"},
		{"1:2", Pad(1, 2), "1:2"},
		{":1", Pad(-1, 1), ":1"},
		{"0:", Pad(0, -1), "0:"},
		{"3", Pad(-1, 3), ":3"},
		{" 2 : 0 ", Pad(2, 0), "2:0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			gs, err := ParseGroupSettings(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gs)
			assert.Equal(t, tt.str, gs.String())
		})
	}
}

func TestParseGroupSettings_errors(t *testing.T) {
	for _, in := range []string{"x", "1:y", "-1:", ":-2", "1:2:3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseGroupSettings(in)
			assert.Error(t, err)
		})
	}
}
