package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		field   string
		want    Position
		wantErr bool
	}{
		{"a1", NewPosition(0, 0), false},
		{"h8", NewPosition(7, 7), false},
		{"d3", NewPosition(2, 3), false},
		{"D3", NewPosition(2, 3), false},
		{"c5", NewPosition(4, 2), false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"a", Position{}, true},
		{"a10", Position{}, true},
		{"--", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := ParsePosition(tt.field)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPosition_String(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := NewPosition(row, col)
			require.Equal(t, pos, MustParsePosition(pos.String()))
		}
	}

	require.Equal(t, "(8,0)", NewPosition(8, 0).String())
}

func TestMustParsePosition_Panics(t *testing.T) {
	require.Panics(t, func() { MustParsePosition("z9") })
}

func TestParsePositions(t *testing.T) {
	got, err := ParsePositions("d3  c5\nf6")
	require.NoError(t, err)
	require.Equal(t, []Position{NewPosition(2, 3), NewPosition(4, 2), NewPosition(5, 5)}, got)

	_, err = ParsePositions("d3 zz")
	require.Error(t, err)
}
