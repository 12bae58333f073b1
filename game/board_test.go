package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	black, white, empty := b.Count()
	require.Equal(t, 2, black, "opening position should hold two black discs")
	require.Equal(t, 2, white, "opening position should hold two white discs")
	require.Equal(t, 60, empty, "opening position should leave sixty empty squares")

	require.Equal(t, White, b[3][3], "white belongs on the NW center square")
	require.Equal(t, White, b[4][4], "white belongs on the SE center square")
	require.Equal(t, Black, b[3][4], "black belongs on the NE center square")
	require.Equal(t, Black, b[4][3], "black belongs on the SW center square")
}

func TestBoardValueSemantics(t *testing.T) {
	original := NewBoard()
	copied := original

	copied[0][0] = Black

	require.Equal(t, Empty, original[0][0], "mutating a copy must not touch the original")
	require.NotEqual(t, original, copied, "boards with different cells should not compare equal")
	require.Equal(t, original, NewBoard(), "untouched board should still equal a fresh one")
}

func TestCountAlwaysSumsTo64(t *testing.T) {
	b := NewBoard()
	for _, m := range b.LegalMoves(Black) {
		after := b.Apply(m, Black)
		black, white, empty := after.Count()
		require.Equal(t, 64, black+white+empty, "cell counts must always sum to the board size")
	}
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	b := NewBoard()
	require.NotEqual(t, b.Hash(Black), b.Hash(White),
		"the same position with a different side to move must hash differently")

	other := b
	other[0][0] = Black
	require.NotEqual(t, b.Hash(Black), other.Hash(Black),
		"different positions must hash differently")
}
