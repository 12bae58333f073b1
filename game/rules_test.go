package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func coords(moves []Move) []Coord {
	cs := make([]Coord, len(moves))
	for i, m := range moves {
		cs[i] = Coord{Row: m.Row, Col: m.Col}
	}
	return cs
}

func TestOpeningLegalMoves(t *testing.T) {
	b := NewBoard()

	t.Run("black has the four canonical opening cells", func(t *testing.T) {
		got := coords(b.LegalMoves(Black))
		want := []Coord{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
		require.Equal(t, want, got, "black's opening moves should appear in row-major scan order")
	})

	t.Run("white also has exactly four opening moves", func(t *testing.T) {
		got := coords(b.LegalMoves(White))
		want := []Coord{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
		require.Equal(t, want, got)
	})
}

func TestLegalMovesTargetOnlyEmptyCells(t *testing.T) {
	b := NewBoard()
	// Walk a few plies of alternating play and check the invariant throughout.
	side := Black
	for ply := 0; ply < 10; ply++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}
		for _, m := range moves {
			require.Equal(t, Empty, b[m.Row][m.Col],
				"legal move at (%d,%d) must target an empty cell", m.Row, m.Col)
			require.NotEmpty(t, m.Flips, "a legal move must flip at least one disc")
		}
		b = b.Apply(moves[0], side)
		side = side.Opponent()
	}
}

func TestApplyDiscArithmetic(t *testing.T) {
	b := NewBoard()
	for _, m := range b.LegalMoves(Black) {
		beforeBlack, beforeWhite, _ := b.Count()
		after := b.Apply(m, Black)
		afterBlack, afterWhite, _ := after.Count()

		flipped := len(m.Flips)
		require.Equal(t, beforeBlack+1+flipped, afterBlack,
			"mover gains the placed disc plus every flip")
		require.Equal(t, beforeWhite-flipped, afterWhite,
			"opponent loses exactly the flipped discs")
		require.Equal(t, beforeBlack+beforeWhite+1, afterBlack+afterWhite,
			"total disc count grows by exactly one per applied move")
	}
}

func TestApplyIllegalMoveIsIdentity(t *testing.T) {
	b := NewBoard()

	t.Run("empty flip set", func(t *testing.T) {
		noop := Move{Row: 0, Col: 0, Origin: b.Hash(Black)}
		require.Equal(t, b, b.Apply(noop, Black), "a move without flips must leave the board unchanged")
	})

	t.Run("stale origin", func(t *testing.T) {
		stale := b.LegalMoves(Black)[0]
		// Advance the game so the remembered move no longer matches the position.
		current := b.Apply(stale, Black)
		reply := current.LegalMoves(White)[0]
		current = current.Apply(reply, White)

		require.Equal(t, current, current.Apply(stale, Black),
			"a move computed from an earlier position must not be replayable")
	})
}

func TestFlipsUnionAcrossDirections(t *testing.T) {
	// Black playing (0,1) outflanks to the right and downward at once.
	var b Board
	b[0][2] = White
	b[0][3] = Black
	b[1][1] = White
	b[2][1] = Black

	moves := b.LegalMoves(Black)
	var target *Move
	for i := range moves {
		if moves[i].Row == 0 && moves[i].Col == 1 {
			target = &moves[i]
		}
	}
	require.NotNil(t, target, "expected (0,1) to be legal for black")
	require.ElementsMatch(t, []Coord{{0, 2}, {1, 1}}, target.Flips,
		"flip set should union the horizontal and vertical runs")

	after := b.Apply(*target, Black)
	require.Equal(t, Black, after[0][1])
	require.Equal(t, Black, after[0][2])
	require.Equal(t, Black, after[1][1])
}

func TestRunEndingAtEdgeDoesNotFlip(t *testing.T) {
	// A run of white discs that reaches the edge without a black terminator
	// must not make the adjacent cell legal.
	var b Board
	b[0][0] = White
	b[0][1] = White

	for _, m := range b.LegalMoves(Black) {
		require.False(t, m.Row == 0 && m.Col == 2,
			"(0,2) must be illegal: the white run ends at the edge")
	}
}
