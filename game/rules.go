package game

// directions are the 8 compass offsets walked during outflank detection.
// Enumeration order is irrelevant: flip runs are unioned across directions.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoves returns every legal move for side, scanning cells row-major.
// An empty result is the pass condition.
func (b Board) LegalMoves(side Cell) []Move {
	var moves []Move
	origin := b.Hash(side)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				continue
			}
			if flips := b.flips(r, c, side); len(flips) > 0 {
				moves = append(moves, Move{Row: r, Col: c, Flips: flips, Origin: origin})
			}
		}
	}
	return moves
}

// flips collects the opponent discs outflanked by side playing at (r, c): in
// each direction, a contiguous run of one or more opponent discs terminated
// by a disc of side before any empty square or the board edge.
func (b Board) flips(r, c int, side Cell) []Coord {
	opponent := side.Opponent()
	var total []Coord
	for _, dir := range directions {
		var run []Coord
		nr, nc := r+dir[0], c+dir[1]
		for inBounds(nr, nc) && b[nr][nc] == opponent {
			run = append(run, Coord{Row: nr, Col: nc})
			nr += dir[0]
			nc += dir[1]
		}
		if len(run) > 0 && inBounds(nr, nc) && b[nr][nc] == side {
			total = append(total, run...)
		}
	}
	return total
}

// Apply plays move for side and returns the resulting board. The receiver is
// never mutated. A move with an empty flip set, or one computed from a
// different position, is a no-op and returns the board unchanged.
func (b Board) Apply(m Move, side Cell) Board {
	if len(m.Flips) == 0 || m.Origin != b.Hash(side) {
		return b
	}
	next := b
	next[m.Row][m.Col] = side
	for _, f := range m.Flips {
		next[f.Row][f.Col] = side
	}
	return next
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}
