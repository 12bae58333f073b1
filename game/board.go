package game

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// Size is the board edge length.
const Size = 8

// Cell is the content of a single square. Black and White double as side
// identifiers; Empty also stands for "nobody" when reporting a winner.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Opponent returns the complement side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Board is an 8x8 grid of cells in row-major order. It is a plain value
// type: assignment copies, == compares, and every operation that changes the
// position returns a new Board. History snapshots can therefore be retained
// without aliasing hazards.
type Board [Size][Size]Cell

// NewBoard returns the standard opening position: White on the NW-SE center
// diagonal, Black on the NE-SW one. Black moves first.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Count tallies discs and empty squares. The three always sum to 64.
func (b Board) Count() (black, white, empty int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			default:
				empty++
			}
		}
	}
	return black, white, empty
}

// Full reports whether no empty square remains.
func (b Board) Full() bool {
	_, _, empty := b.Count()
	return empty == 0
}

// BoardHash fingerprints a position together with the side to move.
type BoardHash uint64

// Hash returns the FNV-1a fingerprint of the position for side to move.
// Moves carry this value so they cannot be replayed against a stale board.
func (b Board) Hash(side Cell) BoardHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(side))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			binary.Write(hasher, binary.LittleEndian, int64(b[r][c]))
		}
	}
	return BoardHash(hasher.Sum64())
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
