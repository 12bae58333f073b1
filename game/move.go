package game

// Coord addresses a single square, zero-indexed from the top-left.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a placement at (Row, Col) together with the opponent discs it
// outflanks. Origin pins the move to the position and side it was computed
// from: Apply refuses a move whose origin no longer matches, so a stale flip
// list can never be replayed against a different board.
type Move struct {
	Row    int
	Col    int
	Flips  []Coord
	Origin BoardHash
}
