package game

// weights is the positional weight table: corners dominate, the X and C
// squares beside them are liabilities early on, interior squares barely
// matter. Symmetric under row, column and diagonal reflection.
var weights = [Size][Size]int{
	{120, -20, 20, 10, 10, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{10, -5, 3, 3, 3, 3, -5, 10},
	{10, -5, 3, 3, 3, 3, -5, 10},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{120, -20, 20, 10, 10, 20, -20, 120},
}

// Evaluate scores the board from perspective's point of view: ten points per
// disc of material advantage plus the positional weight of every square
// perspective occupies.
func Evaluate(b Board, perspective Cell) int {
	opponent := perspective.Opponent()
	positional := 0
	own, theirs := 0, 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case perspective:
				own++
				positional += weights[r][c]
			case opponent:
				theirs++
			}
		}
	}
	return 10*(own-theirs) + positional
}
