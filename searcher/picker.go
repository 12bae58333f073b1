package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/harukichisan/othello-web2/game"
)

type Option func(p *Picker)

// WithRand injects the random source used by the Easy tier. Tests inject a
// seeded source for reproducible picks.
func WithRand(rng *rand.Rand) Option {
	return func(p *Picker) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// Picker chooses moves for the CPU side. Apart from its random source it is
// stateless and can be reused across games.
type Picker struct {
	rng *rand.Rand
}

func NewPicker(options ...Option) *Picker {
	p := &Picker{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Pick returns a move for side at the given difficulty, or false when side
// has no legal move and the caller must apply pass semantics.
func (p *Picker) Pick(b game.Board, side game.Cell, d Difficulty) (game.Move, bool) {
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	switch d {
	case Normal:
		return pickGreedy(b, side, moves), true
	case Hard:
		return pickMinimax(b, side, moves), true
	default:
		return moves[p.rng.Intn(len(moves))], true
	}
}

// pickGreedy keeps the move whose resulting position evaluates strictly
// best for the mover; ties keep the first move in scan order.
func pickGreedy(b game.Board, side game.Cell, moves []game.Move) game.Move {
	best := moves[0]
	bestScore := game.Evaluate(b.Apply(best, side), side)
	for _, m := range moves[1:] {
		if score := game.Evaluate(b.Apply(m, side), side); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

// pickMinimax searches two plies with the opponent minimizing the mover's
// evaluation. An opponent left without a reply is treated as a turn skip and
// scored as the negated evaluation from their perspective.
func pickMinimax(b game.Board, side game.Cell, moves []game.Move) game.Move {
	opponent := side.Opponent()
	best := moves[0]
	bestValue := math.MinInt
	for i, m := range moves {
		after := b.Apply(m, side)
		replies := after.LegalMoves(opponent)

		var value int
		if len(replies) == 0 {
			value = -game.Evaluate(after, opponent)
		} else {
			value = math.MaxInt
			for _, reply := range replies {
				if v := game.Evaluate(after.Apply(reply, opponent), side); v < value {
					value = v
				}
			}
		}
		if i == 0 || value > bestValue {
			best, bestValue = m, value
		}
	}
	return best
}
