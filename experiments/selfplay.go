package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/harukichisan/othello-web2/game"
	"github.com/harukichisan/othello-web2/meta"
	"github.com/harukichisan/othello-web2/searcher"
)

// MatchupResult tallies the games of one difficulty pairing.
type MatchupResult struct {
	Black      searcher.Difficulty
	White      searcher.Difficulty
	Games      int
	BlackWins  int
	WhiteWins  int
	Draws      int
	BlackDiscs int // Cumulative, for average margins
	WhiteDiscs int
}

// RunMatchups plays games for every ordered difficulty pairing and writes
// the tallies to a CSV results file. Returns the results for inspection.
func RunMatchups(gamesPerPair int) ([]MatchupResult, error) {
	tiers := []searcher.Difficulty{searcher.Easy, searcher.Normal, searcher.Hard}
	picker := searcher.NewPicker(searcher.WithRand(
		rand.New(rand.NewSource(uint64(time.Now().UnixNano())))))

	var results []MatchupResult
	for _, blackTier := range tiers {
		for _, whiteTier := range tiers {
			result := MatchupResult{Black: blackTier, White: whiteTier, Games: gamesPerPair}
			for i := 0; i < gamesPerPair; i++ {
				black, white := playGame(picker, blackTier, whiteTier)
				result.BlackDiscs += black
				result.WhiteDiscs += white
				switch {
				case black > white:
					result.BlackWins++
				case white > black:
					result.WhiteWins++
				default:
					result.Draws++
				}
			}
			log.Info().Msgf("%s (black) vs %s (white): %d-%d-%d over %d games",
				blackTier, whiteTier, result.BlackWins, result.WhiteWins, result.Draws, result.Games)
			results = append(results, result)
		}
	}

	if err := writeResults(results); err != nil {
		return results, err
	}
	return results, nil
}

// playGame runs one game to completion and returns the final disc counts.
// Pass handling mirrors the session: a moveless side hands the turn over,
// and the game ends when neither side can move.
func playGame(picker *searcher.Picker, blackTier, whiteTier searcher.Difficulty) (black, white int) {
	board := game.NewBoard()
	side := game.Black

	for ply := 0; ply < meta.MAX_PLIES; ply++ {
		tier := blackTier
		if side == game.White {
			tier = whiteTier
		}
		move, ok := picker.Pick(board, side, tier)
		if !ok {
			if len(board.LegalMoves(side.Opponent())) == 0 {
				break // neither side can move
			}
			side = side.Opponent()
			continue
		}
		board = board.Apply(move, side)
		side = side.Opponent()
	}

	black, white, _ = board.Count()
	return black, white
}
