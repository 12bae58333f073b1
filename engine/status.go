package engine

import "github.com/harukichisan/othello-web2/game"

// Status is a consistent snapshot of the session, assembled under a single
// lock so the presentation layer never renders a torn state.
type Status struct {
	Board      game.Board
	Side       game.Cell
	LegalMoves []game.Move
	Black      int
	White      int
	GameOver   bool
	Winner     game.Cell // Empty while running; after game over, Empty means a draw
	HistoryLen int
	AIThinking bool
	Generation uint64
}

func (s *Session) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	black, white, _ := s.board.Count()
	st := Status{
		Board:      s.board,
		Side:       s.side,
		LegalMoves: s.board.LegalMoves(s.side),
		Black:      black,
		White:      white,
		GameOver:   s.gameOverLocked(),
		HistoryLen: len(s.history),
		AIThinking: s.pending != nil,
		Generation: s.gen,
	}
	if st.GameOver {
		switch {
		case black > white:
			st.Winner = game.Black
		case white > black:
			st.Winner = game.White
		}
	}
	return st
}
