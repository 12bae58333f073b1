package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harukichisan/othello-web2/game"
	"github.com/harukichisan/othello-web2/meta"
	"github.com/harukichisan/othello-web2/searcher"
)

// Mode says who controls the second seat.
type Mode int

const (
	HumanVsHuman Mode = iota
	HumanVsCPU
)

// Config enumerates the options of a new game.
type Config struct {
	Mode       Mode
	Difficulty searcher.Difficulty
	HumanSide  game.Cell // Black or White; in HumanVsCPU the CPU takes the other seat
}

type snapshot struct {
	board game.Board
	side  game.Cell
}

// Session owns a running game: the current board, the side to move, the undo
// history and the deferred CPU move. The board operations themselves are
// pure; Session is the single place state changes. The mutex exists because
// the deferred CPU move fires from a timer goroutine.
type Session struct {
	mu      sync.Mutex
	board   game.Board
	side    game.Cell
	history []snapshot
	config  Config
	picker  *searcher.Picker
	delay   time.Duration
	logger  zerolog.Logger
	gen     uint64      // bumped on every state change so stale CPU tasks drop out
	pending *time.Timer // armed while a CPU move waits out its thinking delay
}

type Option func(s *Session)

// WithPicker replaces the default move picker, e.g. with a seeded one.
func WithPicker(p *searcher.Picker) Option {
	return func(s *Session) {
		if p != nil {
			s.picker = p
		}
	}
}

// WithThinkDelay overrides the CPU thinking delay.
func WithThinkDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(config Config, options ...Option) *Session {
	s := &Session{
		board:  game.NewBoard(),
		side:   game.Black,
		config: normalize(config),
		picker: searcher.NewPicker(),
		delay:  meta.THINK_DELAY,
		logger: log.Logger,
	}
	for _, option := range options {
		option(s)
	}

	s.mu.Lock()
	s.scheduleCPU()
	s.mu.Unlock()
	return s
}

func normalize(config Config) Config {
	if config.HumanSide != game.White {
		config.HumanSide = game.Black
	}
	return config
}

// cpuSide returns the CPU-controlled side, or Empty when both seats are human.
func (s *Session) cpuSide() game.Cell {
	if s.config.Mode != HumanVsCPU {
		return game.Empty
	}
	return s.config.HumanSide.Opponent()
}

// Board returns the current position.
func (s *Session) Board() game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Side returns the side to move.
func (s *Session) Side() game.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.side
}

// LegalMoves returns the moves available to the side to move, for hint
// rendering and pass eligibility.
func (s *Session) LegalMoves() []game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.LegalMoves(s.side)
}

// Score returns the disc counts.
func (s *Session) Score() (black, white int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	black, white, _ = s.board.Count()
	return black, white
}

// IsGameOver reports whether the board is full or neither side can move.
// It is derived on every query, never stored.
func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOverLocked()
}

func (s *Session) gameOverLocked() bool {
	_, _, empty := s.board.Count()
	if empty == 0 {
		return true
	}
	return len(s.board.LegalMoves(game.Black)) == 0 &&
		len(s.board.LegalMoves(game.White)) == 0
}

// Winner returns the side with strictly more discs, or Empty for a draw.
// Only meaningful once IsGameOver reports true.
func (s *Session) Winner() game.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	black, white, _ := s.board.Count()
	switch {
	case black > white:
		return game.Black
	case white > black:
		return game.White
	default:
		return game.Empty
	}
}

// HistoryLen returns the number of undoable moves.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// AIThinking reports whether a CPU move is currently waiting on its delay.
func (s *Session) AIThinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Config returns the active game configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// PlaceAt plays the side to move at (row, col). Illegal placements are
// silently rejected and leave the session untouched.
func (s *Session) PlaceAt(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOverLocked() {
		return false
	}
	for _, m := range s.board.LegalMoves(s.side) {
		if m.Row == row && m.Col == col {
			s.commitLocked(m)
			return true
		}
	}
	s.logger.Debug().Msgf("rejected illegal move by %s at (%d,%d)", s.side, row, col)
	return false
}

// commitLocked pushes the pre-move snapshot, applies the move and hands the
// turn to the opponent unless they have no reply, in which case the mover
// goes again (forced pass).
func (s *Session) commitLocked(m game.Move) {
	s.history = append(s.history, snapshot{board: s.board, side: s.side})
	s.board = s.board.Apply(m, s.side)

	mover := s.side
	next := s.side.Opponent()
	if len(s.board.LegalMoves(next)) > 0 {
		s.side = next
	}
	s.logger.Debug().Msgf("%s played (%d,%d) flipping %d, %s to move",
		mover, m.Row, m.Col, len(m.Flips), s.side)

	s.bumpLocked()
	s.scheduleCPU()
}

// Pass hands the turn to the opponent. It is only valid while the side to
// move has no legal move; passes are not recorded in history and therefore
// not undoable.
func (s *Session) Pass() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOverLocked() || len(s.board.LegalMoves(s.side)) > 0 {
		return false
	}
	s.side = s.side.Opponent()
	s.logger.Debug().Msgf("%s passes, %s to move", s.side.Opponent(), s.side)
	s.bumpLocked()
	s.scheduleCPU()
	return true
}

// Undo restores the board and side from before the most recent committed
// move. It is a no-op on an empty history and cancels any pending CPU move.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board = last.board
	s.side = last.side
	s.bumpLocked()
	s.scheduleCPU()
	return true
}

// Reset restores the opening position with Black to move and clears the
// history. Any pending CPU move is cancelled.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// StartNewGame swaps in a new configuration and resets the game.
func (s *Session) StartNewGame(config Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = normalize(config)
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.board = game.NewBoard()
	s.side = game.Black
	s.history = nil
	s.bumpLocked()
	s.scheduleCPU()
}
