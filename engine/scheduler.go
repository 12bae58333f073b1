package engine

import (
	"time"

	"github.com/harukichisan/othello-web2/game"
)

// The deferred CPU move. A scheduled task captures the generation counter of
// the session state it was computed against; any state change bumps the
// counter, so a task that wakes up stale commits nothing. This keeps reset,
// undo and new-game safe against a timer that is already in flight.

// bumpLocked invalidates any scheduled CPU task. Callers hold s.mu.
func (s *Session) bumpLocked() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// scheduleCPU arms the thinking delay when the side to move is CPU
// controlled and the game is still running. Callers hold s.mu.
func (s *Session) scheduleCPU() {
	cpu := s.cpuSide()
	if cpu == game.Empty || s.side != cpu || s.gameOverLocked() {
		return
	}
	gen := s.gen
	s.pending = time.AfterFunc(s.delay, func() {
		s.fireCPU(gen)
	})
}

// fireCPU runs when the thinking delay elapses. The committed move goes
// through the same path as a human move so history and pass semantics stay
// uniform; a side without a legal move auto-passes.
func (s *Session) fireCPU(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	if s.gen != gen {
		return // session moved on while the CPU was thinking
	}
	if s.gameOverLocked() {
		return
	}

	move, ok := s.picker.Pick(s.board, s.side, s.config.Difficulty)
	if !ok {
		s.logger.Debug().Msgf("%s has no move, auto-passing", s.side)
		s.side = s.side.Opponent()
		s.bumpLocked()
		s.scheduleCPU()
		return
	}
	s.commitLocked(move)
}
