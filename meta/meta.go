// meta/meta.go
package meta

import "time"

// THINK_DELAY is the visible "CPU is thinking" pause before a scheduled
// CPU move is committed.
const THINK_DELAY = 200 * time.Millisecond

// DEFAULT_ADDR is the listen address of the web shell unless OTHELLO_ADDR
// overrides it.
const DEFAULT_ADDR = ":8080"

// SELFPLAY_GAMES is the default number of games per difficulty pairing in
// the self-play harness.
const SELFPLAY_GAMES = 20

// MAX_PLIES bounds a self-play game; a legal Othello game is far shorter.
const MAX_PLIES = 200
