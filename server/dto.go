package server

import (
	"github.com/harukichisan/othello-web2/engine"
	"github.com/harukichisan/othello-web2/game"
)

// StatusDTO is the wire form of a session snapshot, also used as the
// websocket broadcast payload.
type StatusDTO struct {
	Board      [][]int   `json:"board"` // 0 empty, 1 black, 2 white
	NextPlayer string    `json:"next_player"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Black      int       `json:"black"`
	White      int       `json:"white"`
	GameOver   bool      `json:"game_over"`
	Winner     string    `json:"winner,omitempty"` // "black", "white" or "draw"
	HistoryLen int       `json:"history_len"`
	AiThinking bool      `json:"ai_thinking"`
}

type MoveDTO struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Flips int `json:"flips"`
}

func statusToDTO(st engine.Status) StatusDTO {
	board := make([][]int, game.Size)
	for r := 0; r < game.Size; r++ {
		board[r] = make([]int, game.Size)
		for c := 0; c < game.Size; c++ {
			board[r][c] = int(st.Board[r][c])
		}
	}

	moves := make([]MoveDTO, len(st.LegalMoves))
	for i, m := range st.LegalMoves {
		moves[i] = MoveDTO{Row: m.Row, Col: m.Col, Flips: len(m.Flips)}
	}

	dto := StatusDTO{
		Board:      board,
		NextPlayer: sideName(st.Side),
		LegalMoves: moves,
		Black:      st.Black,
		White:      st.White,
		GameOver:   st.GameOver,
		HistoryLen: st.HistoryLen,
		AiThinking: st.AIThinking,
	}
	if st.GameOver {
		if st.Winner == game.Empty {
			dto.Winner = "draw"
		} else {
			dto.Winner = sideName(st.Winner)
		}
	}
	return dto
}

func sideName(c game.Cell) string {
	switch c {
	case game.Black:
		return "black"
	case game.White:
		return "white"
	default:
		return ""
	}
}
