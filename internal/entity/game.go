package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game - a human vs computer session. The computer always plays X.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner"`
	Tie    bool   `json:"tie,omitempty"`
	Status string `json:"status"`
}

func NewGame(id string, board Board) *Game {
	return &Game{
		ID:     id,
		Board:  board,
		Turn:   PlayerO,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Finish - marks the game as over. Empty winner with tie=false means nobody won.
func (that *Game) Finish(winner Mark, tie bool) {
	that.Winner = winner
	that.Tie = tie
	that.Status = StatusFinished
	that.Turn = Empty
}
