package entity

// Session is one game as seen by the driver: the engine state plus the player to move.
type Session struct {
	ID    string `json:"id"`
	Game  *Game  `json:"game"`
	Turn  Player `json:"turn"`
	Moves int    `json:"moves"`
}

func NewSession(id string, firstPlayer Player) *Session {
	return &Session{
		ID:   id,
		Game: NewGame(),
		Turn: firstPlayer,
	}
}

func (that *Session) IsFinished() bool {
	return that.Game.Status() != StatusInProgress
}
