package core

// Cue identifies a fire-and-forget sound event raised by a game.
type Cue uint8

const (
	CueShot Cue = iota
	CueExplosion
	CuePowerUp
	CueGameOver
)

// String returns the cue's name.
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueExplosion:
		return "explosion"
	case CuePowerUp:
		return "powerup"
	case CueGameOver:
		return "gameover"
	}
	return "unknown"
}

// CuePlayer plays sound cues. Play must not block the caller.
type CuePlayer interface {
	Play(c Cue)
}

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play implements CuePlayer.
func (NopCuePlayer) Play(Cue) {}
