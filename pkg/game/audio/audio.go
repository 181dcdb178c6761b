// Package audio plays short sound effects for board events.
package audio

// Sound identifies a sound effect
type Sound int

const (
	SoundReveal Sound = iota
	SoundFlag
	SoundExplode
	SoundWin
	SoundNewGame
)

func (s Sound) String() string {
	switch s {
	case SoundReveal:
		return "reveal"
	case SoundFlag:
		return "flag"
	case SoundExplode:
		return "explode"
	case SoundWin:
		return "win"
	case SoundNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// Player plays sound effects without blocking the caller.
type Player interface {
	Play(s Sound)
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Sound)   {}
func (Nop) Close() error { return nil }
