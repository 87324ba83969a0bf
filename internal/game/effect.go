package game

// Sound identifies a one-shot sound effect.
type Sound uint8

const (
	SoundFire Sound = iota
	SoundReload
	SoundExplode
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundReload:
		return "reload"
	case SoundExplode:
		return "explode"
	}
	return "unknown"
}

type EffectKind uint8

const (
	EffectSound EffectKind = iota
	EffectMusicStart
	EffectMusicStop
	EffectSaveRecord
)

// Effect is a side-effect request produced by an update. The caller executes
// it after the update returns; failures there never reach the simulation.
type Effect struct {
	Kind   EffectKind
	Sound  Sound
	Record string
}

func PlaySound(s Sound) Effect { return Effect{Kind: EffectSound, Sound: s} }

func StartMusic() Effect { return Effect{Kind: EffectMusicStart} }

func StopMusic() Effect { return Effect{Kind: EffectMusicStop} }

func SaveRecord(rec string) Effect { return Effect{Kind: EffectSaveRecord, Record: rec} }
