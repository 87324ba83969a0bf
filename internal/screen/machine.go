// Package screen drives which part of the game is running: the menu, the
// info screens, a play session and the two end screens.
package screen

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/input"
)

type Screen uint8

const (
	Menu Screen = iota
	Help
	Rank
	Play
	GameOver
	Clear
)

func (s Screen) String() string {
	switch s {
	case Menu:
		return "MENU"
	case Help:
		return "HELP"
	case Rank:
		return "RANK"
	case Play:
		return "PLAY"
	case GameOver:
		return "GAME_OVER"
	case Clear:
		return "CLEAR"
	}
	return fmt.Sprintf("Screen(%d)", uint8(s))
}

// menu entries, in display order
const (
	OptionStart = iota
	OptionHelp
	OptionRanking
	OptionExit
)

var MenuOptions = []string{"Start", "Help", "Ranking", "Exit"}

// RecordLoader reads the ranking shown on the RANK screen.
type RecordLoader interface {
	Load() ([]string, error)
}

// Machine owns the current screen and the play session, if any.
type Machine struct {
	screen    Screen
	menuIndex int
	quit      bool

	world   *game.World
	started time.Time
	now     time.Time
	record  string
	records []string

	loader RecordLoader
	rng    *rand.Rand
}

// New starts at the menu. A nil rng seeds sessions from the clock.
func New(loader RecordLoader, rng *rand.Rand) *Machine {
	return &Machine{loader: loader, rng: rng}
}

func (m *Machine) Screen() Screen { return m.screen }

// Quit reports whether Exit was chosen from the menu.
func (m *Machine) Quit() bool { return m.quit }

// World is the current session; nil before the first start.
func (m *Machine) World() *game.World { return m.world }

// Update applies one frame of input to the current screen and returns the
// side effects the caller should carry out.
func (m *Machine) Update(in input.State, now time.Time) []game.Effect {
	m.now = now

	switch m.screen {
	case Menu:
		return m.updateMenu(in, now)
	case Help, Rank:
		if in.Pressed(input.EdgeCancel) {
			m.screen = Menu
		}
	case Play:
		return m.updatePlay(in, now)
	case GameOver, Clear:
		if in.Pressed(input.EdgeConfirm) {
			m.screen = Menu
			return []game.Effect{game.StopMusic()}
		}
	}
	return nil
}

func (m *Machine) updateMenu(in input.State, now time.Time) []game.Effect {
	n := len(MenuOptions)
	switch {
	case in.Pressed(input.EdgeUp):
		m.menuIndex = (m.menuIndex - 1 + n) % n
	case in.Pressed(input.EdgeDown):
		m.menuIndex = (m.menuIndex + 1) % n
	case in.Pressed(input.EdgeSelect):
		return m.execute(now)
	}
	return nil
}

func (m *Machine) execute(now time.Time) []game.Effect {
	switch m.menuIndex {
	case OptionStart:
		m.world = game.NewWorld(m.rng)
		m.started = now
		m.record = ""
		m.screen = Play
		return []game.Effect{game.StartMusic()}
	case OptionHelp:
		m.screen = Help
	case OptionRanking:
		m.records = m.loadRecords()
		m.screen = Rank
	case OptionExit:
		m.quit = true
	}
	return nil
}

func (m *Machine) loadRecords() []string {
	if m.loader == nil {
		return nil
	}
	recs, err := m.loader.Load()
	if err != nil {
		log.Printf("ranking unavailable: %v", err)
		return nil
	}
	return recs
}

func (m *Machine) updatePlay(in input.State, now time.Time) []game.Effect {
	if in.Pressed(input.EdgeBomb) {
		m.world.LaunchBomb()
	}
	fx := m.world.Tick(in, now)

	switch m.world.Outcome {
	case game.OutcomeCleared:
		m.record = FormatRecord(now.Sub(m.started))
		m.screen = Clear
		fx = append(fx, game.StopMusic(), game.SaveRecord(m.record))
	case game.OutcomeCaught:
		m.screen = GameOver
		fx = append(fx, game.StopMusic())
	}
	return fx
}

// longest time the two-digit minutes field can hold
const maxRecord = 100*time.Minute - 10*time.Millisecond

// FormatRecord renders a clear time as a fixed-width "MMm SSs CCcs" string so
// records sort by time when sorted as text. Longer runs saturate at
// "99m 59s 99cs".
func FormatRecord(d time.Duration) string {
	d = min(max(d, 0), maxRecord)
	mins := int(d / time.Minute)
	secs := int(d % time.Minute / time.Second)
	cs := int(d % time.Second / (10 * time.Millisecond))
	return fmt.Sprintf("%02dm %02ds %02dcs", mins, secs, cs)
}
