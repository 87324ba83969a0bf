package screen

import (
	"time"

	"SpaghettiSurvival/internal/game"
)

// View is what the renderer needs to draw the current screen.
type View struct {
	Screen    Screen
	MenuIndex int
	Options   []string
	Records   []string
	Record    string
	Elapsed   time.Duration
	World     *game.Snapshot // set while playing and on the end screens
}

func (m *Machine) View() View {
	v := View{
		Screen:    m.screen,
		MenuIndex: m.menuIndex,
		Options:   MenuOptions,
		Records:   m.records,
		Record:    m.record,
	}
	if m.screen == Play && m.world != nil {
		snap := m.world.Snapshot()
		v.World = &snap
		v.Elapsed = m.now.Sub(m.started)
	}
	if (m.screen == GameOver || m.screen == Clear) && m.world != nil {
		snap := m.world.Snapshot()
		v.World = &snap
	}
	return v
}
