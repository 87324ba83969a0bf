package screen

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/geom"
	"SpaghettiSurvival/internal/input"
)

var t0 = time.Unix(5_000, 0)

type fakeLoader struct {
	recs  []string
	err   error
	calls int
}

func (f *fakeLoader) Load() ([]string, error) {
	f.calls++
	return f.recs, f.err
}

func press(e input.Edge) input.State { return input.State{Edges: e} }

func newTestMachine(l RecordLoader) *Machine {
	return New(l, rand.New(rand.NewSource(3)))
}

func TestMenuNavigationWraps(t *testing.T) {
	m := newTestMachine(nil)

	m.Update(press(input.EdgeUp), t0)
	if m.menuIndex != OptionExit {
		t.Fatalf("up from first = %d, want %d", m.menuIndex, OptionExit)
	}
	m.Update(press(input.EdgeDown), t0)
	if m.menuIndex != OptionStart {
		t.Fatalf("down from last = %d, want %d", m.menuIndex, OptionStart)
	}
	m.Update(press(input.EdgeDown), t0)
	m.Update(press(input.EdgeDown), t0)
	if m.menuIndex != OptionRanking {
		t.Fatalf("index = %d", m.menuIndex)
	}
}

func TestStartSession(t *testing.T) {
	m := newTestMachine(nil)

	fx := m.Update(press(input.EdgeSelect), t0)
	if m.Screen() != Play {
		t.Fatalf("screen = %v, want PLAY", m.Screen())
	}
	if !slices.Equal(fx, []game.Effect{game.StartMusic()}) {
		t.Fatalf("effects = %v", fx)
	}
	w := m.World()
	if w == nil || w.Monster.HP != game.MonsterMaxHP || w.Player.Ammo != game.MaxAmmo {
		t.Fatal("session not reset")
	}
}

func TestHelpAndRankReturnOnCancel(t *testing.T) {
	l := &fakeLoader{recs: []string{"00m 10s 00cs", "00m 20s 00cs"}}
	m := newTestMachine(l)

	m.Update(press(input.EdgeDown), t0)
	m.Update(press(input.EdgeSelect), t0)
	if m.Screen() != Help {
		t.Fatalf("screen = %v, want HELP", m.Screen())
	}
	m.Update(press(input.EdgeConfirm), t0)
	if m.Screen() != Help {
		t.Fatal("confirm left the help screen")
	}
	m.Update(press(input.EdgeCancel), t0)
	if m.Screen() != Menu {
		t.Fatalf("screen = %v, want MENU", m.Screen())
	}

	m.Update(press(input.EdgeDown), t0)
	m.Update(press(input.EdgeSelect), t0)
	if m.Screen() != Rank || l.calls != 1 {
		t.Fatalf("screen = %v calls = %d", m.Screen(), l.calls)
	}
	if v := m.View(); !slices.Equal(v.Records, l.recs) {
		t.Fatalf("records = %v", v.Records)
	}
	m.Update(press(input.EdgeCancel), t0)
	if m.Screen() != Menu {
		t.Fatalf("screen = %v, want MENU", m.Screen())
	}
}

func TestRankLoadFailureShowsEmpty(t *testing.T) {
	m := newTestMachine(&fakeLoader{err: errors.New("disk on fire")})
	m.menuIndex = OptionRanking

	m.Update(press(input.EdgeSelect), t0)
	if m.Screen() != Rank {
		t.Fatalf("screen = %v", m.Screen())
	}
	if len(m.View().Records) != 0 {
		t.Fatal("expected no records")
	}
}

func TestExitRequestsQuit(t *testing.T) {
	m := newTestMachine(nil)
	m.menuIndex = OptionExit
	m.Update(press(input.EdgeSelect), t0)
	if !m.Quit() {
		t.Fatal("exit did not request quit")
	}
}

func TestCaughtIsGameOver(t *testing.T) {
	m := newTestMachine(nil)
	m.Update(press(input.EdgeSelect), t0)

	w := m.World()
	w.Player.Pos = geom.V(400, game.GroundY)
	w.Monster.Pos = w.Player.Pos

	fx := m.Update(input.State{}, t0.Add(time.Second/60))
	if m.Screen() != GameOver {
		t.Fatalf("screen = %v, want GAME_OVER", m.Screen())
	}
	if !slices.Contains(fx, game.StopMusic()) {
		t.Fatalf("music not stopped: %v", fx)
	}
	if m.View().World == nil {
		t.Fatal("end screen lost the final snapshot")
	}

	fx = m.Update(press(input.EdgeConfirm), t0.Add(time.Second))
	if m.Screen() != Menu || !slices.Equal(fx, []game.Effect{game.StopMusic()}) {
		t.Fatalf("screen = %v effects = %v", m.Screen(), fx)
	}
}

func TestClearSavesRecordOnce(t *testing.T) {
	m := newTestMachine(nil)
	m.Update(press(input.EdgeSelect), t0)

	w := m.World()
	w.Monster.HP = game.BombDamage
	w.Monster.Stunned = true
	w.Monster.StunEnd = t0.Add(time.Hour)

	var saved []string
	now := t0
	for i := 0; i < 200; i++ {
		now = now.Add(time.Second / 60)
		in := input.State{}
		if i == 0 {
			in.Edges = input.EdgeBomb
		}
		for _, e := range m.Update(in, now) {
			if e.Kind == game.EffectSaveRecord {
				saved = append(saved, e.Record)
			}
		}
		if m.Screen() == Clear && len(saved) == 0 {
			t.Fatal("cleared without saving a record")
		}
	}

	if m.Screen() != Clear {
		t.Fatalf("screen = %v, want CLEAR", m.Screen())
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(saved))
	}
	if saved[0] != m.View().Record {
		t.Fatalf("saved %q but shows %q", saved[0], m.View().Record)
	}
}

func TestBombEdgeOnlyInPlay(t *testing.T) {
	m := newTestMachine(nil)
	m.Update(press(input.EdgeBomb), t0)
	if m.World() != nil {
		t.Fatal("bomb edge on the menu started something")
	}

	m.Update(press(input.EdgeSelect), t0)
	m.Update(press(input.EdgeBomb), t0)
	if got := m.World().Player.Bombs; got != game.MaxBombs-1 {
		t.Fatalf("bombs = %d", got)
	}
}

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00m 00s 00cs"},
		{1234 * time.Millisecond, "00m 01s 23cs"},
		{61*time.Second + 5*time.Millisecond, "01m 01s 00cs"},
		{12*time.Minute + 3*time.Second + 990*time.Millisecond, "12m 03s 99cs"},
		{-time.Second, "00m 00s 00cs"},
		{99*time.Minute + 59*time.Second + 999*time.Millisecond, "99m 59s 99cs"},
		{100 * time.Minute, "99m 59s 99cs"},
		{3 * time.Hour, "99m 59s 99cs"},
	}
	for _, tt := range tests {
		if got := FormatRecord(tt.d); got != tt.want {
			t.Errorf("FormatRecord(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
