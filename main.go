package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"SpaghettiSurvival/internal/audio"
	"SpaghettiSurvival/internal/config"
	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/ranking"
	"SpaghettiSurvival/internal/render"
	"SpaghettiSurvival/internal/screen"
)

const tps = 60

// Game adapts the screen machine to ebiten's Update/Draw loop.
type Game struct {
	machine  *screen.Machine
	renderer *render.Renderer
	sound    *audio.Player
	ranking  *ranking.Store
}

func newGame(cfg config.Config) *Game {
	store := ranking.NewStore(cfg.RankingPath)
	return &Game{
		machine:  screen.New(store, nil),
		renderer: render.New(cfg),
		sound:    audio.New(cfg),
		ranking:  store,
	}
}

// one frame: sample input, update, then carry out what the update asked for
func (g *Game) Update() error {
	fx := g.machine.Update(sampleInput(), time.Now())
	g.apply(fx)
	if g.machine.Quit() {
		return ebiten.Termination
	}
	return nil
}

// apply runs effect requests; failures are logged and dropped.
func (g *Game) apply(fx []game.Effect) {
	for _, e := range fx {
		switch e.Kind {
		case game.EffectSound:
			g.sound.Play(e.Sound)
		case game.EffectMusicStart:
			g.sound.StartMusic()
		case game.EffectMusicStop:
			g.sound.StopMusic()
		case game.EffectSaveRecord:
			if err := g.ranking.Save(e.Record); err != nil {
				log.Printf("record %q not saved: %v", e.Record, err)
			}
		}
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.renderer.Draw(dst, g.machine.View())
}

func (g *Game) Layout(_, _ int) (int, int) { return game.ScreenWidth, game.ScreenHeight }

// program entry
func main() {
	cfg := config.FromEnv()

	ebiten.SetWindowTitle("Spaghetti Survival")
	ebiten.SetWindowSize(game.ScreenWidth*cfg.WindowScale, game.ScreenHeight*cfg.WindowScale)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(newGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
