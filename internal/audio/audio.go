// Package audio plays the game's sound effects and background music through
// ebiten's audio context. Missing files fall back to synthesized sounds and
// playback problems never reach the caller.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"SpaghettiSurvival/internal/config"
	"SpaghettiSurvival/internal/game"
	"SpaghettiSurvival/internal/synth"
)

const sampleRate = int(synth.SampleRate)

// file stems tried for each sound, with every supported extension
var soundFiles = map[game.Sound]string{
	game.SoundFire:    "gun",
	game.SoundReload:  "reload",
	game.SoundExplode: "bomb",
}

var fallbacks = map[game.Sound]func() ([]byte, error){
	game.SoundFire:    synth.Shot,
	game.SoundReload:  synth.Reload,
	game.SoundExplode: synth.Blast,
}

type Player struct {
	ctx   *audio.Context
	sfx   map[game.Sound]*audio.Player
	bgm   *audio.Player
	muted bool
}

// New loads every sound up front. A muted player never opens the device.
func New(cfg config.Config) *Player {
	p := &Player{sfx: make(map[game.Sound]*audio.Player), muted: cfg.Muted}
	if p.muted {
		return p
	}
	p.ctx = audio.NewContext(sampleRate)

	for s, stem := range soundFiles {
		pcm, err := loadPCM(cfg, stem)
		if err != nil {
			log.Printf("sound %s: %v; using synthesized fallback", s, err)
			if pcm, err = fallbacks[s](); err != nil {
				log.Printf("sound %s: %v", s, err)
				continue
			}
		}
		p.sfx[s] = p.ctx.NewPlayerFromBytes(pcm)
	}

	bgm, err := p.loadMusic(cfg)
	if err != nil {
		log.Printf("music: %v", err)
	}
	p.bgm = bgm
	return p
}

// Play restarts a one-shot sound.
func (p *Player) Play(s game.Sound) {
	pl := p.sfx[s]
	if pl == nil {
		return
	}
	_ = pl.Rewind()
	pl.Play()
}

func (p *Player) StartMusic() {
	if p.bgm == nil {
		return
	}
	_ = p.bgm.Rewind()
	p.bgm.Play()
}

func (p *Player) StopMusic() {
	if p.bgm == nil {
		return
	}
	p.bgm.Pause()
}

func (p *Player) loadMusic(cfg config.Config) (*audio.Player, error) {
	pcm, err := loadPCM(cfg, "bgm")
	if err != nil {
		log.Printf("music: %v; using synthesized loop", err)
		if pcm, err = synth.Loop(); err != nil {
			return nil, err
		}
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	pl, err := p.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	pl.SetVolume(0.5)
	return pl, nil
}

// loadPCM finds stem.mp3, stem.ogg or stem.wav in the asset dir and decodes it.
func loadPCM(cfg config.Config, stem string) ([]byte, error) {
	for _, ext := range []string{".mp3", ".ogg", ".wav"} {
		path := cfg.Asset(stem + ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		pcm, err := decode(path, data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return pcm, nil
	}
	return nil, fmt.Errorf("no %s.{mp3,ogg,wav} in %s", stem, cfg.AssetDir)
}

func decode(path string, data []byte) ([]byte, error) {
	var (
		src io.Reader
		err error
	)
	r := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		src, err = mp3.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		src, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	default:
		src, err = wav.DecodeWithSampleRate(sampleRate, r)
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(src)
}
