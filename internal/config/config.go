// Package config holds the few settings that live outside the game rules:
// where assets and the ranking file are, and how the window starts.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	AssetDir    string
	RankingPath string
	Muted       bool
	WindowScale int
}

// Default keeps assets and ranking.txt next to where the game is started.
func Default() Config {
	return Config{
		AssetDir:    "assets",
		RankingPath: "ranking.txt",
		WindowScale: 1,
	}
}

// FromEnv is Default with SPAGHETTI_* overrides applied. Bad values are
// logged and ignored.
func FromEnv() Config {
	return apply(Default(), os.Getenv)
}

func apply(c Config, getenv func(string) string) Config {
	if v := getenv("SPAGHETTI_ASSETS"); v != "" {
		c.AssetDir = v
	}
	if v := getenv("SPAGHETTI_RANKING"); v != "" {
		c.RankingPath = v
	}
	if v := getenv("SPAGHETTI_MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("ignoring SPAGHETTI_MUTE=%q: %v", v, err)
		} else {
			c.Muted = b
		}
	}
	if v := getenv("SPAGHETTI_SCALE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Printf("ignoring SPAGHETTI_SCALE=%q", v)
		} else {
			c.WindowScale = n
		}
	}
	return c
}

// Asset resolves a file name inside the asset directory.
func (c Config) Asset(name string) string {
	return filepath.Join(c.AssetDir, name)
}
