package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/veilui/veil/engine/assets"
	"github.com/veilui/veil/engine/core"
	"github.com/veilui/veil/engine/platform"
	"github.com/veilui/veil/engine/platform/term"
)

type config struct {
	Backend string `toml:"backend"` // "glfw" or "term"
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	VSync   bool   `toml:"vsync"`
	Font    string `toml:"font"` // relative to assets/fonts; empty = embedded
}

func loadConfig() config {
	cfg := config{
		Backend: "glfw",
		Title:   "Veil Sandbox",
		Width:   1280,
		Height:  720,
		VSync:   true,
	}
	if _, err := toml.DecodeFile("sandbox.toml", &cfg); err != nil && !os.IsNotExist(err) {
		log.Printf("sandbox.toml: %v (using defaults)", err)
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	fontData := assets.DefaultFont()
	if cfg.Font != "" {
		data, err := assets.LoadFont(cfg.Font)
		if err != nil {
			log.Printf("%v (falling back to embedded font)", err)
		} else {
			fontData = data
		}
	}

	engCfg := core.Config{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height, VSync: cfg.VSync}
	ov := core.NewOverlay(engCfg, fontData, func(*core.Overlay) core.Screen {
		return &mainMenu{}
	})

	var (
		host core.Host
		err  error
	)
	switch cfg.Backend {
	case "term":
		host, err = term.NewHost(engCfg)
	default:
		host, err = platform.NewGLFWHost(engCfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	core.Run(ov, host)
}
