// Command cubeview-desktop shows the cube viewer in a native window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seqsense/cubeview/viewport"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	width := flag.Int("width", 960, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	flag.Parse()

	cfg := viewport.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = viewport.LoadConfig(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	g, err := newGame(cfg, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("cubeview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
	if err := g.vc.Dispose(); err != nil {
		log.Print(err)
	}
}
