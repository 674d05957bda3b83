package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/invaders/audio"
	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	mute := flag.Bool("mute", false, "disable all audio")
	watch := flag.Bool("watch", false, "reload balance/balance.yaml on edit")
	flag.Parse()

	cfg, err := balance.Load()
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	var sink sim.Audio = sim.NopAudio{}
	if !*mute {
		sink = audio.NewEngine()
	}

	var watcher *balance.Watcher
	if *watch {
		w, err := balance.NewWatcher()
		if err != nil {
			log.Printf("balance watch disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	game := NewGame(cfg, rng, sink, watcher)

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("invaders")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
