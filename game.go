package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/sim"
)

// maxDeltaTime caps the frame delta so a stalled window (drag, breakpoint,
// sleep) doesn't teleport every entity on resume.
const maxDeltaTime = 0.25

// Game glues the simulation to ebiten: it converts wall-clock time into a
// frame delta, polls input, runs one world update, and draws the result.
type Game struct {
	cfg   *balance.Config
	world *sim.World

	input    *Input
	renderer *Renderer
	hud      *HUD
	gameOver *GameOverUI

	watcher *balance.Watcher

	lastUpdate time.Time
}

// NewGame builds the full game from a validated config.
func NewGame(cfg *balance.Config, rng *rand.Rand, sink sim.Audio, watcher *balance.Watcher) *Game {
	g := &Game{
		cfg:        cfg,
		world:      sim.NewWorld(cfg, rng, sink),
		input:      NewInput(),
		renderer:   NewRenderer(cfg),
		hud:        NewHUD(cfg),
		watcher:    watcher,
		lastUpdate: time.Now(),
	}
	g.gameOver = NewGameOverUI(g)
	return g
}

// Update runs one simulation frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}
	g.lastUpdate = now

	g.drainBalanceEvents()

	in := g.input.Poll()
	if g.gameOver.ConsumeRestart() {
		in.Restart = true
	}
	g.world.Update(dt, in)

	if g.world.State() == sim.GameOver {
		g.gameOver.SetScore(g.world.Score())
		g.gameOver.Update()
	}
	return nil
}

// drainBalanceEvents applies live edits of the balance file to future spawns.
func (g *Game) drainBalanceEvents() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("balance watch: %v", err)
			}
		default:
			if reload {
				cfg, err := balance.Load()
				if err != nil {
					log.Printf("balance reload rejected: %v", err)
					return
				}
				g.applyConfig(cfg)
				log.Printf("balance reloaded")
			}
			return
		}
	}
}

// applyConfig hands a reloaded tuning tree to the simulation and every
// draw-side component. The game-over overlay sizes its panel at construction,
// so it is rebuilt.
func (g *Game) applyConfig(cfg *balance.Config) {
	g.cfg = cfg
	g.world.SetConfig(cfg)
	g.renderer.SetConfig(cfg)
	g.hud.SetConfig(cfg)
	if g.gameOver != nil {
		g.gameOver = NewGameOverUI(g)
	}
}

// Draw renders the current world snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.hud.Draw(screen, g.world)

	if g.world.State() == sim.GameOver {
		g.gameOver.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
