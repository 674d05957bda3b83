package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/invaders/sim"
)

// Input polls the keyboard into per-frame control snapshots for the
// simulation.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the current keyboard state. Movement keys are level-triggered;
// restart is edge-triggered so holding Enter doesn't re-restart.
func (i *Input) Poll() sim.Input {
	return sim.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
