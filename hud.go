package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/sim"
)

var (
	hudTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	heartColor    = color.NRGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	noticeColor   = color.NRGBA{R: 0x00, G: 0xe4, B: 0x30, A: 0xff}
	hudTextScale  = 1.5
	noticeStartY  = 130.0
	noticeSpacing = 25.0
)

// HUD draws hearts, score, difficulty, the boss countdown, and the
// notification stack.
type HUD struct {
	cfg  *balance.Config
	face text.Face
}

func NewHUD(cfg *balance.Config) *HUD {
	return &HUD{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetConfig swaps the tuning tree after a live balance reload.
func (h *HUD) SetConfig(cfg *balance.Config) {
	h.cfg = cfg
}

// Draw renders the HUD for the current world snapshot.
func (h *HUD) Draw(screen *ebiten.Image, w *sim.World) {
	for i := 0; i < w.Player().Health(); i++ {
		vector.DrawFilledRect(screen, float32(10+i*30), 10, 20, 20, heartColor, false)
	}

	h.drawText(screen, fmt.Sprintf("Score: %d", w.Score()), 10, 40, hudTextColor)
	h.drawText(screen, fmt.Sprintf("Difficulty: %s", w.DifficultyLabel()), 10, 70, hudTextColor)

	if !w.BossActive() {
		h.drawText(screen, fmt.Sprintf("Next boss: %d", w.BossCountdown()), 10, 100, hudTextColor)
	}

	y := noticeStartY
	for _, n := range w.Notifications() {
		h.drawText(screen, n.Text, 10, y, noticeColor)
		y += noticeSpacing
	}
}

func (h *HUD) drawText(screen *ebiten.Image, str string, x, y float64, col color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, h.face, op)
}
