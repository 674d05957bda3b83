package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/sim"
)

// Entity palette. Styling is owned here, not by the simulation.
var (
	playerColor      = color.NRGBA{R: 0x00, G: 0x79, B: 0xf1, A: 0xff}
	playerBulletCol  = color.NRGBA{R: 0xfd, G: 0xf9, B: 0x00, A: 0xff}
	enemyBulletCol   = color.NRGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	bossHealthBarCol = color.NRGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	upgradeOutline   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	enemyColors = map[sim.EnemyType]color.NRGBA{
		sim.EnemySimple: {R: 0xe6, G: 0x29, B: 0x37, A: 0xff},
		sim.EnemyMid:    {R: 0x00, G: 0xe4, B: 0x30, A: 0xff},
		sim.EnemyHard:   {R: 0xc8, G: 0x7a, B: 0xff, A: 0xff},
		sim.EnemyBoss:   {R: 0xff, G: 0xa1, B: 0x00, A: 0xff},
	}

	upgradeColors = map[sim.UpgradeType]color.NRGBA{
		sim.UpgradeHealth:      {R: 0x00, G: 0xe4, B: 0x30, A: 0xff},
		sim.UpgradeFireRate:    {R: 0x00, G: 0x79, B: 0xf1, A: 0xff},
		sim.UpgradeAttackRange: {R: 0xfd, G: 0xf9, B: 0x00, A: 0xff},
	}
)

// Renderer draws the world's entities with flat vector primitives.
type Renderer struct {
	cfg *balance.Config
}

func NewRenderer(cfg *balance.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// SetConfig swaps the tuning tree after a live balance reload.
func (r *Renderer) SetConfig(cfg *balance.Config) {
	r.cfg = cfg
}

// Draw renders every entity in the world snapshot.
func (r *Renderer) Draw(screen *ebiten.Image, w *sim.World) {
	for _, e := range w.Enemies() {
		r.drawEnemy(screen, e)
	}
	for _, b := range w.Bullets() {
		r.drawBullet(screen, b)
	}
	for _, u := range w.Upgrades() {
		r.drawUpgrade(screen, u)
	}
	r.drawRect(screen, w.Player().Hitbox(), playerColor)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *sim.Enemy) {
	box := e.Hitbox()
	r.drawRect(screen, box, enemyColors[e.Type()])

	if e.Type() == sim.EnemyBoss {
		frac := float64(e.Health()) / float64(e.MaxHealth())
		if frac < 0 {
			frac = 0
		}
		bar := common.Rect{X: box.X, Y: box.Y - 20, Width: box.Width * frac, Height: 10}
		r.drawRect(screen, bar, bossHealthBarCol)
	}
}

func (r *Renderer) drawBullet(screen *ebiten.Image, b sim.Bullet) {
	col := enemyBulletCol
	if b.FromPlayer {
		col = playerBulletCol
	}
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(r.cfg.Bullet.Radius), col, true)
}

func (r *Renderer) drawUpgrade(screen *ebiten.Image, u *sim.Upgrade) {
	box := u.Hitbox()
	r.drawRect(screen, box, upgradeColors[u.Type()])
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), 1, upgradeOutline, false)
}

func (r *Renderer) drawRect(screen *ebiten.Image, box common.Rect, col color.NRGBA) {
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), col, false)
}
