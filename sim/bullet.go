package sim

import "github.com/milk9111/invaders/common"

// Bullet is a straight-line projectile. Pos is the bullet's center. The sign
// of VY encodes direction: player bullets travel up, enemy bullets down.
type Bullet struct {
	Pos        common.Vec2
	VY         float64
	FromPlayer bool
	Damage     int
}

// Update moves the bullet vertically.
func (b *Bullet) Update(dt float64) {
	b.Pos.Y += b.VY * dt
}

// Offscreen reports whether the bullet has left the vertical play area.
func (b *Bullet) Offscreen(screenHeight float64) bool {
	return b.Pos.Y < 0 || b.Pos.Y > screenHeight
}
