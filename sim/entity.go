package sim

import "github.com/milk9111/invaders/common"

// BulletSink receives bullets fired during an entity update. The World is the
// only implementation; the indirection keeps entity updates testable without
// a full world.
type BulletSink interface {
	AddBullet(b Bullet)
}

var (
	_ Combatant = (*Player)(nil)
	_ Combatant = (*Enemy)(nil)
)

// Combatant is the capability contract shared by the player and enemies: a
// positioned, damageable body that may fire bullets each frame. It is a
// closed set; Player and Enemy are the only implementations.
type Combatant interface {
	Hitbox() common.Rect
	Pos() common.Vec2
	// Dead reports whether health has reached zero or below.
	Dead() bool
	// TakeDamage subtracts health. Health may go negative; death detection is
	// the caller's job.
	TakeDamage(amount int)
	// Update advances the entity one frame and reports whether it fired a
	// bullet.
	Update(dt float64, bullets BulletSink, audio Audio) bool
}
