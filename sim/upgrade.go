package sim

import (
	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/common"
)

// UpgradeType selects the stat a pickup improves.
type UpgradeType int

const (
	UpgradeHealth UpgradeType = iota
	UpgradeFireRate
	UpgradeAttackRange
)

func (t UpgradeType) String() string {
	switch t {
	case UpgradeHealth:
		return "health"
	case UpgradeFireRate:
		return "fire rate"
	case UpgradeAttackRange:
		return "attack range"
	default:
		return "unknown"
	}
}

// Upgrade is a falling pickup with a lifetime. Once the timer runs out or the
// pickup is collected it goes inactive and is reaped on the next maintenance
// pass.
type Upgrade struct {
	cfg *balance.Config

	typ    UpgradeType
	pos    common.Vec2
	timer  float64
	active bool
}

// NewUpgrade creates an active pickup of the given type at pos.
func NewUpgrade(cfg *balance.Config, pos common.Vec2, typ UpgradeType) *Upgrade {
	return &Upgrade{
		cfg:    cfg,
		typ:    typ,
		pos:    pos,
		timer:  cfg.Upgrade.Lifetime,
		active: true,
	}
}

// Update makes the pickup fall and counts down its lifetime.
func (u *Upgrade) Update(dt float64) {
	if !u.active {
		return
	}
	u.pos.Y += u.cfg.Upgrade.FallSpeed * dt
	u.timer -= dt
}

// Active reports whether the pickup can still be collected.
func (u *Upgrade) Active() bool {
	return u.active && u.timer > 0
}

// Deactivate marks the pickup as consumed.
func (u *Upgrade) Deactivate() {
	u.active = false
}

func (u *Upgrade) Hitbox() common.Rect {
	return common.Rect{X: u.pos.X, Y: u.pos.Y, Width: u.cfg.Upgrade.Size, Height: u.cfg.Upgrade.Size}
}

func (u *Upgrade) Pos() common.Vec2 { return u.pos }

func (u *Upgrade) Type() UpgradeType { return u.typ }
