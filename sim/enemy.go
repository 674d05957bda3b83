package sim

import (
	"math/rand"

	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/common"
)

// EnemyType selects an enemy's stat block and behavior.
type EnemyType int

const (
	EnemySimple EnemyType = iota
	EnemyMid
	EnemyHard
	EnemyBoss
)

func (t EnemyType) String() string {
	switch t {
	case EnemySimple:
		return "simple"
	case EnemyMid:
		return "mid"
	case EnemyHard:
		return "hard"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is a descending attacker. Non-boss enemies fall straight down and
// fire on a fixed interval; the boss wanders on a periodically re-randomized
// direction and fires a spread. Wander and shoot timers are per-instance, so
// simultaneous bosses would behave independently.
type Enemy struct {
	cfg *balance.Config
	rng *rand.Rand

	typ    EnemyType
	pos    common.Vec2
	size   float64
	health int
	speed  float64
	score  int

	shootTimer    float64
	shootInterval float64

	// boss wander state
	turnTimer float64
	dir       common.Vec2
}

// NewEnemy creates an enemy of the given type at pos.
func NewEnemy(cfg *balance.Config, rng *rand.Rand, pos common.Vec2, typ EnemyType) *Enemy {
	e := &Enemy{
		cfg:           cfg,
		rng:           rng,
		typ:           typ,
		pos:           pos,
		size:          cfg.Enemy.Size,
		shootInterval: cfg.Enemy.ShootInterval,
		dir:           common.Vec2{X: 0, Y: 1},
	}
	switch typ {
	case EnemySimple:
		e.applyTier(cfg.Enemy.Simple)
	case EnemyMid:
		e.applyTier(cfg.Enemy.Mid)
	case EnemyHard:
		e.applyTier(cfg.Enemy.Hard)
	case EnemyBoss:
		e.size = cfg.Boss.Size
		e.health = cfg.Boss.Health
		e.speed = cfg.Boss.Speed
		e.score = cfg.Boss.Score
		e.shootInterval = cfg.Boss.ShootInterval
	}
	return e
}

func (e *Enemy) applyTier(tier balance.TierSpec) {
	e.health = tier.Health
	e.speed = tier.Speed
	e.score = tier.Score
}

// Update advances movement and firing for one frame.
func (e *Enemy) Update(dt float64, bullets BulletSink, audio Audio) bool {
	if e.typ == EnemyBoss {
		return e.updateBoss(dt, bullets)
	}

	e.pos.Y += e.speed * dt

	e.shootTimer += dt
	if e.shootTimer >= e.shootInterval {
		e.shootTimer = 0
		bullets.AddBullet(Bullet{
			Pos:        common.Vec2{X: e.pos.X + e.size/2, Y: e.pos.Y + e.size},
			VY:         e.cfg.Bullet.EnemySpeed,
			FromPlayer: false,
			Damage:     1,
		})
		return true
	}
	return false
}

func (e *Enemy) updateBoss(dt float64, bullets BulletSink) bool {
	e.turnTimer += dt
	if e.turnTimer >= e.cfg.Boss.TurnInterval {
		e.turnTimer = 0
		e.dir = common.Vec2{
			X: e.rng.Float64()*2 - 1,
			Y: 0.5 + e.rng.Float64()*0.5,
		}
	}

	e.pos.X += e.dir.X * e.speed * dt
	e.pos.Y += e.dir.Y * e.speed * dt
	e.pos.X = common.Clamp(e.pos.X, 0, float64(e.cfg.Screen.Width)-e.size)

	e.shootTimer += dt
	if e.shootTimer >= e.cfg.Boss.ShootInterval {
		e.shootTimer = 0
		jitter := e.cfg.Boss.SpreadJitter
		for i := 0; i < e.cfg.Boss.SpreadCount; i++ {
			bullets.AddBullet(Bullet{
				Pos: common.Vec2{
					X: e.pos.X + e.size/2 + (e.rng.Float64()*2-1)*jitter,
					Y: e.pos.Y + e.size,
				},
				VY:         e.cfg.Bullet.EnemySpeed,
				FromPlayer: false,
				Damage:     e.cfg.Boss.BulletDamage,
			})
		}
		return true
	}
	return false
}

func (e *Enemy) Hitbox() common.Rect {
	return common.Rect{X: e.pos.X, Y: e.pos.Y, Width: e.size, Height: e.size}
}

func (e *Enemy) Pos() common.Vec2 { return e.pos }

func (e *Enemy) Dead() bool { return e.health <= 0 }

func (e *Enemy) TakeDamage(amount int) { e.health -= amount }

func (e *Enemy) Type() EnemyType { return e.typ }

func (e *Enemy) Health() int { return e.health }

func (e *Enemy) MaxHealth() int {
	switch e.typ {
	case EnemyBoss:
		return e.cfg.Boss.Health
	case EnemyMid:
		return e.cfg.Enemy.Mid.Health
	case EnemyHard:
		return e.cfg.Enemy.Hard.Health
	default:
		return e.cfg.Enemy.Simple.Health
	}
}

func (e *Enemy) Score() int { return e.score }

func (e *Enemy) Size() float64 { return e.size }
