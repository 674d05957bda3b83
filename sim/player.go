package sim

import (
	"github.com/milk9111/invaders/balance"
	"github.com/milk9111/invaders/common"
)

// Input is the per-frame snapshot of player controls. Left/Right are held
// keys; Restart is edge-triggered.
type Input struct {
	Left    bool
	Right   bool
	Restart bool
}

// Player is the ship at the bottom of the screen. One instance lives for the
// whole session; Restart resets its transient state via Reset while permanent
// stat upgrades (max health, fire rate, attack range) survive.
type Player struct {
	cfg *balance.Config

	pos           common.Vec2
	width, height float64
	speed         float64

	health    int
	maxHealth int

	fireCooldown float64
	fireRate     float64
	attackRange  float64

	input Input
}

// NewPlayer creates the player at its spawn point with base stats.
func NewPlayer(cfg *balance.Config) *Player {
	p := &Player{
		cfg:         cfg,
		width:       cfg.Player.Width,
		height:      cfg.Player.Height,
		speed:       cfg.Player.Speed,
		maxHealth:   cfg.Player.MaxHealth,
		fireRate:    cfg.Player.FireRate,
		attackRange: cfg.Player.AttackRange,
	}
	p.pos = p.spawnPos()
	p.health = p.maxHealth
	return p
}

func (p *Player) spawnPos() common.Vec2 {
	return common.Vec2{
		X: float64(p.cfg.Screen.Width) / 2,
		Y: float64(p.cfg.Screen.Height) - 50,
	}
}

// Reset restores position, health, and fire cooldown for a new run. Upgraded
// stats are kept on purpose.
func (p *Player) Reset() {
	p.pos = p.spawnPos()
	p.health = p.maxHealth
	p.fireCooldown = 0
}

// SetInput stores the control snapshot consumed by the next Update.
func (p *Player) SetInput(in Input) {
	p.input = in
}

// IncreaseMaxHealth raises the health cap and heals by one.
func (p *Player) IncreaseMaxHealth() {
	p.maxHealth++
	p.health++
}

// UpgradeFireRate shortens the fire interval, floored so repeated pickups
// cannot drive it to zero.
func (p *Player) UpgradeFireRate() {
	p.fireRate -= p.cfg.Player.FireRateStep
	if p.fireRate < p.cfg.Player.FireRateFloor {
		p.fireRate = p.cfg.Player.FireRateFloor
	}
}

// UpgradeAttackRange grows the attack range stat. The stat is tracked but no
// mechanic consumes it yet.
func (p *Player) UpgradeAttackRange() {
	p.attackRange += p.cfg.Player.AttackRangeStep
}

// Update moves the ship horizontally and fires when the cooldown elapses.
func (p *Player) Update(dt float64, bullets BulletSink, audio Audio) bool {
	if p.input.Left {
		p.pos.X -= p.speed * dt
	}
	if p.input.Right {
		p.pos.X += p.speed * dt
	}
	p.pos.X = common.Clamp(p.pos.X, 0, float64(p.cfg.Screen.Width)-p.width)

	p.fireCooldown -= dt
	if p.fireCooldown <= 0 {
		p.fireCooldown = p.fireRate
		bullets.AddBullet(Bullet{
			Pos:        common.Vec2{X: p.pos.X + p.width/2, Y: p.pos.Y},
			VY:         -p.cfg.Player.BulletSpeed,
			FromPlayer: true,
			Damage:     1,
		})
		audio.PlayLaser()
		return true
	}
	return false
}

func (p *Player) Hitbox() common.Rect {
	return common.Rect{X: p.pos.X, Y: p.pos.Y, Width: p.width, Height: p.height}
}

func (p *Player) Pos() common.Vec2 { return p.pos }

func (p *Player) Dead() bool { return p.health <= 0 }

func (p *Player) TakeDamage(amount int) { p.health -= amount }

func (p *Player) Health() int { return p.health }

func (p *Player) MaxHealth() int { return p.maxHealth }

func (p *Player) FireRate() float64 { return p.fireRate }

func (p *Player) AttackRange() float64 { return p.attackRange }
