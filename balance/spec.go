package balance

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the full tuning tree for the game. Every value the simulation
// consumes lives here so a tweak never needs a rebuild.
type Config struct {
	Screen       ScreenSpec       `yaml:"screen"`
	Player       PlayerSpec       `yaml:"player"`
	Bullet       BulletSpec       `yaml:"bullet"`
	Enemy        EnemySpec        `yaml:"enemy"`
	Boss         BossSpec         `yaml:"boss"`
	Spawn        SpawnSpec        `yaml:"spawn"`
	Upgrade      UpgradeSpec      `yaml:"upgrade"`
	Notification NotificationSpec `yaml:"notification"`
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSpec struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	MaxHealth       int     `yaml:"max_health"`
	FireRate        float64 `yaml:"fire_rate"`
	FireRateStep    float64 `yaml:"fire_rate_step"`
	FireRateFloor   float64 `yaml:"fire_rate_floor"`
	AttackRange     float64 `yaml:"attack_range"`
	AttackRangeStep float64 `yaml:"attack_range_step"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
}

type BulletSpec struct {
	Radius     float64 `yaml:"radius"`
	EnemySpeed float64 `yaml:"enemy_speed"`
}

// TierSpec holds the stats shared by every non-boss enemy tier.
type TierSpec struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	Score  int     `yaml:"score"`
}

type EnemySpec struct {
	Size          float64  `yaml:"size"`
	ShootInterval float64  `yaml:"shoot_interval"`
	Simple        TierSpec `yaml:"simple"`
	Mid           TierSpec `yaml:"mid"`
	Hard          TierSpec `yaml:"hard"`
}

type BossSpec struct {
	Size          float64 `yaml:"size"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	Score         int     `yaml:"score"`
	ContactDamage int     `yaml:"contact_damage"`
	BulletDamage  int     `yaml:"bullet_damage"`
	ShootInterval float64 `yaml:"shoot_interval"`
	TurnInterval  float64 `yaml:"turn_interval"`
	SpreadCount   int     `yaml:"spread_count"`
	SpreadJitter  float64 `yaml:"spread_jitter"`
}

type SpawnSpec struct {
	WaveInterval float64 `yaml:"wave_interval"`
	WaveMin      int     `yaml:"wave_min"`
	WaveMax      int     `yaml:"wave_max"`
	BossInterval float64 `yaml:"boss_interval"`
	DropChance   float64 `yaml:"drop_chance"`
}

type UpgradeSpec struct {
	FallSpeed float64 `yaml:"fall_speed"`
	Lifetime  float64 `yaml:"lifetime"`
	Size      float64 `yaml:"size"`
}

type NotificationSpec struct {
	Duration float64 `yaml:"duration"`
}

// Load parses the balance file, preferring a disk copy over the embedded
// default, and validates it.
func Load() (*Config, error) {
	data, err := Bytes()
	if err != nil {
		return nil, fmt.Errorf("balance: load %s: %w", fileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("balance: unmarshal %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run on.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"screen.width", c.Screen.Width > 0},
		{"screen.height", c.Screen.Height > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.speed", c.Player.Speed > 0},
		{"player.max_health", c.Player.MaxHealth > 0},
		{"player.fire_rate", c.Player.FireRate > 0},
		{"player.fire_rate_floor", c.Player.FireRateFloor > 0},
		{"player.bullet_speed", c.Player.BulletSpeed > 0},
		{"bullet.radius", c.Bullet.Radius > 0},
		{"bullet.enemy_speed", c.Bullet.EnemySpeed > 0},
		{"enemy.size", c.Enemy.Size > 0},
		{"enemy.shoot_interval", c.Enemy.ShootInterval > 0},
		{"enemy.simple.health", c.Enemy.Simple.Health > 0},
		{"enemy.mid.health", c.Enemy.Mid.Health > 0},
		{"enemy.hard.health", c.Enemy.Hard.Health > 0},
		{"boss.size", c.Boss.Size > 0},
		{"boss.health", c.Boss.Health > 0},
		{"boss.shoot_interval", c.Boss.ShootInterval > 0},
		{"boss.turn_interval", c.Boss.TurnInterval > 0},
		{"boss.spread_count", c.Boss.SpreadCount > 0},
		{"spawn.wave_interval", c.Spawn.WaveInterval > 0},
		{"spawn.wave_min", c.Spawn.WaveMin > 0},
		{"spawn.wave_max", c.Spawn.WaveMax >= c.Spawn.WaveMin},
		{"spawn.boss_interval", c.Spawn.BossInterval > 0},
		{"spawn.drop_chance", c.Spawn.DropChance >= 0 && c.Spawn.DropChance <= 1},
		{"upgrade.fall_speed", c.Upgrade.FallSpeed > 0},
		{"upgrade.lifetime", c.Upgrade.Lifetime > 0},
		{"upgrade.size", c.Upgrade.Size > 0},
		{"notification.duration", c.Notification.Duration > 0},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("invalid %s", check.name)
		}
	}
	return nil
}
