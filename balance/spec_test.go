package balance

import "testing"

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"screen.width", float64(cfg.Screen.Width), 800},
		{"screen.height", float64(cfg.Screen.Height), 600},
		{"player.speed", cfg.Player.Speed, 300},
		{"player.fire_rate", cfg.Player.FireRate, 0.5},
		{"player.fire_rate_floor", cfg.Player.FireRateFloor, 0.1},
		{"player.bullet_speed", cfg.Player.BulletSpeed, 500},
		{"bullet.enemy_speed", cfg.Bullet.EnemySpeed, 300},
		{"enemy.shoot_interval", cfg.Enemy.ShootInterval, 2},
		{"enemy.hard.health", float64(cfg.Enemy.Hard.Health), 2},
		{"boss.health", float64(cfg.Boss.Health), 7},
		{"boss.score", float64(cfg.Boss.Score), 500},
		{"boss.turn_interval", cfg.Boss.TurnInterval, 1.5},
		{"spawn.wave_interval", cfg.Spawn.WaveInterval, 2},
		{"spawn.boss_interval", cfg.Spawn.BossInterval, 60},
		{"spawn.drop_chance", cfg.Spawn.DropChance, 0.2},
		{"upgrade.lifetime", cfg.Upgrade.Lifetime, 5},
		{"notification.duration", cfg.Notification.Duration, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"zero_screen_width", func(cfg *Config) { cfg.Screen.Width = 0 }},
		{"negative_player_speed", func(cfg *Config) { cfg.Player.Speed = -1 }},
		{"zero_fire_rate_floor", func(cfg *Config) { cfg.Player.FireRateFloor = 0 }},
		{"zero_boss_health", func(cfg *Config) { cfg.Boss.Health = 0 }},
		{"wave_max_below_min", func(cfg *Config) { cfg.Spawn.WaveMax = 0 }},
		{"drop_chance_above_one", func(cfg *Config) { cfg.Spawn.DropChance = 1.5 }},
		{"zero_upgrade_lifetime", func(cfg *Config) { cfg.Upgrade.Lifetime = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate accepted a broken config")
			}
		})
	}
}
