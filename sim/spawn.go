package sim

import "github.com/milk9111/invaders/common"

// tierFor maps cumulative boss defeats onto the spawned enemy type. The
// mapping is deterministic: difficulty only moves when a boss dies.
func tierFor(bossesDefeated int) EnemyType {
	switch {
	case bossesDefeated == 0:
		return EnemySimple
	case bossesDefeated == 1:
		return EnemyMid
	default:
		return EnemyHard
	}
}

// spawnEnemies drops a wave of 1-4 enemies just above the screen every wave
// interval. All enemies in a wave share the tier for the current difficulty.
func (w *World) spawnEnemies(dt float64) {
	w.enemySpawnTimer += dt
	if w.enemySpawnTimer < w.cfg.Spawn.WaveInterval {
		return
	}
	w.enemySpawnTimer = 0

	count := w.cfg.Spawn.WaveMin + w.rng.Intn(w.cfg.Spawn.WaveMax-w.cfg.Spawn.WaveMin+1)
	typ := tierFor(w.bossesDefeated)

	for i := 0; i < count; i++ {
		pos := common.Vec2{
			X: w.rng.Float64() * (float64(w.cfg.Screen.Width) - w.cfg.Enemy.Size),
			Y: -w.cfg.Enemy.Size,
		}
		w.enemies = append(w.enemies, NewEnemy(w.cfg, w.rng, pos, typ))
	}
}

// spawnBoss accumulates time while no boss is alive and spawns one centered
// above the screen when the interval elapses.
func (w *World) spawnBoss(dt float64) {
	if w.bossActive {
		return
	}

	w.bossSpawnTimer += dt
	if w.bossSpawnTimer < w.cfg.Spawn.BossInterval {
		return
	}
	w.bossSpawnTimer = 0
	w.bossActive = true

	pos := common.Vec2{
		X: float64(w.cfg.Screen.Width)/2 - w.cfg.Boss.Size/2,
		Y: -w.cfg.Boss.Size,
	}
	w.enemies = append(w.enemies, NewEnemy(w.cfg, w.rng, pos, EnemyBoss))
	w.notify("BOSS INCOMING!")
}

// spawnUpgrade drops a random-type pickup at pos.
func (w *World) spawnUpgrade(pos common.Vec2) {
	typ := UpgradeType(w.rng.Intn(3))
	w.upgrades = append(w.upgrades, NewUpgrade(w.cfg, pos, typ))
}
