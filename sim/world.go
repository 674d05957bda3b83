package sim

import (
	"math/rand"

	"github.com/milk9111/invaders/balance"
)

// State is the top-level game state.
type State int

const (
	Playing State = iota
	GameOver
)

// World owns every entity collection and drives the whole simulation: one
// Update call per rendered frame, in a fixed order. All mutation happens
// inside that single call, so nothing here needs locking.
type World struct {
	cfg   *balance.Config
	rng   *rand.Rand
	audio Audio

	state State
	score int

	player        *Player
	enemies       []*Enemy
	bullets       []Bullet
	upgrades      []*Upgrade
	notifications []Notification

	enemySpawnTimer float64
	bossSpawnTimer  float64
	bossesDefeated  int
	bossActive      bool
}

// NewWorld creates a world in the PLAYING state and starts the music. A nil
// audio collaborator degrades to silence.
func NewWorld(cfg *balance.Config, rng *rand.Rand, audio Audio) *World {
	if audio == nil {
		audio = NopAudio{}
	}
	w := &World{
		cfg:    cfg,
		rng:    rng,
		audio:  audio,
		player: NewPlayer(cfg),
	}
	w.audio.PlayMusic()
	return w
}

// Update advances the simulation by dt seconds. The frame source is untrusted
// input, so a negative dt is clamped to zero.
func (w *World) Update(dt float64, in Input) {
	if dt < 0 {
		dt = 0
	}

	if w.state == GameOver {
		if in.Restart {
			w.Restart()
		}
		return
	}

	w.audio.Update()

	w.player.SetInput(in)
	w.player.Update(dt, w, w.audio)
	if w.player.Dead() {
		// No entity gets a free update after the run ends; collisions that
		// already landed this frame stand.
		w.state = GameOver
		return
	}

	w.spawnEnemies(dt)
	w.spawnBoss(dt)

	w.updateBullets(dt)
	w.updateEnemies(dt)
	w.updateUpgrades(dt)
	w.updateNotifications(dt)

	w.resolveCollisions()
}

// Restart clears every collection and timer and begins a new run. Permanent
// player stat upgrades persist through the player's own Reset.
func (w *World) Restart() {
	w.enemies = nil
	w.bullets = nil
	w.upgrades = nil
	w.notifications = nil

	w.score = 0
	w.enemySpawnTimer = 0
	w.bossSpawnTimer = 0
	w.bossesDefeated = 0
	w.bossActive = false

	w.player.Reset()

	w.audio.StopMusic()
	w.audio.PlayMusic()

	w.state = Playing
}

// AddBullet appends a bullet to the world. Shooters call this through the
// BulletSink contract.
func (w *World) AddBullet(b Bullet) {
	w.bullets = append(w.bullets, b)
}

func (w *World) updateBullets(dt float64) {
	for i := range w.bullets {
		w.bullets[i].Update(dt)
	}

	kept := w.bullets[:0]
	screenHeight := float64(w.cfg.Screen.Height)
	for _, b := range w.bullets {
		if !b.Offscreen(screenHeight) {
			kept = append(kept, b)
		}
	}
	w.bullets = kept
}

func (w *World) updateEnemies(dt float64) {
	for _, e := range w.enemies {
		e.Update(dt, w, w.audio)
	}

	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Dead() {
			kept = append(kept, e)
			continue
		}

		dropPos := e.Pos()
		if e.Type() == EnemyBoss {
			w.bossesDefeated++
			w.bossActive = false
			w.spawnUpgrade(dropPos)
			w.notify("BOSS DEFEATED!")
		} else if w.rng.Float64() < w.cfg.Spawn.DropChance {
			w.spawnUpgrade(dropPos)
		}
		w.score += e.Score()
	}
	w.enemies = kept
}

func (w *World) updateUpgrades(dt float64) {
	for _, u := range w.upgrades {
		u.Update(dt)
	}

	kept := w.upgrades[:0]
	for _, u := range w.upgrades {
		if u.Active() {
			kept = append(kept, u)
		}
	}
	w.upgrades = kept
}

func (w *World) updateNotifications(dt float64) {
	kept := w.notifications[:0]
	for _, n := range w.notifications {
		n.Remaining -= dt
		if n.Remaining > 0 {
			kept = append(kept, n)
		}
	}
	w.notifications = kept
}

func (w *World) notify(text string) {
	w.notifications = append(w.notifications, Notification{
		Text:      text,
		Remaining: w.cfg.Notification.Duration,
	})
}

// SetConfig swaps the tuning tree, e.g. after a live balance reload. Existing
// entities keep the config they were built with; future spawns use the new
// one.
func (w *World) SetConfig(cfg *balance.Config) {
	w.cfg = cfg
}

func (w *World) State() State { return w.state }

func (w *World) Score() int { return w.score }

func (w *World) Player() *Player { return w.player }

func (w *World) Enemies() []*Enemy { return w.enemies }

func (w *World) Bullets() []Bullet { return w.bullets }

func (w *World) Upgrades() []*Upgrade { return w.upgrades }

func (w *World) Notifications() []Notification { return w.notifications }

func (w *World) BossesDefeated() int { return w.bossesDefeated }

func (w *World) BossActive() bool { return w.bossActive }

// BossCountdown is the number of whole seconds until the next boss spawns:
// the interval minus the truncated elapsed time, so 57.3s elapsed still reads
// as 3. It is meaningless while a boss is alive.
func (w *World) BossCountdown() int {
	return int(w.cfg.Spawn.BossInterval) - int(w.bossSpawnTimer)
}

// DifficultyLabel names the current enemy tier for the HUD.
func (w *World) DifficultyLabel() string {
	switch {
	case w.bossesDefeated == 0:
		return "Easy"
	case w.bossesDefeated == 1:
		return "Medium"
	default:
		return "Hard"
	}
}
