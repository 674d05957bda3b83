package sim

import (
	"math/rand"
	"testing"

	"github.com/milk9111/invaders/common"
)

func TestEnemyStatTable(t *testing.T) {
	cases := []struct {
		name       string
		typ        EnemyType
		wantHealth int
		wantScore  int
		wantSize   float64
	}{
		{"simple", EnemySimple, 1, 10, 40},
		{"mid", EnemyMid, 1, 25, 40},
		{"hard", EnemyHard, 2, 50, 40},
		{"boss", EnemyBoss, 7, 500, 120},
	}

	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(1))

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEnemy(cfg, rng, common.Vec2{X: 0, Y: 0}, c.typ)
			if e.Health() != c.wantHealth {
				t.Fatalf("health = %d, want %d", e.Health(), c.wantHealth)
			}
			if e.Score() != c.wantScore {
				t.Fatalf("score = %d, want %d", e.Score(), c.wantScore)
			}
			if e.Size() != c.wantSize {
				t.Fatalf("size = %v, want %v", e.Size(), c.wantSize)
			}
		})
	}
}

func TestEnemyDescendsAndFires(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(cfg, rng, common.Vec2{X: 200, Y: 0}, EnemyMid)
	sink := &bulletCollector{}

	// 2 s at 0.1 s steps crosses the shoot interval exactly once.
	fired := 0
	for i := 0; i < 20; i++ {
		if e.Update(0.1, sink, NopAudio{}) {
			fired++
		}
	}

	if fired != 1 || len(sink.bullets) != 1 {
		t.Fatalf("fired %d times with %d bullets, want 1 and 1", fired, len(sink.bullets))
	}
	b := sink.bullets[0]
	if b.FromPlayer || b.Damage != 1 || b.VY != cfg.Bullet.EnemySpeed {
		t.Fatalf("bullet = %+v, want downward enemy bullet damage 1", b)
	}

	wantY := cfg.Enemy.Mid.Speed * 2
	if diff := e.Pos().Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("y = %v after 2s, want %v", e.Pos().Y, wantY)
	}
	if e.Pos().X != 200 {
		t.Fatalf("x = %v, want unchanged 200", e.Pos().X)
	}
}

func TestBossSpreadFire(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(cfg, rng, common.Vec2{X: 340, Y: 50}, EnemyBoss)
	sink := &bulletCollector{}

	if e.Update(cfg.Boss.ShootInterval, sink, NopAudio{}) != true {
		t.Fatal("boss did not fire after its shoot interval")
	}
	if len(sink.bullets) != cfg.Boss.SpreadCount {
		t.Fatalf("spread = %d bullets, want %d", len(sink.bullets), cfg.Boss.SpreadCount)
	}
	centerX := e.Pos().X + e.Size()/2
	for i, b := range sink.bullets {
		if b.FromPlayer {
			t.Fatalf("bullet %d owned by player", i)
		}
		if b.Damage != cfg.Boss.BulletDamage {
			t.Fatalf("bullet %d damage = %d, want %d", i, b.Damage, cfg.Boss.BulletDamage)
		}
		if b.Pos.X < centerX-cfg.Boss.SpreadJitter || b.Pos.X > centerX+cfg.Boss.SpreadJitter {
			t.Fatalf("bullet %d x = %v outside jitter range around %v", i, b.Pos.X, centerX)
		}
		if b.Pos.Y != e.Pos().Y+e.Size() {
			t.Fatalf("bullet %d y = %v, want boss bottom edge", i, b.Pos.Y)
		}
	}
}

func TestBossStaysInHorizontalBounds(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(42))
	e := NewEnemy(cfg, rng, common.Vec2{X: 0, Y: 50}, EnemyBoss)
	sink := &bulletCollector{}

	maxX := float64(cfg.Screen.Width) - cfg.Boss.Size
	for i := 0; i < 600; i++ {
		e.Update(0.1, sink, NopAudio{})
		if e.Pos().X < 0 || e.Pos().X > maxX {
			t.Fatalf("boss x = %v outside [0, %v]", e.Pos().X, maxX)
		}
	}
}

// Wander timers live on each boss instance, so two bosses re-randomize
// independently.
func TestBossTimersArePerInstance(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(1))
	a := NewEnemy(cfg, rng, common.Vec2{X: 340, Y: 50}, EnemyBoss)
	b := NewEnemy(cfg, rng, common.Vec2{X: 340, Y: 50}, EnemyBoss)
	sink := &bulletCollector{}

	// Drive only one boss past its turn interval.
	for i := 0; i < 4; i++ {
		a.Update(0.5, sink, NopAudio{})
	}

	if a.dir == (common.Vec2{X: 0, Y: 1}) {
		t.Fatal("boss a never re-randomized its direction")
	}
	if b.dir != (common.Vec2{X: 0, Y: 1}) {
		t.Fatal("idle boss b changed direction without updating")
	}
	if b.turnTimer != 0 || b.shootTimer != 0 {
		t.Fatalf("idle boss b accumulated timers: turn=%v shoot=%v", b.turnTimer, b.shootTimer)
	}
}
