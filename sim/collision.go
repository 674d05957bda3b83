package sim

// resolveCollisions runs the four collision passes in their fixed order:
// player bullets against enemies, enemies against the player, enemy bullets
// against the player, upgrades against the player. It runs once per frame,
// after all motion, so fast entities can tunnel.
func (w *World) resolveCollisions() {
	w.playerBulletsVsEnemies()
	w.enemiesVsPlayer()
	w.enemyBulletsVsPlayer()
	w.upgradesVsPlayer()
}

// playerBulletsVsEnemies damages the first enemy each player bullet overlaps
// and removes the bullet. The enemy stays even if its health hit zero; the
// next frame's reap pass handles the death.
func (w *World) playerBulletsVsEnemies() {
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		if !b.FromPlayer {
			kept = append(kept, b)
			continue
		}

		hit := false
		for _, e := range w.enemies {
			if e.Hitbox().IntersectsCircle(b.Pos, w.cfg.Bullet.Radius) {
				e.TakeDamage(b.Damage)
				w.audio.PlayExplosion()
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	w.bullets = kept
}

// enemiesVsPlayer applies contact damage for every enemy overlapping the
// player. There is no cooldown or knockback; continuous contact damages
// every frame.
func (w *World) enemiesVsPlayer() {
	playerBox := w.player.Hitbox()
	for _, e := range w.enemies {
		if !playerBox.Intersects(e.Hitbox()) {
			continue
		}
		damage := 1
		if e.Type() == EnemyBoss {
			damage = w.cfg.Boss.ContactDamage
		}
		w.player.TakeDamage(damage)
		w.audio.PlayExplosion()
	}
}

func (w *World) enemyBulletsVsPlayer() {
	playerBox := w.player.Hitbox()
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		if b.FromPlayer {
			kept = append(kept, b)
			continue
		}
		if playerBox.IntersectsCircle(b.Pos, w.cfg.Bullet.Radius) {
			w.player.TakeDamage(b.Damage)
			w.audio.PlayExplosion()
			continue
		}
		kept = append(kept, b)
	}
	w.bullets = kept
}

// upgradesVsPlayer applies and consumes any active pickup the player touches.
func (w *World) upgradesVsPlayer() {
	playerBox := w.player.Hitbox()
	kept := w.upgrades[:0]
	for _, u := range w.upgrades {
		if !u.Active() || !playerBox.Intersects(u.Hitbox()) {
			kept = append(kept, u)
			continue
		}

		switch u.Type() {
		case UpgradeHealth:
			w.player.IncreaseMaxHealth()
			w.notify("MAX HEALTH +1")
		case UpgradeFireRate:
			w.player.UpgradeFireRate()
			w.notify("FIRE RATE UP!")
		case UpgradeAttackRange:
			w.player.UpgradeAttackRange()
			w.notify("ATTACK RANGE +")
		}
		w.audio.PlayUpgrade()
		u.Deactivate()
	}
	w.upgrades = kept
}
