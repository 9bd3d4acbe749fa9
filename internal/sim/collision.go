package sim

import "github.com/vovakirdan/babaam/internal/core"

// killSource identifies what destroyed an enemy. It feeds the
// plasma-only tracking: spread, beam, and drone fire disqualify the run,
// while ramming, drone collisions, and nukes do not.
type killSource int

const (
	sourcePlasma killSource = iota
	sourceSpread
	sourceBeam
	sourceDroneFire
	sourceDroneCrash
	sourceRam
	sourceNuke
)

func (s killSource) breaksPlasmaOnly() bool {
	switch s {
	case sourceSpread, sourceBeam, sourceDroneFire:
		return true
	}
	return false
}

// bulletSource attributes a ship bullet to the weapon that fired it, so
// shots still in flight after a weapon switch keep their origin.
func bulletSource(b *Entity) killSource {
	if b.Weapon == WeaponSpread {
		return sourceSpread
	}
	return sourcePlasma
}

// resolveCollisions runs all per-tick overlap checks. Order matters:
// friendly fire lands before enemies get to touch the ship, so a kill
// and a ram on the same tick resolves in the player's favor.
func (g *Game) resolveCollisions() {
	g.droneBulletsVsTargets()
	g.shipBulletsVsEnemies()
	g.beamVsTargets()
	g.shipBulletsVsBoss()
	g.bossBulletsVsShip()
	g.dronesVsEnemies()
	g.shipVsEnemies()
	g.shipVsPickups()
}

func (g *Game) droneBulletsVsTargets() {
	g.store.Each(KindBullet, func(b *Entity) bool {
		if b.Owner != OwnerDrone || !b.Alive() {
			return true
		}
		hit := false
		g.store.Each(KindEnemy, func(e *Entity) bool {
			if !b.Bounds().Intersects(e.Bounds()) {
				return true
			}
			g.store.Remove(b.ID)
			g.stats.ShotsHit++
			g.damageEnemy(e, b.Damage, sourceDroneFire)
			hit = true
			return false
		})
		if hit {
			return true
		}
		if boss := g.store.First(KindBoss); boss != nil {
			if b.Bounds().Intersects(boss.Bounds()) {
				g.store.Remove(b.ID)
				g.stats.ShotsHit++
				g.damageBoss(boss, b.Damage, sourceDroneFire)
			}
		}
		return true
	})
}

func (g *Game) shipBulletsVsEnemies() {
	g.store.Each(KindBullet, func(b *Entity) bool {
		if b.Owner != OwnerShip || !b.Alive() {
			return true
		}
		src := bulletSource(b)
		g.store.Each(KindEnemy, func(e *Entity) bool {
			if !b.Bounds().Intersects(e.Bounds()) {
				return true
			}
			g.store.Remove(b.ID)
			g.stats.ShotsHit++
			g.damageEnemy(e, b.Damage, src)
			return false
		})
		return true
	})
}

// beamVsTargets applies beam damage to every intersected target. The
// beam only burns while lit: flicker gaps and shutdown deal nothing.
func (g *Game) beamVsTargets() {
	if g.ship.Weapon != WeaponBeam || !g.beam.Firing() || !g.beam.Visible() {
		return
	}
	nose := g.ship.NoseX().ToCell()
	for _, seg := range g.beam.Segments() {
		if seg.Length <= 0 {
			continue
		}
		row := g.ship.Y.ToCell() + seg.RowOffset
		beamRect := core.Rect{X: nose, Y: row, W: seg.Length, H: 1}
		damage := seg.Length * g.beam.Tuning.DamagePerCell

		g.store.Each(KindEnemy, func(e *Entity) bool {
			if beamRect.Intersects(e.Bounds()) {
				g.damageEnemy(e, damage, sourceBeam)
			}
			return true
		})
		if boss := g.store.First(KindBoss); boss != nil {
			if beamRect.Intersects(boss.Bounds()) {
				g.damageBoss(boss, damage, sourceBeam)
			}
		}
	}
}

func (g *Game) shipBulletsVsBoss() {
	boss := g.store.First(KindBoss)
	if boss == nil {
		return
	}
	g.store.Each(KindBullet, func(b *Entity) bool {
		if b.Owner != OwnerShip || !b.Alive() || !boss.Alive() {
			return true
		}
		if b.Bounds().Intersects(boss.Bounds()) {
			g.store.Remove(b.ID)
			g.stats.ShotsHit++
			g.damageBoss(boss, b.Damage, bulletSource(b))
		}
		return true
	})
}

func (g *Game) bossBulletsVsShip() {
	shipRect := g.ship.Bounds()
	g.store.Each(KindBullet, func(b *Entity) bool {
		if b.Owner != OwnerBoss || !b.Alive() {
			return true
		}
		if !b.Bounds().Intersects(shipRect) {
			return true
		}
		g.store.Remove(b.ID)
		g.spawnDebris(b.X, b.Y, false)
		if g.powerups.HasEffect(EffectShield) {
			return true
		}
		g.stats.DamageTaken++
		g.ship.Flash = 6
		g.cues.Play(CueDamage)
		if g.ship.Hurt(1) {
			g.endRun(core.CauseHealthExhausted)
		}
		return true
	})
}

// dronesVsEnemies: a drone touching an enemy destroys both, with full
// score credit and a drop roll for the enemy.
func (g *Game) dronesVsEnemies() {
	g.store.Each(KindDrone, func(d *Entity) bool {
		if !d.Alive() {
			return true
		}
		g.store.Each(KindEnemy, func(e *Entity) bool {
			if !d.Bounds().Intersects(e.Bounds()) {
				return true
			}
			g.store.Remove(d.ID)
			g.spawnDebris(d.CenterX(), d.CenterY(), false)
			g.killEnemy(e, sourceDroneCrash)
			return false
		})
		return true
	})
}

// shipVsEnemies: ramming kills the enemy with full credit but costs a
// health point unless shielded.
func (g *Game) shipVsEnemies() {
	shipRect := g.ship.Bounds()
	g.store.Each(KindEnemy, func(e *Entity) bool {
		if !e.Alive() || !shipRect.Intersects(e.Bounds()) {
			return true
		}
		g.killEnemy(e, sourceRam)
		if g.powerups.HasEffect(EffectShield) {
			return true
		}
		g.stats.DamageTaken++
		g.ship.Flash = 6
		g.cues.Play(CueDamage)
		if g.ship.Hurt(1) {
			g.endRun(core.CauseHealthExhausted)
		}
		return true
	})
}

// shipVsPickups collects drifting power-ups within the grab radius.
func (g *Game) shipVsPickups() {
	cx := g.ship.X.Add(ToFixed(ShipW / 2))
	cy := g.ship.CenterY()
	g.store.Each(KindPickup, func(p *Entity) bool {
		dx := cx.Sub(p.CenterX()).Abs()
		dy := cy.Sub(p.CenterY()).Abs()
		if dx >= ToFixed(3) || dy >= ToFixed(2) {
			return true
		}
		g.store.Remove(p.ID)
		g.score += 10
		g.cues.Play(CuePowerup)
		g.applyPickup(p.Pickup)
		return true
	})
}

// applyPickup resolves a collected power-up.
func (g *Game) applyPickup(t PickupType) {
	switch t {
	case PickupRapidFire:
		g.powerups.AddEffect(EffectRapidFire, g.tickCount, g.powerups.Tuning.RapidTicks)
	case PickupShield:
		g.powerups.AddEffect(EffectShield, g.tickCount, g.powerups.Tuning.ShieldTicks)
	case PickupHealth:
		g.ship.Heal(1)
	case PickupSpread:
		g.ship.Unlock(WeaponSpread)
	case PickupBeam:
		g.ship.Unlock(WeaponBeam)
	case PickupDrone:
		g.spawnDroneWing()
	case PickupNuke:
		g.detonateNuke()
	}
}

// detonateNuke wipes the field with full kill credit, then charges one
// health point once the effect window closes.
func (g *Game) detonateNuke() {
	g.stats.NukesUsed++
	g.cues.Play(CueNuke)

	g.store.Each(KindEnemy, func(e *Entity) bool {
		g.killEnemy(e, sourceNuke)
		return true
	})
	if boss := g.store.First(KindBoss); boss != nil && boss.Alive() {
		g.defeatBoss(boss, sourceNuke)
	}

	g.nukeTimer = 20
	g.nukePending = true
}

// damageEnemy applies damage, flashing survivors and killing the rest.
func (g *Game) damageEnemy(e *Entity, damage int, src killSource) {
	e.HP -= damage
	if e.HP > 0 {
		e.Flash = 4
		g.cues.Play(CueBossHit)
		return
	}
	g.killEnemy(e, src)
}

// killEnemy removes the enemy with full credit: score, kill count, a
// drop roll, and an explosion.
func (g *Game) killEnemy(e *Entity, src killSource) {
	if !e.Alive() {
		return
	}
	g.store.Remove(e.ID)
	g.score += e.Points
	g.kills++
	if src.breaksPlasmaOnly() {
		g.stats.PlasmaOnly = false
	}
	g.spawnDebris(e.CenterX(), e.CenterY(), true)
	g.cues.Play(CueExplosion)
	g.rollDrop(e.CenterX(), e.CenterY())
}

// rollDrop consults the power-up manager and spawns a pickup on success.
func (g *Game) rollDrop(x, y Fixed) {
	t, ok := g.powerups.Roll(DropContext{
		Score:          g.score,
		SpreadUnlocked: g.ship.Unlocked[WeaponSpread],
		BeamUnlocked:   g.ship.Unlocked[WeaponBeam],
		BossesDefeated: g.bossesDefeated,
	})
	if !ok {
		return
	}
	g.store.Spawn(g.powerups.NewPickup(t, x, y))
}

// damageBoss applies damage to the boss, defeating it at zero.
func (g *Game) damageBoss(boss *Entity, damage int, src killSource) {
	boss.HP -= damage
	if boss.HP > 0 {
		boss.Flash = 4
		g.cues.Play(CueBossHit)
		return
	}
	g.defeatBoss(boss, src)
}

// defeatBoss settles a boss kill: score, counters, the guaranteed drop
// spread, and the next wave threshold.
func (g *Game) defeatBoss(boss *Entity, src killSource) {
	if !boss.Alive() {
		return
	}
	g.store.Remove(boss.ID)
	g.score += boss.Points
	g.kills++
	g.bossesDefeated++
	if src.breaksPlasmaOnly() {
		g.stats.PlasmaOnly = false
	}
	for i := 0; i < 8; i++ {
		g.spawnDebris(
			boss.X.Add(g.rng.Fixed(-2*Scale, 2*Scale)),
			boss.Y.Add(g.rng.Fixed(-2*Scale, 2*Scale)), true)
	}
	g.cues.Play(CueExplosion)

	// A defeated boss always pays out three pickups near the wall side.
	dropX := ToFixed(g.runtime.ScreenW - 10)
	for i := 0; i < 3; i++ {
		t := g.powerups.RollForced(DropContext{
			Score:          g.score,
			SpreadUnlocked: g.ship.Unlocked[WeaponSpread],
			BeamUnlocked:   g.ship.Unlocked[WeaponBeam],
			BossesDefeated: g.bossesDefeated,
		})
		y := ToFixed(g.rng.Range(hudRows+1, g.runtime.ScreenH-3))
		g.store.Spawn(g.powerups.NewPickup(t, dropX, y))
	}

	g.director.BossDefeated()
}
