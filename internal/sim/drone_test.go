package sim

import "testing"

func TestDroneExpiresAfterLifetime(t *testing.T) {
	g := newTestGame(1)
	tuning := g.droneTuning()
	d := newDrone(ToFixed(20), ToFixed(10), 0, tuning)
	g.store.Spawn(d)

	expired := false
	for i := 0; i < tuning.Lifetime+1; i++ {
		_, exp := updateDrone(d, g.store, g.ship, g.rng, tuning,
			ToFixed(3), ToFixed(78), ToFixed(1), ToFixed(22))
		if exp {
			expired = true
			if i != tuning.Lifetime-1 {
				t.Errorf("drone expired at tick %d, want %d", i+1, tuning.Lifetime)
			}
			break
		}
	}
	if !expired {
		t.Error("drone never expired")
	}
}

func TestDroneFiresAtTargetInRange(t *testing.T) {
	g := newTestGame(1)
	tuning := g.droneTuning()
	d := newDrone(ToFixed(20), ToFixed(10), 0, tuning)
	g.store.Spawn(d)
	g.store.Spawn(newEnemy(EnemyNormal, ToFixed(30), ToFixed(10), 1))

	var bullet *Entity
	for i := 0; i < 5 && bullet == nil; i++ {
		bullet, _ = updateDrone(d, g.store, g.ship, g.rng, tuning,
			ToFixed(3), ToFixed(78), ToFixed(1), ToFixed(22))
	}
	if bullet == nil {
		t.Fatal("drone never fired at a target in range")
	}
	if bullet.Owner != OwnerDrone {
		t.Errorf("bullet owner = %v, want drone", bullet.Owner)
	}
	if bullet.VX <= 0 {
		t.Errorf("bullet vx = %v, want positive toward the enemy", bullet.VX)
	}
	if d.FireCooldown < tuning.CooldownMin || d.FireCooldown > tuning.CooldownMax {
		t.Errorf("refire cooldown = %d, want within [%d, %d]",
			d.FireCooldown, tuning.CooldownMin, tuning.CooldownMax)
	}
}

func TestDroneHoldsFireOutOfRange(t *testing.T) {
	g := newTestGame(1)
	tuning := g.droneTuning()
	d := newDrone(ToFixed(5), ToFixed(10), 0, tuning)
	g.store.Spawn(d)
	g.store.Spawn(newEnemy(EnemyNormal, ToFixed(70), ToFixed(10), 1))

	bullet, _ := updateDrone(d, g.store, g.ship, g.rng, tuning,
		ToFixed(3), ToFixed(78), ToFixed(1), ToFixed(22))
	if bullet != nil {
		t.Error("drone fired at a target beyond its range")
	}
}

func TestDroneKeepsStandoffDistance(t *testing.T) {
	g := newTestGame(1)
	tuning := g.droneTuning()
	d := newDrone(ToFixed(10), ToFixed(10), 99, tuning)
	g.store.Spawn(d)
	e := newEnemy(EnemyNormal, ToFixed(40), ToFixed(10), 1)
	e.VX = 0
	g.store.Spawn(e)

	for i := 0; i < 200; i++ {
		updateDrone(d, g.store, g.ship, g.rng, tuning,
			ToFixed(3), ToFixed(78), ToFixed(1), ToFixed(22))
		d.FireCooldown = 99 // Keep it from firing so only motion is tested
	}
	dist := Dist(e.CenterX().Sub(d.X), e.CenterY().Sub(d.Y))
	if dist < ToFixed(tuning.SafeDistance-1) {
		t.Errorf("drone closed to %v, want standoff near %d cells", dist, tuning.SafeDistance)
	}
}

func TestDroneOrbitsShipWhenIdle(t *testing.T) {
	g := newTestGame(1)
	tuning := g.droneTuning()
	d := newDrone(ToFixed(20), ToFixed(10), 99, tuning)
	g.store.Spawn(d)

	// Empty field: the drone circles the ship. 300 ticks wrap the orbit
	// angle several times over.
	for i := 0; i < 300; i++ {
		bullet, expired := updateDrone(d, g.store, g.ship, g.rng, tuning,
			ToFixed(3), ToFixed(78), ToFixed(1), ToFixed(22))
		d.TTL = tuning.Lifetime
		if bullet != nil || expired {
			t.Fatal("idle drone fired or expired")
		}
		if d.OrbitAngle < 0 || d.OrbitAngle > fullCircleMilli {
			t.Fatalf("orbit angle %d outside [0, %d] at tick %d", d.OrbitAngle, fullCircleMilli, i)
		}
	}

	cx := g.ship.X.Add(ToFixed(ShipW).Div(2))
	dist := Dist(cx.Sub(d.X), g.ship.CenterY().Sub(d.Y))
	if dist > ToFixed(tuning.OrbitRadius+3) {
		t.Errorf("idle drone at distance %v, want near orbit radius %d", dist, tuning.OrbitRadius)
	}
}

func TestDroneWingCapped(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 5; i++ {
		g.spawnDroneWing()
	}
	if got := g.store.Count(KindDrone); got != g.cfg.Drones.MaxActive {
		t.Errorf("drone count = %d, want cap %d", got, g.cfg.Drones.MaxActive)
	}
}

func TestDroneBulletKillCreditsButBreaksPlasmaOnly(t *testing.T) {
	g := newTestGame(1)
	e := newEnemy(EnemyNormal, ToFixed(40), ToFixed(10), 1)
	g.store.Spawn(e)
	b := &Entity{
		Kind: KindBullet, Owner: OwnerDrone,
		X: ToFixed(40), Y: ToFixed(10), W: 1, H: 1, Damage: 1 * Scale,
	}
	g.store.Spawn(b)

	g.droneBulletsVsTargets()

	if e.Alive() {
		t.Error("enemy survived a lethal drone bullet")
	}
	if g.kills != 1 {
		t.Errorf("kills = %d, want 1", g.kills)
	}
	if g.stats.PlasmaOnly {
		t.Error("drone bullet kill should break the plasma-only run")
	}
}
