package sim

import (
	"math"

	"github.com/vovakirdan/babaam/internal/core"
)

// DroneTuning configures the escort drones.
type DroneTuning struct {
	PerPickup    int // Drones spawned per pickup
	MaxActive    int // Hard cap on simultaneous drones
	Lifetime     int // Lifespan in ticks
	Speed        int // Milli-cells per tick
	SafeDistance int // Standoff from the target in cells
	FireRange    int // Maximum firing distance in cells
	CooldownMin  int // Randomized refire window, inclusive
	CooldownMax  int
	OrbitRadius  int // Orbit radius around the ship when idle
}

// DefaultDroneTuning returns the stock drone parameters.
func DefaultDroneTuning() DroneTuning {
	return DroneTuning{
		PerPickup:    3,
		MaxActive:    9,
		Lifetime:     240,
		Speed:        400,
		SafeDistance: 8,
		FireRange:    30,
		CooldownMin:  7,
		CooldownMax:  9,
		OrbitRadius:  8,
	}
}

// fullCircleMilli is 2*pi in milliradians, the wrap point for OrbitAngle.
const fullCircleMilli = 6283

// Spawn offsets relative to the ship, with staggered initial cooldowns so
// a fresh wing does not fire in lockstep.
var droneOffsets = [3]struct {
	DX, DY   int
	Cooldown int
}{
	{DX: 12, DY: -8, Cooldown: 0},
	{DX: 15, DY: 0, Cooldown: 3},
	{DX: 12, DY: 8, Cooldown: 6},
}

// newDrone builds a drone entity.
func newDrone(x, y Fixed, cooldown int, t DroneTuning) *Entity {
	return &Entity{
		Kind:         KindDrone,
		X:            x,
		Y:            y,
		W:            1,
		H:            1,
		TTL:          t.Lifetime,
		FireCooldown: cooldown,
		Glyph:        '◆',
		Color:        core.ColorBrightCyan,
	}
}

// acquireTarget finds the nearest enemy or boss by center distance.
// Returns nil when the field is clear.
func acquireTarget(d *Entity, store *Store) *Entity {
	var nearest *Entity
	best := Fixed(math.MaxInt32)
	consider := func(e *Entity) bool {
		dist := Dist(e.CenterX().Sub(d.X), e.CenterY().Sub(d.Y))
		if dist < best {
			best = dist
			nearest = e
		}
		return true
	}
	store.Each(KindEnemy, consider)
	store.Each(KindBoss, consider)
	return nearest
}

// updateDrone runs one drone tick: lifetime, targeting, approach to the
// standoff distance, and firing. Returns the bullet fired this tick, if
// any. The drone is removed by the caller when expired is true.
func updateDrone(d *Entity, store *Store, ship *Ship, rng *SimpleRNG, t DroneTuning,
	minX, maxX, minY, maxY Fixed) (bullet *Entity, expired bool) {

	d.TTL--
	if d.TTL <= 0 {
		return nil, true
	}
	if d.FireCooldown > 0 {
		d.FireCooldown--
	}

	target := acquireTarget(d, store)
	if target != nil {
		d.TargetID = target.ID
		dx := target.CenterX().Sub(d.X)
		dy := target.CenterY().Sub(d.Y)
		dist := Dist(dx, dy)

		if dist > ToFixed(t.SafeDistance) {
			d.X = d.X.Add(Fixed(int64(dx) * int64(t.Speed) / int64(dist)))
			d.Y = d.Y.Add(Fixed(int64(dy) * int64(t.Speed) / int64(dist)))
			d.X = ClampFixed(d.X, minX, maxX)
			d.Y = ClampFixed(d.Y, minY, maxY)
		}

		if dist < ToFixed(t.FireRange) && d.FireCooldown == 0 && dist > 0 {
			speed := int64(2 * Scale)
			bullet = &Entity{
				Kind:   KindBullet,
				Owner:  OwnerDrone,
				X:      d.X,
				Y:      d.Y,
				VX:     Fixed(int64(dx) * speed / int64(dist)),
				VY:     Fixed(int64(dy) * speed / int64(dist)),
				W:      1,
				H:      1,
				Damage: 1 * Scale,
				Glyph:  '✦',
				Color:  core.ColorBrightYellow,
			}
			d.FireCooldown = rng.Range(t.CooldownMin, t.CooldownMax)
		}
		return bullet, false
	}

	// No target: orbit the ship.
	d.TargetID = 0
	d.OrbitAngle += 100
	if d.OrbitAngle > fullCircleMilli {
		d.OrbitAngle -= fullCircleMilli
	}
	angle := float64(d.OrbitAngle) / 1000
	cx := ship.X.Add(ToFixed(ShipW).Div(2))
	cy := ship.CenterY()
	tx := cx.Add(Fixed(math.Cos(angle) * float64(t.OrbitRadius) * Scale))
	ty := cy.Add(Fixed(math.Sin(angle) * float64(t.OrbitRadius) * Scale))

	dx := tx.Sub(d.X)
	dy := ty.Sub(d.Y)
	dist := Dist(dx, dy)
	if dist > Scale/2 {
		d.X = d.X.Add(Fixed(int64(dx) * int64(t.Speed) / int64(dist)))
		d.Y = d.Y.Add(Fixed(int64(dy) * int64(t.Speed) / int64(dist)))
	}
	d.X = ClampFixed(d.X, minX, maxX)
	d.Y = ClampFixed(d.Y, minY, maxY)
	return nil, false
}
