package sim

import "github.com/vovakirdan/babaam/internal/core"

// WeaponType identifies the player's selectable weapons.
type WeaponType uint8

const (
	WeaponNormal WeaponType = iota
	WeaponSpread
	WeaponBeam
	weaponCount
)

// String returns the display name of the weapon.
func (w WeaponType) String() string {
	switch w {
	case WeaponSpread:
		return "SPREAD"
	case WeaponBeam:
		return "BEAM"
	default:
		return "PLASMA"
	}
}

// Ship sprite dimensions. The sprite is three rows tall; the cannon sits
// on the middle row, the spread wings on the top and bottom rows.
const (
	ShipW = 3
	ShipH = 3
)

var (
	shipSprite       = []string{"╱█►", "██►", "╲█►"}
	shipSpriteShield = []string{"╱█▶", "██▶", "╲█▶"}
)

// Ship is the player's vessel. Position is the top-left of the sprite.
type Ship struct {
	X, Y   Fixed
	VX, VY Fixed
	Speed  Fixed

	Health    int
	MaxHealth int

	Weapon       WeaponType
	Unlocked     [weaponCount]bool
	FireCooldown int

	Flash int // Damage flash ticks remaining
	Spark int // Blocked-beam spark ticks remaining

	prevX, prevY  Fixed
	wasStationary bool
	atRightBound  bool
}

// NewShip creates a ship at the given position with the given health.
func NewShip(x, y Fixed, speed Fixed, health, maxHealth int) *Ship {
	s := &Ship{
		X:         x,
		Y:         y,
		Speed:     speed,
		Health:    health,
		MaxHealth: maxHealth,
		Weapon:    WeaponNormal,
		prevX:     x,
		prevY:     y,
	}
	s.Unlocked[WeaponNormal] = true
	return s
}

// Bounds returns the hull rectangle in cell coordinates.
func (s *Ship) Bounds() core.Rect {
	return core.Rect{X: s.X.ToCell(), Y: s.Y.ToCell(), W: ShipW, H: ShipH}
}

// Select equips the weapon if it is unlocked. Locked selections are no-ops.
func (s *Ship) Select(w WeaponType) {
	if w < weaponCount && s.Unlocked[w] {
		s.Weapon = w
	}
}

// Unlock makes the weapon selectable and equips it.
func (s *Ship) Unlock(w WeaponType) {
	if w >= weaponCount {
		return
	}
	s.Unlocked[w] = true
	s.Weapon = w
}

// Move applies the current velocity and clamps to the movement region.
// Moved reports whether the position actually changed, which is what
// interrupts beam charging: pressing into a boundary with no displacement
// does not count as movement.
func (s *Ship) Move(minX, maxX, minY, maxY Fixed) (moved bool) {
	s.X = s.X.Add(s.VX)
	s.Y = s.Y.Add(s.VY)

	s.atRightBound = false
	if s.X < minX {
		s.X = minX
	}
	if s.X > maxX {
		s.X = maxX
		s.atRightBound = true
	}
	s.Y = ClampFixed(s.Y, minY, maxY)

	moved = s.X != s.prevX || s.Y != s.prevY
	s.wasStationary = !moved
	s.prevX = s.X
	s.prevY = s.Y
	return moved
}

// Stationary reports whether the ship held position last tick.
func (s *Ship) Stationary() bool {
	return s.wasStationary
}

// AtRightBound reports whether the ship is pressed against the right
// movement limit.
func (s *Ship) AtRightBound() bool {
	return s.atRightBound
}

// CenterY returns the cannon row (middle of the sprite) in fixed-point.
func (s *Ship) CenterY() Fixed {
	return s.Y.Add(ToFixed(1))
}

// NoseX returns the muzzle column in fixed-point.
func (s *Ship) NoseX() Fixed {
	return s.X.Add(ToFixed(ShipW))
}

// Hurt applies damage to the ship, clamped at zero.
// Returns true when health is exhausted.
func (s *Ship) Hurt(n int) bool {
	s.Health -= n
	if s.Health < 0 {
		s.Health = 0
	}
	s.Flash = 6
	return s.Health == 0
}

// Heal adds health up to the maximum. Overflow pickups are consumed with
// no effect on health.
func (s *Ship) Heal(n int) {
	s.Health += n
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}
