package sim

import "github.com/vovakirdan/babaam/internal/core"

// ID uniquely identifies an entity for its lifetime. IDs are never reused.
type ID uint64

// Kind classifies entities stored in the Store.
type Kind uint8

const (
	KindNone Kind = iota
	KindBullet
	KindEnemy
	KindBoss
	KindPickup
	KindDrone
	KindDebris
	kindCount
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindPickup:
		return "pickup"
	case KindDrone:
		return "drone"
	case KindDebris:
		return "debris"
	default:
		return "none"
	}
}

// Owner identifies who fired a projectile.
type Owner uint8

const (
	OwnerShip Owner = iota
	OwnerDrone
	OwnerBoss
)

// Entity is a single simulation object. Kind-specific behavior reads the
// fields relevant to that kind; unused fields stay zero.
type Entity struct {
	ID   ID
	Kind Kind

	X, Y   Fixed // Top-left corner of the bounding box
	VX, VY Fixed // Velocity per tick
	W, H   int   // Bounding box in cells

	HP     int // Remaining hit points in milli-HP (1 HP = 1000)
	MaxHP  int
	Points int // Score awarded on destruction

	Glyph rune
	Color core.Color
	Flash int // Hit-feedback flash ticks remaining

	// Enemies
	Enemy EnemyType
	Dir   int // Zigzag vertical direction, -1 or 1

	// Pickups
	Pickup PickupType

	// Projectiles
	Owner  Owner
	Weapon WeaponType // Ship bullets: the weapon that fired this shot
	Damage int        // Milli-HP dealt on hit

	// Drones and debris
	TTL          int // Remaining lifetime in ticks, 0 = unlimited
	FireCooldown int
	TargetID     ID
	OrbitAngle   int // Milliradians, drives the no-target orbit

	// Boss
	OscPhase  int // Tick counter driving vertical oscillation
	FireTimer int

	dead bool
}

// Bounds returns the entity's bounding box in cell coordinates.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X.ToCell(), e.Y.ToCell(), e.W, e.H)
}

// CenterX returns the horizontal center in fixed-point.
func (e *Entity) CenterX() Fixed {
	return e.X.Add(ToFixed(e.W).Div(2))
}

// CenterY returns the vertical center in fixed-point.
func (e *Entity) CenterY() Fixed {
	return e.Y.Add(ToFixed(e.H).Div(2))
}

// Alive reports whether the entity is still part of the simulation.
// Removed entities remain in the store until the end-of-tick flush.
func (e *Entity) Alive() bool {
	return !e.dead
}

// Store holds all live entities with insertion-order iteration, O(1)
// lookup by id, and removals deferred to the end of the tick so that
// systems running later in the same tick see a stable set.
type Store struct {
	nextID  ID
	order   []*Entity
	byID    map[ID]*Entity
	counts  [kindCount]int
	removed int
	cap     int
}

// NewStore creates a store with the given total entity cap.
// A cap of zero means unlimited.
func NewStore(cap int) *Store {
	return &Store{
		nextID: 1,
		byID:   make(map[ID]*Entity),
		cap:    cap,
	}
}

// Spawn inserts an entity, assigns it a fresh id, and returns the id.
// Returns 0 without inserting when the store is at capacity.
func (s *Store) Spawn(e *Entity) ID {
	if s.cap > 0 && s.Len() >= s.cap {
		return 0
	}
	e.ID = s.nextID
	s.nextID++
	e.dead = false
	s.order = append(s.order, e)
	s.byID[e.ID] = e
	s.counts[e.Kind]++
	return e.ID
}

// restore inserts an entity keeping the id it already carries. Used when
// applying a snapshot; the caller also restores nextID.
func (s *Store) restore(e *Entity) {
	e.dead = false
	s.order = append(s.order, e)
	s.byID[e.ID] = e
	s.counts[e.Kind]++
}

// Remove marks an entity for removal. The entity stops appearing in Each
// and Get immediately; storage is reclaimed at the next Flush.
func (s *Store) Remove(id ID) {
	e, ok := s.byID[id]
	if !ok || e.dead {
		return
	}
	e.dead = true
	delete(s.byID, id)
	s.counts[e.Kind]--
	s.removed++
}

// Get returns the live entity with the given id.
func (s *Store) Get(id ID) (*Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Each calls fn for every live entity of the given kind in insertion
// order. KindNone iterates all kinds. Iteration stops if fn returns false.
// Entities spawned during iteration are not visited.
func (s *Store) Each(kind Kind, fn func(*Entity) bool) {
	snapshot := s.order[:len(s.order)]
	for _, e := range snapshot {
		if e.dead {
			continue
		}
		if kind != KindNone && e.Kind != kind {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind Kind) int {
	if kind == KindNone {
		return s.Len()
	}
	return s.counts[kind]
}

// Len returns the total number of live entities.
func (s *Store) Len() int {
	return len(s.order) - s.removed
}

// First returns the first live entity of the given kind, or nil.
func (s *Store) First(kind Kind) *Entity {
	var found *Entity
	s.Each(kind, func(e *Entity) bool {
		found = e
		return false
	})
	return found
}

// Flush reclaims storage of removed entities. Call once per tick, after
// all systems have run.
func (s *Store) Flush() {
	if s.removed == 0 {
		return
	}
	live := s.order[:0]
	for _, e := range s.order {
		if !e.dead {
			live = append(live, e)
		}
	}
	// Drop references so reclaimed entities can be collected.
	for i := len(live); i < len(s.order); i++ {
		s.order[i] = nil
	}
	s.order = live
	s.removed = 0
}

// Clear removes all entities immediately.
func (s *Store) Clear() {
	s.order = s.order[:0]
	s.byID = make(map[ID]*Entity)
	s.counts = [kindCount]int{}
	s.removed = 0
}
