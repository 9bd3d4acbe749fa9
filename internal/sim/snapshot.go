package sim

import "github.com/vovakirdan/babaam/internal/core"

// entityInts is the flattened width of one entity record.
const entityInts = 26

// Snapshot contains the complete game state for replay and save support.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	State string
	Cause string

	Score          int
	Kills          int
	BossesDefeated int
	NukeTimer      int
	NukePending    int

	// Ship state
	ShipX, ShipY   int
	ShipVX, ShipVY int
	Health         int
	Weapon         int
	Unlocked       []int
	FireCooldown   int

	// Beam state
	BeamPhase   int
	BeamMain    int
	BeamTop     int
	BeamBottom  int
	BeamCharge  int
	BeamDecay   int
	BeamCool    int

	// Spawn director state
	SpawnInterval int
	NextBoss      int
	BossNum       int

	// Run statistics
	ShotsFired  int
	ShotsHit    int
	Breaches    int
	DamageTaken int
	NukesUsed   int
	PlasmaOnly  int

	// Effect state (each effect is 2 ints: Type, UntilTick)
	EffectCount int
	EffectData  []int

	// Entity state, flattened to entityInts ints per record
	EntityCount int
	EntityData  []int
	NextID      uint64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	unlocked := make([]int, weaponCount)
	for i, u := range g.ship.Unlocked {
		if u {
			unlocked[i] = 1
		}
	}

	effectData := make([]int, len(g.powerups.Effects)*2)
	for i, effect := range g.powerups.Effects {
		idx := i * 2
		effectData[idx] = int(effect.Type)
		effectData[idx+1] = effect.UntilTick
	}

	entityData := make([]int, 0, g.store.Len()*entityInts)
	g.store.Each(KindNone, func(e *Entity) bool {
		entityData = append(entityData,
			int(e.Kind), int(e.ID), //#nosec G115 -- ids fit in int
			int(e.X), int(e.Y), int(e.VX), int(e.VY),
			e.W, e.H, e.HP, e.MaxHP, e.Points,
			int(e.Glyph), int(e.Color), e.Flash,
			int(e.Enemy), e.Dir, int(e.Pickup),
			int(e.Owner), int(e.Weapon), e.Damage,
			e.TTL, e.FireCooldown, int(e.TargetID), //#nosec G115 -- ids fit in int
			e.OrbitAngle, e.OscPhase, e.FireTimer)
		return true
	})

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State: g.state,
		Cause: string(g.cause),

		Score:          g.score,
		Kills:          g.kills,
		BossesDefeated: g.bossesDefeated,
		NukeTimer:      g.nukeTimer,
		NukePending:    boolInt(g.nukePending),

		ShipX:        int(g.ship.X),
		ShipY:        int(g.ship.Y),
		ShipVX:       int(g.ship.VX),
		ShipVY:       int(g.ship.VY),
		Health:       g.ship.Health,
		Weapon:       int(g.ship.Weapon),
		Unlocked:     unlocked,
		FireCooldown: g.ship.FireCooldown,

		BeamPhase:  int(g.beam.Phase),
		BeamMain:   g.beam.MainLen,
		BeamTop:    g.beam.TopLen,
		BeamBottom: g.beam.BottomLen,
		BeamCharge: g.beam.Charge,
		BeamDecay:  g.beam.Decay,
		BeamCool:   g.beam.Cool,

		SpawnInterval: g.director.Interval,
		NextBoss:      g.director.NextBoss,
		BossNum:       g.director.BossNum,

		ShotsFired:  g.stats.ShotsFired,
		ShotsHit:    g.stats.ShotsHit,
		Breaches:    g.stats.Breaches,
		DamageTaken: g.stats.DamageTaken,
		NukesUsed:   g.stats.NukesUsed,
		PlasmaOnly:  boolInt(g.stats.PlasmaOnly),

		EffectCount: len(g.powerups.Effects),
		EffectData:  effectData,

		EntityCount: len(entityData) / entityInts,
		EntityData:  entityData,
		NextID:      uint64(g.store.nextID),

		RNGState: g.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.cause = core.OverCause(snap.Cause)

	g.score = snap.Score
	g.kills = snap.Kills
	g.bossesDefeated = snap.BossesDefeated
	g.nukeTimer = snap.NukeTimer
	g.nukePending = snap.NukePending == 1

	g.ship.X = Fixed(snap.ShipX)
	g.ship.Y = Fixed(snap.ShipY)
	g.ship.VX = Fixed(snap.ShipVX)
	g.ship.VY = Fixed(snap.ShipVY)
	g.ship.Health = snap.Health
	g.ship.Weapon = WeaponType(snap.Weapon) //#nosec G115 -- enum range
	for i := range g.ship.Unlocked {
		g.ship.Unlocked[i] = i < len(snap.Unlocked) && snap.Unlocked[i] == 1
	}
	g.ship.FireCooldown = snap.FireCooldown

	g.beam.Phase = BeamPhase(snap.BeamPhase) //#nosec G115 -- enum range
	g.beam.MainLen = snap.BeamMain
	g.beam.TopLen = snap.BeamTop
	g.beam.BottomLen = snap.BeamBottom
	g.beam.Charge = snap.BeamCharge
	g.beam.Decay = snap.BeamDecay
	g.beam.Cool = snap.BeamCool

	g.director.Interval = snap.SpawnInterval
	g.director.NextBoss = snap.NextBoss
	g.director.BossNum = snap.BossNum

	g.stats.ShotsFired = snap.ShotsFired
	g.stats.ShotsHit = snap.ShotsHit
	g.stats.Breaches = snap.Breaches
	g.stats.DamageTaken = snap.DamageTaken
	g.stats.NukesUsed = snap.NukesUsed
	g.stats.PlasmaOnly = snap.PlasmaOnly == 1

	g.powerups.Effects = make([]*Effect, 0, snap.EffectCount)
	for i := range snap.EffectCount {
		idx := i * 2
		if idx+1 < len(snap.EffectData) {
			g.powerups.Effects = append(g.powerups.Effects, &Effect{
				Type:      EffectType(snap.EffectData[idx]), //#nosec G115 -- enum range
				UntilTick: snap.EffectData[idx+1],
			})
		}
	}

	g.store.Clear()
	for i := range snap.EntityCount {
		idx := i * entityInts
		if idx+entityInts > len(snap.EntityData) {
			break
		}
		d := snap.EntityData[idx : idx+entityInts]
		e := &Entity{
			ID:           ID(d[1]), //#nosec G115 -- ids fit in int
			Kind:         Kind(d[0]), //#nosec G115 -- enum range
			X:            Fixed(d[2]),
			Y:            Fixed(d[3]),
			VX:           Fixed(d[4]),
			VY:           Fixed(d[5]),
			W:            d[6],
			H:            d[7],
			HP:           d[8],
			MaxHP:        d[9],
			Points:       d[10],
			Glyph:        rune(d[11]),
			Color:        core.Color(d[12]), //#nosec G115 -- enum range
			Flash:        d[13],
			Enemy:        EnemyType(d[14]), //#nosec G115 -- enum range
			Dir:          d[15],
			Pickup:       PickupType(d[16]), //#nosec G115 -- enum range
			Owner:        Owner(d[17]),      //#nosec G115 -- enum range
			Weapon:       WeaponType(d[18]), //#nosec G115 -- enum range
			Damage:       d[19],
			TTL:          d[20],
			FireCooldown: d[21],
			TargetID:     ID(d[22]), //#nosec G115 -- ids fit in int
			OrbitAngle:   d[23],
			OscPhase:     d[24],
			FireTimer:    d[25],
		}
		g.store.restore(e)
	}
	g.store.nextID = ID(snap.NextID)

	g.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossesDefeated) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Weapon)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BeamPhase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BeamMain)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BeamTop)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BeamBottom)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)    //#nosec G115 -- hash computation

	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.NextID
	h = h*31 + snap.RNGState

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
