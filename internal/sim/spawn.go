package sim

// SpawnTuning configures the spawn director.
type SpawnTuning struct {
	InitialInterval int // Ticks between spawns at run start
	RampEvery       int // Interval shrinks by one every this many ticks
	MinInterval     int // Interval floor
	FastScore       int // Score unlocking Fast enemies
	ZigzagScore     int // Score unlocking Zigzag enemies
	TankScore       int // Score unlocking Tank enemies
	BossFirstKills  int // Kill count triggering the first boss
	BossEveryKills  int // Additional kills per subsequent boss
}

// DefaultSpawnTuning returns the stock spawn pressure curve.
func DefaultSpawnTuning() SpawnTuning {
	return SpawnTuning{
		InitialInterval: 30,
		RampEvery:       300,
		MinInterval:     10,
		FastScore:       200,
		ZigzagScore:     500,
		TankScore:       1000,
		BossFirstKills:  30,
		BossEveryKills:  50,
	}
}

// SpawnDirector decides when enemies appear, which class spawns, and when
// a boss wave is due.
type SpawnDirector struct {
	Tuning   SpawnTuning
	Interval int // Current spawn interval in ticks
	NextBoss int // Kill count that triggers the next boss
	BossNum  int // 1-based number of the next boss
	rng      *SimpleRNG
}

// NewSpawnDirector creates a director sharing the simulation RNG.
func NewSpawnDirector(tuning SpawnTuning, rng *SimpleRNG) *SpawnDirector {
	return &SpawnDirector{
		Tuning:   tuning,
		Interval: tuning.InitialInterval,
		NextBoss: tuning.BossFirstKills,
		BossNum:  1,
		rng:      rng,
	}
}

// Tick ramps the pressure curve and reports whether a regular enemy
// should spawn this tick. reduction is extra interval pressure from the
// difficulty level; the floor always holds.
func (d *SpawnDirector) Tick(tick, reduction int) bool {
	if tick%d.Tuning.RampEvery == 0 && d.Interval > d.Tuning.MinInterval {
		d.Interval--
	}
	interval := d.Interval - reduction
	if interval < d.Tuning.MinInterval {
		interval = d.Tuning.MinInterval
	}
	return tick%interval == 0
}

// RollType picks the enemy class for a spawn. Tougher classes enter the
// mix as the score passes the unlock gates.
func (d *SpawnDirector) RollType(score int) EnemyType {
	roll := d.rng.Intn(100)
	switch {
	case score >= d.Tuning.TankScore:
		switch {
		case roll < 30:
			return EnemyFast
		case roll < 50:
			return EnemyTank
		case roll < 70:
			return EnemyZigzag
		default:
			return EnemyNormal
		}
	case score >= d.Tuning.ZigzagScore:
		switch {
		case roll < 30:
			return EnemyFast
		case roll < 50:
			return EnemyZigzag
		default:
			return EnemyNormal
		}
	case score >= d.Tuning.FastScore:
		if roll < 30 {
			return EnemyFast
		}
		return EnemyNormal
	default:
		return EnemyNormal
	}
}

// BossDue reports whether the kill count has reached the next boss gate.
func (d *SpawnDirector) BossDue(kills int) bool {
	return kills >= d.NextBoss
}

// BossDefeated records a boss kill: the next boss needs 50 more kills and
// gets the next tier of stats.
func (d *SpawnDirector) BossDefeated() {
	d.BossNum++
	d.NextBoss += d.Tuning.BossEveryKills
}
