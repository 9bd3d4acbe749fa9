package sim

import "testing"

func TestSpawnIntervalRampsDown(t *testing.T) {
	d := NewSpawnDirector(DefaultSpawnTuning(), NewSimpleRNG(1))
	d.Tick(1, 0)
	if d.Interval != 30 {
		t.Errorf("interval at start = %d, want 30", d.Interval)
	}
	for tick := 2; tick <= 300; tick++ {
		d.Tick(tick, 0)
	}
	if d.Interval != 29 {
		t.Errorf("interval at tick 300 = %d, want 29", d.Interval)
	}
	for tick := 301; tick <= 3000; tick++ {
		d.Tick(tick, 0)
	}
	if d.Interval != 20 {
		t.Errorf("interval at tick 3000 = %d, want 20", d.Interval)
	}
	// The floor holds no matter how long the run goes.
	for tick := 3001; tick <= 12000; tick++ {
		d.Tick(tick, 0)
	}
	if d.Interval != 10 {
		t.Errorf("interval floor = %d, want 10", d.Interval)
	}
}

func TestSpawnIntervalDifficultyReduction(t *testing.T) {
	// A reduction of 15 halves the effective cadence: spawns land on
	// multiples of 15 while the base interval stays untouched, since the
	// reduction is recomputed from the difficulty level every tick.
	d := NewSpawnDirector(DefaultSpawnTuning(), NewSimpleRNG(1))
	spawns := 0
	for tick := 1; tick <= 60; tick++ {
		if d.Tick(tick, 15) {
			spawns++
			if tick%15 != 0 {
				t.Errorf("spawn at tick %d, want multiples of 15", tick)
			}
		}
	}
	if spawns != 4 {
		t.Errorf("spawns over 60 ticks with reduction 15 = %d, want 4", spawns)
	}
	if d.Interval != 30 {
		t.Errorf("base interval = %d after reduced ticks, want 30", d.Interval)
	}

	// An oversized reduction clamps to the floor instead of spawning
	// every tick.
	d = NewSpawnDirector(DefaultSpawnTuning(), NewSimpleRNG(1))
	spawns = 0
	for tick := 1; tick <= 60; tick++ {
		if d.Tick(tick, 100) {
			spawns++
			if tick%d.Tuning.MinInterval != 0 {
				t.Errorf("spawn at tick %d, want multiples of the floor %d",
					tick, d.Tuning.MinInterval)
			}
		}
	}
	if spawns != 6 {
		t.Errorf("spawns over 60 ticks at the floor = %d, want 6", spawns)
	}
}

func TestRollTypeScoreGates(t *testing.T) {
	// Below every threshold only Normal spawns regardless of the roll.
	d := NewSpawnDirector(DefaultSpawnTuning(), NewSimpleRNG(42))
	for i := 0; i < 200; i++ {
		if got := d.RollType(0); got != EnemyNormal {
			t.Fatalf("RollType(0) = %v, want normal", got)
		}
	}

	// At the fast threshold the pool opens up but never includes
	// zigzag or tank.
	sawFast := false
	for i := 0; i < 200; i++ {
		got := d.RollType(200)
		if got == EnemyZigzag || got == EnemyTank {
			t.Fatalf("RollType(200) = %v, locked type spawned", got)
		}
		if got == EnemyFast {
			sawFast = true
		}
	}
	if !sawFast {
		t.Error("fast enemies never spawned at their unlock score")
	}

	// Past the tank threshold everything can spawn.
	seen := map[EnemyType]bool{}
	for i := 0; i < 500; i++ {
		seen[d.RollType(1000)] = true
	}
	for _, want := range []EnemyType{EnemyNormal, EnemyFast, EnemyZigzag, EnemyTank} {
		if !seen[want] {
			t.Errorf("type %v never spawned at score 1000", want)
		}
	}
}

func TestBossCadence(t *testing.T) {
	d := NewSpawnDirector(DefaultSpawnTuning(), NewSimpleRNG(1))
	if d.BossDue(29) {
		t.Error("boss due at 29 kills")
	}
	if !d.BossDue(30) {
		t.Error("boss not due at 30 kills")
	}
	d.BossDefeated()
	if d.BossNum != 2 {
		t.Errorf("boss number = %d, want 2", d.BossNum)
	}
	if d.BossDue(79) {
		t.Error("second boss due at 79 kills")
	}
	if !d.BossDue(80) {
		t.Error("second boss not due at 80 kills")
	}
	d.BossDefeated()
	if !d.BossDue(130) {
		t.Error("third boss not due at 130 kills")
	}
}

func TestEnemyStats(t *testing.T) {
	tests := []struct {
		typ    EnemyType
		hp     int
		points int
	}{
		{EnemyNormal, 1, 10},
		{EnemyFast, 1, 20},
		{EnemyZigzag, 3, 25},
		{EnemyTank, 10, 30},
	}
	for _, tt := range tests {
		st := tt.typ.Stats()
		if st.HP != tt.hp {
			t.Errorf("%v hp = %d, want %d", tt.typ, st.HP, tt.hp)
		}
		if st.Points != tt.points {
			t.Errorf("%v points = %d, want %d", tt.typ, st.Points, tt.points)
		}
	}
}

func TestZigzagBouncesInsideField(t *testing.T) {
	e := newEnemy(EnemyZigzag, ToFixed(40), ToFixed(3), -1)
	top, bottom := ToFixed(2), ToFixed(20)
	for i := 0; i < 500; i++ {
		moveEnemy(e, top, bottom)
		if e.Y < top || e.Y > bottom {
			t.Fatalf("zigzag left the field at tick %d: y = %v", i, e.Y)
		}
	}
}

func TestBossScaling(t *testing.T) {
	if got := bossHP(1); got != 55 {
		t.Errorf("bossHP(1) = %d, want 55", got)
	}
	if got := bossHP(2); got != 77 {
		t.Errorf("bossHP(2) = %d, want 77", got)
	}
	if got := bossPoints(1); got != 300 {
		t.Errorf("bossPoints(1) = %d, want 300", got)
	}
	if got := bossPoints(3); got != 500 {
		t.Errorf("bossPoints(3) = %d, want 500", got)
	}
}
