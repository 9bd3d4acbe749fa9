package sim

import "github.com/vovakirdan/babaam/internal/core"

// EnemyType distinguishes the hostile ship classes.
type EnemyType uint8

const (
	EnemyNormal EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyZigzag
	enemyTypeCount
)

// String returns the display name of the enemy type.
func (t EnemyType) String() string {
	switch t {
	case EnemyFast:
		return "Fast"
	case EnemyTank:
		return "Tank"
	case EnemyZigzag:
		return "Zigzag"
	default:
		return "Normal"
	}
}

// enemyStats holds the per-type tuning baked into the enemy classes.
type enemyStats struct {
	Speed  Fixed // Leftward cells per tick
	HP     int   // Whole hit points
	Points int
	W, H   int
	Sprite []string
	Color  core.Color
}

var enemyTable = [enemyTypeCount]enemyStats{
	EnemyNormal: {
		Speed:  300,
		HP:     1,
		Points: 10,
		W:      2, H: 2,
		Sprite: []string{"╔►", "╚►"},
		Color:  core.ColorRed,
	},
	EnemyFast: {
		Speed:  600,
		HP:     1,
		Points: 20,
		W:      3, H: 1,
		Sprite: []string{"══►"},
		Color:  core.ColorBrightYellow,
	},
	EnemyTank: {
		Speed:  200,
		HP:     10,
		Points: 30,
		W:      3, H: 2,
		Sprite: []string{"╔▓╗", "╚▓╝"},
		Color:  core.ColorMagenta,
	},
	EnemyZigzag: {
		Speed:  400,
		HP:     3,
		Points: 25,
		W:      2, H: 2,
		Sprite: []string{"╱►", "╲►"},
		Color:  core.ColorBrightGreen,
	},
}

// Stats returns the tuning for the enemy type.
func (t EnemyType) Stats() enemyStats {
	if t >= enemyTypeCount {
		return enemyTable[EnemyNormal]
	}
	return enemyTable[t]
}

// zigzagStep is the per-tick vertical drift of zigzag enemies.
const zigzagStep = Fixed(200)

// newEnemy builds an enemy entity of the given type at the spawn position.
func newEnemy(t EnemyType, x, y Fixed, dir int) *Entity {
	st := t.Stats()
	return &Entity{
		Kind:   KindEnemy,
		Enemy:  t,
		X:      x,
		Y:      y,
		VX:     -st.Speed,
		W:      st.W,
		H:      st.H,
		HP:     st.HP * Scale,
		MaxHP:  st.HP * Scale,
		Points: st.Points,
		Color:  st.Color,
		Dir:    dir,
	}
}

// moveEnemy advances one enemy for a tick. Zigzag enemies drift vertically
// and reverse direction at the playfield bounds.
func moveEnemy(e *Entity, fieldTop, fieldBottom Fixed) {
	e.X = e.X.Add(e.VX)
	if e.Flash > 0 {
		e.Flash--
	}
	if e.Enemy != EnemyZigzag {
		return
	}
	e.Y = e.Y.Add(zigzagStep.Mul(e.Dir))
	if e.Y <= fieldTop {
		e.Y = fieldTop
		e.Dir = 1
	} else if e.Y >= fieldBottom {
		e.Y = fieldBottom
		e.Dir = -1
	}
}
