package sim

import "github.com/vovakirdan/babaam/internal/core"

// Boss tuning. The Nth boss (1-based) gets progressively tougher.
const (
	bossSpeed        = Fixed(150)
	bossOscCycle     = 60 // Ticks per full up/down oscillation cycle
	bossOscStep      = Fixed(100)
	bossFireInterval = 40
	bossW            = 3
	bossH            = 3
)

var bossSprite = []string{"╔═╗", "║◈║", "╚═╝"}

// bossHP returns whole hit points for boss number n.
func bossHP(n int) int {
	return 33 + n*22
}

// bossPoints returns the score for defeating boss number n.
func bossPoints(n int) int {
	return 200 + n*100
}

// newBoss builds the boss entity for boss number n at the spawn position.
func newBoss(n int, x, y Fixed) *Entity {
	hp := bossHP(n)
	return &Entity{
		Kind:   KindBoss,
		X:      x,
		Y:      y,
		VX:     -bossSpeed,
		W:      bossW,
		H:      bossH,
		HP:     hp * Scale,
		MaxHP:  hp * Scale,
		Points: bossPoints(n),
		Color:  core.ColorBrightMagenta,
	}
}

// moveBoss advances the boss one tick: steady leftward drift plus a slow
// vertical oscillation bounded away from the playfield edges.
// Returns true when the boss fires this tick.
func moveBoss(b *Entity, fieldTop, fieldBottom Fixed) bool {
	b.X = b.X.Add(b.VX)
	if b.Flash > 0 {
		b.Flash--
	}

	b.OscPhase++
	if b.OscPhase%bossOscCycle < bossOscCycle/2 {
		if b.Y < fieldBottom {
			b.Y = b.Y.Add(bossOscStep)
		}
	} else {
		if b.Y > fieldTop {
			b.Y = b.Y.Sub(bossOscStep)
		}
	}

	b.FireTimer++
	if b.FireTimer >= bossFireInterval {
		b.FireTimer = 0
		return true
	}
	return false
}

// newBossBullet builds a boss projectile heading toward the defended wall.
func newBossBullet(x, y Fixed) *Entity {
	return &Entity{
		Kind:   KindBullet,
		Owner:  OwnerBoss,
		X:      x,
		Y:      y,
		VX:     -800,
		W:      1,
		H:      1,
		Damage: 1 * Scale,
		Glyph:  '●',
		Color:  core.ColorBrightRed,
	}
}
