package sim

import "context"

// Leaderboard is the persistence port the simulation consults at run end.
// A nil or failing leaderboard leaves the run unranked; it never blocks
// the simulation.
type Leaderboard interface {
	// Rank returns the 1-based position the score would take on the
	// top list for the given playfield dimension key (e.g. "80x24"),
	// or 0 if it does not place.
	Rank(ctx context.Context, dimension string, score int) (int, error)
}

// RunStats accumulates per-run statistics for achievements.
type RunStats struct {
	ShotsFired  int
	ShotsHit    int
	Breaches    int // Enemies that reached the defended line
	DamageTaken int
	NukesUsed   int
	PlasmaOnly  bool // True while every gun kill used the plasma cannon
}

// Achievement names awarded at run end.
const (
	AchievementPerfectDefense = "PERFECT DEFENSE"
	AchievementPlasmaPurist   = "PLASMA PURIST"
	AchievementSharpshooter   = "SHARPSHOOTER"
)

// Accuracy returns hit percentage, 0 when nothing was fired.
func (s *RunStats) Accuracy() int {
	if s.ShotsFired == 0 {
		return 0
	}
	return s.ShotsHit * 100 / s.ShotsFired
}

// Achievements evaluates the run against the award conditions.
func (s *RunStats) Achievements(score, kills int) []string {
	var out []string
	if s.Breaches == 0 && s.DamageTaken == 0 && score > 0 {
		out = append(out, AchievementPerfectDefense)
	}
	if s.PlasmaOnly && kills >= 10 {
		out = append(out, AchievementPlasmaPurist)
	}
	if s.ShotsFired >= 50 && s.Accuracy() >= 80 {
		out = append(out, AchievementSharpshooter)
	}
	return out
}
