// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ShooterConfig contains all tuning for the shooter simulation.
type ShooterConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Ship       ShipConfig       `yaml:"ship"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Beam       BeamConfig       `yaml:"beam"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Drones     DronesConfig     `yaml:"drones"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines run-level parameters.
type GameplayConfig struct {
	StartHealth int `yaml:"start_health"`
	MaxHealth   int `yaml:"max_health"`
	EntityCap   int `yaml:"entity_cap"`
}

// ShipConfig defines the player vessel parameters.
// Speeds are in milli-cells per tick (1000 = one cell).
type ShipConfig struct {
	Speed int `yaml:"speed"`
}

// WeaponsConfig defines the projectile weapons.
type WeaponsConfig struct {
	Normal CannonConfig `yaml:"normal"`
	Spread CannonConfig `yaml:"spread"`
}

// CannonConfig defines one projectile weapon.
type CannonConfig struct {
	Damage        int `yaml:"damage"`         // Whole HP per hit
	Cooldown      int `yaml:"cooldown"`       // Ticks between volleys
	RapidCooldown int `yaml:"rapid_cooldown"` // Cooldown under Rapid Fire
	BulletSpeed   int `yaml:"bullet_speed"`   // Milli-cells per tick
}

// BeamConfig defines the energy beam.
type BeamConfig struct {
	StartLength   int `yaml:"start_length"`
	MaxLength     int `yaml:"max_length"`
	StepInterval  int `yaml:"step_interval"`
	FlickerTicks  int `yaml:"flicker_ticks"`
	CooldownTicks int `yaml:"cooldown_ticks"`
	DamagePerCell int `yaml:"damage_per_cell"` // Milli-HP per cell per tick
}

// SpawnConfig defines enemy pressure and boss cadence.
type SpawnConfig struct {
	InitialInterval int `yaml:"initial_interval"`
	RampEvery       int `yaml:"ramp_every"`
	MinInterval     int `yaml:"min_interval"`
	FastScore       int `yaml:"fast_score"`
	ZigzagScore     int `yaml:"zigzag_score"`
	TankScore       int `yaml:"tank_score"`
	BossFirstKills  int `yaml:"boss_first_kills"`
	BossEveryKills  int `yaml:"boss_every_kills"`
}

// PowerUpsConfig defines drop chances and effect durations.
type PowerUpsConfig struct {
	DropChance   int `yaml:"drop_chance"`
	NukeChance   int `yaml:"nuke_chance"`
	NukeMinScore int `yaml:"nuke_min_score"`
	RapidTicks   int `yaml:"rapid_ticks"`
	ShieldTicks  int `yaml:"shield_ticks"`
	DriftSpeed   int `yaml:"drift_speed"`
}

// DronesConfig defines the escort drones.
type DronesConfig struct {
	PerPickup    int `yaml:"per_pickup"`
	MaxActive    int `yaml:"max_active"`
	Lifetime     int `yaml:"lifetime"`
	Speed        int `yaml:"speed"`
	SafeDistance int `yaml:"safe_distance"`
	FireRange    int `yaml:"fire_range"`
	CooldownMin  int `yaml:"cooldown_min"`
	CooldownMax  int `yaml:"cooldown_max"`
	OrbitRadius  int `yaml:"orbit_radius"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Enemy speed multiplier at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
