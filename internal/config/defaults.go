package config

import (
	_ "embed"
)

//go:embed defaults/babaam.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Gameplay: GameplayConfig{
			StartHealth: 3,
			MaxHealth:   6,
			EntityCap:   128,
		},
		Ship: ShipConfig{
			Speed: 500, // 0.5 cells per tick
		},
		Weapons: WeaponsConfig{
			Normal: CannonConfig{
				Damage:        3,
				Cooldown:      5,
				RapidCooldown: 2,
				BulletSpeed:   2000, // 2.0 cells per tick
			},
			Spread: CannonConfig{
				Damage:        1,
				Cooldown:      5,
				RapidCooldown: 2,
				BulletSpeed:   2000,
			},
		},
		Beam: BeamConfig{
			StartLength:   15,
			MaxLength:     60,
			StepInterval:  2,
			FlickerTicks:  90, // 3 seconds at 30 TPS
			CooldownTicks: 15,
			DamagePerCell: 50, // Full triple beam burns 9 HP per second
		},
		Spawn: SpawnConfig{
			InitialInterval: 30,
			RampEvery:       300,
			MinInterval:     10,
			FastScore:       200,
			ZigzagScore:     500,
			TankScore:       1000,
			BossFirstKills:  30,
			BossEveryKills:  50,
		},
		PowerUps: PowerUpsConfig{
			DropChance:   12,
			NukeChance:   5,
			NukeMinScore: 500,
			RapidTicks:   300, // 10 seconds
			ShieldTicks:  360, // 12 seconds
			DriftSpeed:   200,
		},
		Drones: DronesConfig{
			PerPickup:    3,
			MaxActive:    9,
			Lifetime:     240, // 8 seconds
			Speed:        400,
			SafeDistance: 8,
			FireRange:    30,
			CooldownMin:  7,
			CooldownMax:  9,
			OrbitRadius:  8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
