package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/babaam/internal/config"
	"github.com/vovakirdan/babaam/internal/core"
)

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Playfield layout. Row 0 is the HUD; the defended wall sits at a fixed
// column with the ship restricted to the left third of the field.
const (
	hudRows  = 1
	wallCol  = 2
	shipMinX = wallCol + 2
)

// Cheat codes are matched against a rolling five-keystroke buffer.
const (
	cheatDrones = "00000"
	cheatBeam   = "EEEEE"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the shooter simulation: the ship defending the wall at
// the left edge against waves attacking from the right.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager

	rng      *SimpleRNG
	store    *Store
	ship     *Ship
	beam     *Beam
	powerups *PowerUpManager
	director *SpawnDirector
	cues     *CueTracker

	state string
	cause core.OverCause

	tickCount int
	score     int
	kills     int

	bossesDefeated int

	nukeTimer   int // Remaining ticks of the nuke effect window
	nukePending bool

	fireHeld bool
	cheatBuf []rune

	stats        RunStats
	achievements []string

	leaderboard Leaderboard
	rank        int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game instance. Reset must be called before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "babaam"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "BA-BAAM!"
}

// SetLeaderboard attaches the persistence port consulted at run end.
func (g *Game) SetLeaderboard(lb Leaderboard) {
	g.leaderboard = lb
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.store = NewStore(cfg.Gameplay.EntityCap)
	g.powerups = NewPowerUpManager(PowerUpTuning{
		DropChance:   cfg.PowerUps.DropChance,
		NukeChance:   cfg.PowerUps.NukeChance,
		NukeMinScore: cfg.PowerUps.NukeMinScore,
		RapidTicks:   cfg.PowerUps.RapidTicks,
		ShieldTicks:  cfg.PowerUps.ShieldTicks,
		DriftSpeed:   cfg.PowerUps.DriftSpeed,
	}, g.rng)
	g.director = NewSpawnDirector(SpawnTuning{
		InitialInterval: cfg.Spawn.InitialInterval,
		RampEvery:       cfg.Spawn.RampEvery,
		MinInterval:     cfg.Spawn.MinInterval,
		FastScore:       cfg.Spawn.FastScore,
		ZigzagScore:     cfg.Spawn.ZigzagScore,
		TankScore:       cfg.Spawn.TankScore,
		BossFirstKills:  cfg.Spawn.BossFirstKills,
		BossEveryKills:  cfg.Spawn.BossEveryKills,
	}, g.rng)
	g.beam = NewBeam(BeamTuning{
		StartLength:   cfg.Beam.StartLength,
		MaxLength:     cfg.Beam.MaxLength,
		StepInterval:  cfg.Beam.StepInterval,
		FlickerTicks:  cfg.Beam.FlickerTicks,
		CooldownTicks: cfg.Beam.CooldownTicks,
		DamagePerCell: cfg.Beam.DamagePerCell,
	})

	shipY := ToFixed((runtime.ScreenH - ShipH) / 2)
	g.ship = NewShip(ToFixed(shipMinX+1), shipY, Fixed(cfg.Ship.Speed),
		cfg.Gameplay.StartHealth, cfg.Gameplay.MaxHealth)

	g.cues = NewCueTracker()
	g.state = StatePlaying
	g.cause = core.CauseNone
	g.tickCount = 0
	g.score = 0
	g.kills = 0
	g.bossesDefeated = 0
	g.nukeTimer = 0
	g.nukePending = false
	g.fireHeld = false
	g.cheatBuf = g.cheatBuf[:0]
	g.stats = RunStats{PlasmaOnly: true}
	g.achievements = nil
	g.rank = 0

	g.cues.Play(CueGameStart)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State(), Cues: g.cues.Drain()}
	}

	if in.Has(core.ActionQuit) {
		g.endRun(core.CauseUserQuit)
		return core.StepResult{State: g.State(), Cues: g.cues.Drain()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.applyInput(in)
	g.updateWeapons()
	g.updateSpawns()
	g.updateMovement()
	g.resolveCollisions()
	g.updateEffects()
	g.updateNuke()
	g.updateLoopCues()

	g.store.Flush()

	return core.StepResult{State: g.State(), Cues: g.cues.Drain()}
}

// applyInput turns the frame into ship velocity, weapon selection, the
// fire trigger level, and cheat-buffer keystrokes.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionWeapon1) {
		g.ship.Select(WeaponNormal)
	}
	if in.Has(core.ActionWeapon2) {
		g.ship.Select(WeaponSpread)
	}
	if in.Has(core.ActionWeapon3) {
		g.ship.Select(WeaponBeam)
	}

	g.ship.VX = 0
	g.ship.VY = 0
	if in.Has(core.ActionLeft) {
		g.ship.VX = -g.ship.Speed
	}
	if in.Has(core.ActionRight) {
		g.ship.VX = g.ship.Speed
	}
	if in.Has(core.ActionUp) {
		g.ship.VY = -g.ship.Speed
	}
	if in.Has(core.ActionDown) {
		g.ship.VY = g.ship.Speed
	}

	g.fireHeld = in.Has(core.ActionFire)

	for _, r := range in.Keys {
		g.pushCheatKey(r)
	}
}

// pushCheatKey feeds the rolling cheat buffer. Any key outside the cheat
// alphabet resets it, as does a successful match.
func (g *Game) pushCheatKey(r rune) {
	if r == 'e' {
		r = 'E'
	}
	if r != '0' && r != 'E' {
		g.cheatBuf = g.cheatBuf[:0]
		return
	}
	g.cheatBuf = append(g.cheatBuf, r)
	if len(g.cheatBuf) > 5 {
		copy(g.cheatBuf, g.cheatBuf[len(g.cheatBuf)-5:])
		g.cheatBuf = g.cheatBuf[:5]
	}
	if len(g.cheatBuf) < 5 {
		return
	}
	switch string(g.cheatBuf) {
	case cheatDrones:
		g.spawnDroneWing()
		g.cheatBuf = g.cheatBuf[:0]
	case cheatBeam:
		g.ship.Unlock(WeaponBeam)
		g.cheatBuf = g.cheatBuf[:0]
	}
}

// updateWeapons runs cooldowns, projectile firing, and the beam FSM.
func (g *Game) updateWeapons() {
	if g.ship.FireCooldown > 0 {
		g.ship.FireCooldown--
	}
	if g.ship.Flash > 0 {
		g.ship.Flash--
	}
	if g.ship.Spark > 0 {
		g.ship.Spark--
	}

	rapid := g.powerups.HasEffect(EffectRapidFire)

	if g.ship.Weapon == WeaponBeam {
		ev := g.beam.Update(g.fireHeld, g.ship.Stationary(), rapid)
		if ev.SidesActivated {
			g.cues.Play(CueBeamSides)
		}
		if ev.ShutDown {
			g.spark()
		}
		if ev.Blocked {
			g.spark()
		}
		// Audible cadence follows the growth step, not every tick.
		if g.tickCount%g.beam.Tuning.StepInterval == 0 {
			switch g.beam.Phase {
			case BeamCharging:
				g.cues.Play(CueBeamCharging)
			case BeamMaxPower, BeamFlickering:
				g.cues.Play(CueBeamDying)
			}
		}
		return
	}

	if !g.fireHeld || g.ship.FireCooldown > 0 {
		return
	}

	var wc config.CannonConfig
	var cue string
	switch g.ship.Weapon {
	case WeaponSpread:
		wc = g.cfg.Weapons.Spread
		cue = CueSpreadShoot
	default:
		wc = g.cfg.Weapons.Normal
		cue = CueShoot
	}
	cooldown := wc.Cooldown
	if rapid {
		cooldown = wc.RapidCooldown
	}
	g.ship.FireCooldown = cooldown

	nose := g.ship.NoseX()
	if g.ship.Weapon == WeaponSpread {
		// One pellet per sprite row, all flying straight.
		for row := 0; row < ShipH; row++ {
			g.store.Spawn(g.newShipBullet(nose, g.ship.Y.Add(ToFixed(row)), wc))
		}
		g.stats.ShotsFired += 3
	} else {
		g.store.Spawn(g.newShipBullet(nose, g.ship.CenterY(), wc))
		g.stats.ShotsFired++
	}
	g.cues.Play(cue)
}

// spark flags the blocked-trigger feedback, throttled by the spark timer.
func (g *Game) spark() {
	if g.ship.Spark > 0 {
		return
	}
	g.ship.Spark = 6
	g.cues.Play(CueBlocked)
}

func (g *Game) newShipBullet(x, y Fixed, wc config.CannonConfig) *Entity {
	return &Entity{
		Kind:   KindBullet,
		Owner:  OwnerShip,
		Weapon: g.ship.Weapon,
		X:      x,
		Y:      y,
		VX:     Fixed(wc.BulletSpeed),
		W:      1,
		H:      1,
		Damage: wc.Damage * Scale,
		Glyph:  '─',
		Color:  core.ColorBrightYellow,
	}
}

// updateSpawns runs the spawn director: boss gating first, then regular
// pressure while no boss is on the field.
func (g *Game) updateSpawns() {
	if g.director.BossDue(g.kills) && g.store.Count(KindBoss) == 0 {
		g.spawnBoss()
		return
	}

	if g.store.Count(KindBoss) > 0 {
		return
	}

	reduction := g.difficulty.IntervalReduction(g.score, g.tickCount)
	if g.director.Tick(g.tickCount, reduction) {
		t := g.director.RollType(g.score)
		y := ToFixed(g.rng.Range(hudRows+1, g.runtime.ScreenH-3))
		dir := 1
		if g.rng.Intn(2) == 0 {
			dir = -1
		}
		e := newEnemy(t, ToFixed(g.runtime.ScreenW-2), y, dir)
		// Difficulty scales approach speed; the multiplier is locked in
		// at spawn so enemies already on the field keep their pace.
		e.VX = Fixed(g.difficulty.Speed(float64(e.VX), g.score, g.tickCount))
		g.store.Spawn(e)
	}
}

// spawnBoss clears the field of regular enemies and brings in the boss.
func (g *Game) spawnBoss() {
	g.store.Each(KindEnemy, func(e *Entity) bool {
		g.store.Remove(e.ID)
		return true
	})
	y := g.rng.Range(5, g.runtime.ScreenH-8)
	g.store.Spawn(newBoss(g.director.BossNum, ToFixed(g.runtime.ScreenW-5), ToFixed(y)))
	g.cues.Play(CueBoss)
}

// spawnDroneWing deploys a wing of escort drones around the ship, capped
// at the configured maximum.
func (g *Game) spawnDroneWing() {
	t := g.droneTuning()
	cy := g.ship.CenterY()
	for i := 0; i < t.PerPickup && i < len(droneOffsets); i++ {
		if g.store.Count(KindDrone) >= t.MaxActive {
			return
		}
		off := droneOffsets[i]
		g.store.Spawn(newDrone(
			g.ship.X.Add(ToFixed(off.DX)),
			cy.Add(ToFixed(off.DY)),
			off.Cooldown, t))
	}
}

func (g *Game) droneTuning() DroneTuning {
	return DroneTuning{
		PerPickup:    g.cfg.Drones.PerPickup,
		MaxActive:    g.cfg.Drones.MaxActive,
		Lifetime:     g.cfg.Drones.Lifetime,
		Speed:        g.cfg.Drones.Speed,
		SafeDistance: g.cfg.Drones.SafeDistance,
		FireRange:    g.cfg.Drones.FireRange,
		CooldownMin:  g.cfg.Drones.CooldownMin,
		CooldownMax:  g.cfg.Drones.CooldownMax,
		OrbitRadius:  g.cfg.Drones.OrbitRadius,
	}
}

// updateMovement advances every moving object one tick.
func (g *Game) updateMovement() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	// Ship. An actual position change collapses any beam charge.
	rightLimit := ToFixed(w/3 + 8 - ShipW)
	moved := g.ship.Move(ToFixed(shipMinX+1), rightLimit,
		ToFixed(hudRows), ToFixed(h-1-ShipH))
	if moved {
		g.beam.InterruptMotion()
	}

	fieldTop := ToFixed(hudRows + 1)
	fieldBottom := ToFixed(h - 3)

	// Bullets.
	g.store.Each(KindBullet, func(b *Entity) bool {
		b.X = b.X.Add(b.VX)
		b.Y = b.Y.Add(b.VY)

		if b.Owner == OwnerBoss && b.X <= ToFixed(wallCol) && b.VX < 0 {
			// Ricochet off the defended wall.
			b.VX = b.VX.Abs()
			b.VY = g.rng.Fixed(-600, 600)
			g.spawnDebris(ToFixed(wallCol), b.Y, false)
			g.cues.Play(CueRicochet)
			return true
		}

		if b.X >= ToFixed(w-1) || b.X < ToFixed(1) ||
			b.Y < ToFixed(hudRows) || b.Y >= ToFixed(h-1) {
			g.store.Remove(b.ID)
		}
		return true
	})

	// Enemies, including wall breaches.
	g.store.Each(KindEnemy, func(e *Entity) bool {
		moveEnemy(e, fieldTop, fieldBottom.Sub(ToFixed(e.H-1)))
		if e.X <= ToFixed(wallCol) {
			g.breach(e)
		}
		return true
	})

	// Boss.
	if boss := g.store.First(KindBoss); boss != nil {
		fired := moveBoss(boss, ToFixed(5), ToFixed(h-5))
		if fired {
			g.store.Spawn(newBossBullet(boss.X.Sub(ToFixed(1)), boss.CenterY()))
			g.cues.Play(CueBossFire)
		}
		if boss.X <= ToFixed(wallCol) {
			g.bossBreach(boss)
		}
	}

	// Drones.
	tuning := g.droneTuning()
	g.store.Each(KindDrone, func(d *Entity) bool {
		bullet, expired := updateDrone(d, g.store, g.ship, g.rng, tuning,
			ToFixed(wallCol+1), ToFixed(w-2), ToFixed(hudRows), ToFixed(h-2))
		if expired {
			g.store.Remove(d.ID)
			return true
		}
		if bullet != nil {
			g.store.Spawn(bullet)
			g.stats.ShotsFired++
			g.cues.Play(CueDroneShoot)
		}
		return true
	})

	// Pickups drift toward the wall and vanish past it.
	g.store.Each(KindPickup, func(p *Entity) bool {
		p.X = p.X.Add(p.VX)
		if p.X <= 0 {
			g.store.Remove(p.ID)
		}
		return true
	})

	// Debris burns out.
	g.store.Each(KindDebris, func(d *Entity) bool {
		d.TTL--
		d.X = d.X.Add(d.VX)
		d.Y = d.Y.Add(d.VY)
		if d.TTL <= 0 {
			g.store.Remove(d.ID)
		}
		return true
	})
}

// breach handles a regular enemy reaching the defended line.
func (g *Game) breach(e *Entity) {
	g.spawnDebris(e.CenterX(), e.CenterY(), true)
	g.store.Remove(e.ID)
	g.stats.Breaches++
	g.cues.Play(CueExplosion)
	if g.powerups.HasEffect(EffectShield) {
		return
	}
	g.stats.DamageTaken++
	if g.ship.Hurt(1) {
		g.endRun(core.CauseHealthExhausted)
	}
}

// bossBreach ends the run: a boss reaching the wall is unconditional
// defeat regardless of remaining health.
func (g *Game) bossBreach(boss *Entity) {
	for i := 0; i < 6; i++ {
		g.spawnDebris(
			boss.X.Add(g.rng.Fixed(-2*Scale, 2*Scale)),
			boss.Y.Add(g.rng.Fixed(-2*Scale, 2*Scale)), true)
	}
	g.store.Remove(boss.ID)
	g.cues.Play(CueNuke)
	g.endRun(core.CauseBossBreach)
}

// updateEffects expires power-up timers.
func (g *Game) updateEffects() {
	g.powerups.ExpireEffects(g.tickCount)
}

// updateNuke counts down the effect window and applies the deferred
// health cost once the animation has played out.
func (g *Game) updateNuke() {
	if g.nukeTimer <= 0 {
		return
	}
	g.nukeTimer--
	if g.nukeTimer == 0 && g.nukePending {
		g.nukePending = false
		g.stats.DamageTaken++
		if g.ship.Hurt(1) {
			g.endRun(core.CauseHealthExhausted)
		}
	}
}

// updateLoopCues drives the looping engine and power-up clock channels.
func (g *Game) updateLoopCues() {
	if g.state != StatePlaying {
		g.cues.SetEngine("")
		g.cues.SetClock("")
		return
	}

	// Engine note priority: right thrust, any vertical, idle, left drift.
	switch {
	case g.ship.VX > 0 && !g.ship.AtRightBound():
		g.cues.SetEngine(CueEngineRight)
	case g.ship.VY != 0:
		g.cues.SetEngine(CueEngineVertical)
	case g.ship.VX < 0:
		g.cues.SetEngine(CueEngineLeft)
	default:
		g.cues.SetEngine(CueEngineIdle)
	}

	rapid := g.powerups.HasEffect(EffectRapidFire)
	shield := g.powerups.HasEffect(EffectShield)
	switch {
	case rapid && shield:
		g.cues.SetClock(CueClockIntense)
	case rapid || shield:
		g.cues.SetClock(CueClockNormal)
	default:
		g.cues.SetClock("")
	}
}

// spawnDebris adds a short-lived explosion particle.
func (g *Game) spawnDebris(x, y Fixed, big bool) {
	glyphs := []rune{'*', '·'}
	ttl := 5
	if big {
		glyphs = []rune{'*', '✦', '✧', '○'}
		ttl = 8
	}
	g.store.Spawn(&Entity{
		Kind:  KindDebris,
		X:     x,
		Y:     y,
		W:     1,
		H:     1,
		TTL:   ttl,
		Glyph: glyphs[g.rng.Intn(len(glyphs))],
		Color: core.ColorOrange,
	})
}

// endRun freezes the simulation and settles the run: achievements and,
// when a leaderboard is attached, the would-be rank.
func (g *Game) endRun(cause core.OverCause) {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.cause = cause
	g.achievements = g.stats.Achievements(g.score, g.kills)
	g.cues.SetEngine("")
	g.cues.SetClock("")

	if g.leaderboard != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		dim := fmt.Sprintf("%dx%d", g.runtime.ScreenW, g.runtime.ScreenH)
		rank, err := g.leaderboard.Rank(ctx, dim, g.score)
		if err == nil {
			g.rank = rank
		}
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Health:   g.ship.Health,
		Kills:    g.kills,
		GameOver: g.state == StateGameOver,
		Cause:    g.cause,
		Paused:   g.state == StatePaused,
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int {
	return g.tickCount
}

// Ship exposes the player vessel for rendering and tests.
func (g *Game) Ship() *Ship {
	return g.ship
}

// BeamState exposes the energy beam for rendering and tests.
func (g *Game) BeamState() *Beam {
	return g.beam
}

// Store exposes the entity store for rendering and tests.
func (g *Game) Store() *Store {
	return g.store
}

// Effects exposes the power-up manager for rendering and tests.
func (g *Game) Effects() *PowerUpManager {
	return g.powerups
}

// Stats returns the per-run statistics.
func (g *Game) Stats() RunStats {
	return g.stats
}

// Achievements returns the awards settled at run end.
func (g *Game) Achievements() []string {
	return g.achievements
}

// Rank returns the leaderboard position settled at run end, 0 = unranked.
func (g *Game) Rank() int {
	return g.rank
}

// BossesDefeated returns how many bosses have fallen this run.
func (g *Game) BossesDefeated() int {
	return g.bossesDefeated
}
