package sim

// BeamPhase is the energy beam state machine phase.
type BeamPhase uint8

const (
	BeamIdle BeamPhase = iota
	BeamCharging
	BeamMaxPower
	BeamFlickering
	BeamShutDown
	BeamCoolingDown
)

// String returns the phase name.
func (p BeamPhase) String() string {
	switch p {
	case BeamCharging:
		return "charging"
	case BeamMaxPower:
		return "max-power"
	case BeamFlickering:
		return "flickering"
	case BeamShutDown:
		return "shutdown"
	case BeamCoolingDown:
		return "cooling"
	default:
		return "idle"
	}
}

// BeamTuning holds the beam configuration applied at reset.
type BeamTuning struct {
	StartLength   int // Main beam length when charging begins
	MaxLength     int // Length cap for all three beams
	StepInterval  int // Ticks between growth steps (beam fires at 2x cadence)
	FlickerTicks  int // Ticks from full power to forced shutdown
	CooldownTicks int // Lockout after releasing an overheated trigger
	DamagePerCell int // Milli-HP per beam cell per tick
}

// DefaultBeamTuning returns the stock beam parameters.
func DefaultBeamTuning() BeamTuning {
	return BeamTuning{
		StartLength:   15,
		MaxLength:     60,
		StepInterval:  2,
		FlickerTicks:  90,
		CooldownTicks: 15,
		DamagePerCell: 50,
	}
}

// Growth tiers: the longer the trigger is held without moving, the faster
// the beam extends. Thresholds are in charge ticks (1s, 2s, 3s at 30 TPS).
func growthRate(chargeTicks int) int {
	switch {
	case chargeTicks < 30:
		return 3
	case chargeTicks < 60:
		return 6
	case chargeTicks < 90:
		return 9
	default:
		return 12
	}
}

// GrowthTier returns the 1-based tier for the given charge duration.
func GrowthTier(chargeTicks int) int {
	switch {
	case chargeTicks < 30:
		return 1
	case chargeTicks < 60:
		return 2
	case chargeTicks < 90:
		return 3
	default:
		return 4
	}
}

// BeamEvents reports edge-triggered transitions from one Update call.
type BeamEvents struct {
	SidesActivated bool // Side cannons started extending this tick
	ShutDown       bool // Overheat shutdown happened this tick
	Blocked        bool // Trigger held but the beam cannot fire
}

// Beam implements the charge/overheat state machine of the energy weapon.
// All timing is tick-counted so pausing the simulation freezes the beam.
type Beam struct {
	Tuning BeamTuning

	Phase      BeamPhase
	MainLen    int
	TopLen     int
	BottomLen  int
	Charge     int // Ticks of uninterrupted charging
	Decay      int // Ticks since all beams reached max length
	Cool       int // Remaining cooldown ticks
	stepTicker int
	sidesOn    bool
}

// NewBeam creates a beam with the given tuning, in the idle phase.
func NewBeam(t BeamTuning) *Beam {
	b := &Beam{Tuning: t}
	b.resetCharge()
	return b
}

// resetCharge returns all charge state to the press-and-hold baseline.
func (b *Beam) resetCharge() {
	b.MainLen = b.Tuning.StartLength
	b.TopLen = 0
	b.BottomLen = 0
	b.Charge = 0
	b.Decay = 0
	b.stepTicker = 0
	b.sidesOn = false
}

// InterruptMotion is called when the ship's position actually changed.
// Any charge in progress collapses back to the baseline, and movement
// also re-arms an overheated beam without waiting for trigger release.
func (b *Beam) InterruptMotion() {
	switch b.Phase {
	case BeamCharging, BeamMaxPower, BeamFlickering, BeamShutDown:
		b.Phase = BeamIdle
		b.resetCharge()
	}
}

// Update advances the state machine one tick.
// held is the trigger state, stationary whether the ship held position
// last tick, rapid whether Rapid Fire doubles the growth rate.
func (b *Beam) Update(held, stationary, rapid bool) BeamEvents {
	var ev BeamEvents

	if b.Phase == BeamCoolingDown {
		if held {
			ev.Blocked = true
		}
		b.Cool--
		if b.Cool <= 0 {
			b.Phase = BeamIdle
			b.resetCharge()
		}
		return ev
	}

	if !held {
		switch b.Phase {
		case BeamShutDown:
			b.Phase = BeamCoolingDown
			b.Cool = b.Tuning.CooldownTicks
		case BeamCharging, BeamMaxPower, BeamFlickering:
			b.Phase = BeamIdle
			b.resetCharge()
		}
		return ev
	}

	switch b.Phase {
	case BeamShutDown:
		// Overheated: firing stays blocked until the trigger is released.
		ev.Blocked = true

	case BeamIdle:
		if !stationary {
			ev.Blocked = true
			return ev
		}
		b.Phase = BeamCharging
		b.resetCharge()

	case BeamCharging:
		if !stationary {
			// Motion interrupt arrives via InterruptMotion; a boundary
			// press with no displacement keeps the beam alive.
			ev.Blocked = true
			return ev
		}
		b.Charge++
		b.stepTicker++
		if b.stepTicker >= b.Tuning.StepInterval {
			b.stepTicker = 0
			rate := growthRate(b.Charge)
			if rapid {
				rate *= 2
			}
			max := b.Tuning.MaxLength
			if b.MainLen < max {
				b.MainLen = minInt(b.MainLen+rate, max)
			} else {
				if !b.sidesOn {
					b.sidesOn = true
					ev.SidesActivated = true
				}
				b.TopLen = minInt(b.TopLen+rate, max)
				b.BottomLen = minInt(b.BottomLen+rate, max)
			}
		}
		if b.MainLen >= b.Tuning.MaxLength &&
			b.TopLen >= b.Tuning.MaxLength &&
			b.BottomLen >= b.Tuning.MaxLength {
			b.Phase = BeamMaxPower
			b.Decay = 0
		}

	case BeamMaxPower, BeamFlickering:
		b.Decay++
		if b.Decay >= b.Tuning.FlickerTicks {
			b.Phase = BeamShutDown
			b.MainLen = 0
			b.TopLen = 0
			b.BottomLen = 0
			ev.ShutDown = true
			return ev
		}
		if b.Decay >= b.Tuning.FlickerTicks/3 {
			b.Phase = BeamFlickering
		}
	}

	return ev
}

// Visible reports whether the beam is drawn (and damaging) this tick.
// At full power the beam flickers with a period that lengthens as
// shutdown approaches.
func (b *Beam) Visible() bool {
	switch b.Phase {
	case BeamCharging:
		return true
	case BeamMaxPower, BeamFlickering:
		t := b.Decay - 1
		if t < 0 {
			t = 0
		}
		var period int
		switch {
		case t < 30:
			period = 2
		case t < 60:
			period = 2 + (t-30)/5
		default:
			period = 8 + (t-60)/3
		}
		return t%period < period/2
	default:
		return false
	}
}

// Firing reports whether the beam occupies the playfield at all.
func (b *Beam) Firing() bool {
	switch b.Phase {
	case BeamCharging, BeamMaxPower, BeamFlickering:
		return true
	default:
		return false
	}
}

// Segment is one horizontal beam ray.
type Segment struct {
	RowOffset int // Sprite row: 0 top, 1 center, 2 bottom
	Length    int // Cells
}

// Segments returns the rays the beam currently projects, center first.
func (b *Beam) Segments() []Segment {
	if !b.Firing() {
		return nil
	}
	segs := make([]Segment, 0, 3)
	if b.MainLen > 0 {
		segs = append(segs, Segment{RowOffset: 1, Length: b.MainLen})
	}
	if b.TopLen > 0 {
		segs = append(segs, Segment{RowOffset: 0, Length: b.TopLen})
	}
	if b.BottomLen > 0 {
		segs = append(segs, Segment{RowOffset: 2, Length: b.BottomLen})
	}
	return segs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
