package sim

import "testing"

func chargeTicks(b *Beam, n int) {
	for i := 0; i < n; i++ {
		b.Update(true, true, false)
	}
}

func TestBeamStartsIdle(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	if b.Phase != BeamIdle {
		t.Errorf("new beam phase = %v, want idle", b.Phase)
	}
	if b.Firing() {
		t.Error("new beam should not be firing")
	}
}

func TestBeamGrowthMonotonic(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	prev := 0
	for i := 0; i < 300; i++ {
		b.Update(true, true, false)
		total := b.MainLen + b.TopLen + b.BottomLen
		if total < prev {
			t.Fatalf("beam length shrank from %d to %d at tick %d while held", prev, total, i)
		}
		prev = total
		if b.Phase == BeamMaxPower {
			break
		}
	}
	if b.Phase != BeamMaxPower {
		t.Fatalf("beam never reached max power, phase = %v", b.Phase)
	}
	if b.MainLen != 60 || b.TopLen != 60 || b.BottomLen != 60 {
		t.Errorf("at max power lengths = %d/%d/%d, want 60/60/60",
			b.MainLen, b.TopLen, b.BottomLen)
	}
}

func TestBeamSidesOnlyAfterMainMaxed(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	for i := 0; i < 300; i++ {
		b.Update(true, true, false)
		if b.MainLen < b.Tuning.MaxLength && (b.TopLen > 0 || b.BottomLen > 0) {
			t.Fatalf("side beams extended (%d/%d) while main at %d",
				b.TopLen, b.BottomLen, b.MainLen)
		}
		if b.Phase == BeamMaxPower {
			return
		}
	}
	t.Fatal("beam never reached max power")
}

func TestBeamSideActivationEvent(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	fired := 0
	for i := 0; i < 300; i++ {
		ev := b.Update(true, true, false)
		if ev.SidesActivated {
			fired++
			if b.MainLen < b.Tuning.MaxLength {
				t.Errorf("sides activated with main at %d", b.MainLen)
			}
		}
		if b.Phase == BeamMaxPower {
			break
		}
	}
	if fired != 1 {
		t.Errorf("SidesActivated fired %d times, want exactly 1", fired)
	}
}

func TestBeamMovementCollapsesCharge(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	chargeTicks(b, 40)
	if b.MainLen <= b.Tuning.StartLength {
		t.Fatalf("main length = %d after 40 ticks, expected growth", b.MainLen)
	}
	b.InterruptMotion()
	if b.Phase != BeamIdle {
		t.Errorf("phase after movement = %v, want idle", b.Phase)
	}
	if b.MainLen != b.Tuning.StartLength || b.Charge != 0 {
		t.Errorf("charge state after movement = len %d charge %d, want %d/0",
			b.MainLen, b.Charge, b.Tuning.StartLength)
	}
	if GrowthTier(b.Charge) != 1 {
		t.Errorf("growth tier after movement = %d, want 1", GrowthTier(b.Charge))
	}
}

func TestBeamMovementRearmsAfterShutdown(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	for i := 0; i < 500 && b.Phase != BeamShutDown; i++ {
		b.Update(true, true, false)
	}
	if b.Phase != BeamShutDown {
		t.Fatal("beam never shut down")
	}

	// Moving the ship re-arms the weapon even with the trigger held.
	b.InterruptMotion()
	if b.Phase != BeamIdle {
		t.Fatalf("phase after movement = %v, want idle", b.Phase)
	}
	for i := 0; i < 30; i++ {
		b.Update(true, true, false)
	}
	if b.Phase != BeamCharging {
		t.Errorf("phase after re-arm and hold = %v, want charging", b.Phase)
	}
	if b.MainLen <= b.Tuning.StartLength {
		t.Errorf("main length = %d after re-arm, expected growth past %d",
			b.MainLen, b.Tuning.StartLength)
	}
}

func TestBeamReleaseCollapsesCharge(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	chargeTicks(b, 40)
	b.Update(false, true, false)
	if b.Phase != BeamIdle {
		t.Errorf("phase after release = %v, want idle", b.Phase)
	}
	if b.MainLen != b.Tuning.StartLength {
		t.Errorf("main length after release = %d, want %d", b.MainLen, b.Tuning.StartLength)
	}
}

func TestBeamOverheatShutdown(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	// Charge to full power.
	for i := 0; i < 300 && b.Phase != BeamMaxPower; i++ {
		b.Update(true, true, false)
	}
	if b.Phase != BeamMaxPower {
		t.Fatal("beam never reached max power")
	}

	// Hold at full power until forced shutdown.
	sawFlicker := false
	shutTick := -1
	for i := 0; i < b.Tuning.FlickerTicks+5; i++ {
		ev := b.Update(true, true, false)
		if b.Phase == BeamFlickering {
			sawFlicker = true
		}
		if ev.ShutDown {
			shutTick = i
			break
		}
	}
	if !sawFlicker {
		t.Error("beam never entered the flickering phase before shutdown")
	}
	if shutTick < 0 {
		t.Fatal("beam never shut down while held at full power")
	}
	if b.Phase != BeamShutDown {
		t.Errorf("phase = %v, want shutdown", b.Phase)
	}
	if b.MainLen != 0 || b.TopLen != 0 || b.BottomLen != 0 {
		t.Errorf("lengths after shutdown = %d/%d/%d, want 0/0/0",
			b.MainLen, b.TopLen, b.BottomLen)
	}
}

func TestBeamShutdownBlocksUntilReleaseAndCooldown(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	for i := 0; i < 500 && b.Phase != BeamShutDown; i++ {
		b.Update(true, true, false)
	}
	if b.Phase != BeamShutDown {
		t.Fatal("beam never shut down")
	}

	// Holding the trigger through shutdown keeps it blocked.
	for i := 0; i < 10; i++ {
		ev := b.Update(true, true, false)
		if !ev.Blocked {
			t.Fatal("held overheated trigger should report blocked")
		}
		if b.Firing() || b.Visible() {
			t.Fatal("overheated beam must not fire")
		}
	}

	// Release starts the cooldown lockout.
	b.Update(false, true, false)
	if b.Phase != BeamCoolingDown {
		t.Fatalf("phase after release = %v, want cooling", b.Phase)
	}

	// Pressing during cooldown is still blocked.
	ev := b.Update(true, true, false)
	if !ev.Blocked {
		t.Error("press during cooldown should report blocked")
	}

	// After the lockout expires the beam charges again.
	for i := 0; i < b.Tuning.CooldownTicks+1; i++ {
		b.Update(false, true, false)
	}
	b.Update(true, true, false)
	if b.Phase != BeamCharging {
		t.Errorf("phase after cooldown = %v, want charging", b.Phase)
	}
}

func TestBeamRapidFireDoublesGrowth(t *testing.T) {
	normal := NewBeam(DefaultBeamTuning())
	rapid := NewBeam(DefaultBeamTuning())
	for i := 0; i < 20; i++ {
		normal.Update(true, true, false)
		rapid.Update(true, true, true)
	}
	if rapid.MainLen <= normal.MainLen {
		t.Errorf("rapid growth %d not faster than normal %d", rapid.MainLen, normal.MainLen)
	}
}

func TestGrowthTiers(t *testing.T) {
	tests := []struct {
		charge int
		tier   int
	}{
		{0, 1}, {29, 1}, {30, 2}, {59, 2}, {60, 3}, {89, 3}, {90, 4}, {500, 4},
	}
	for _, tt := range tests {
		if got := GrowthTier(tt.charge); got != tt.tier {
			t.Errorf("GrowthTier(%d) = %d, want %d", tt.charge, got, tt.tier)
		}
	}
}

func TestBeamBoundaryPressDoesNotCollapse(t *testing.T) {
	b := NewBeam(DefaultBeamTuning())
	chargeTicks(b, 20)
	length := b.MainLen
	// Holding a direction against a wall produces no displacement, so
	// InterruptMotion is never called and the charge survives.
	b.Update(true, true, false)
	if b.MainLen < length {
		t.Errorf("beam collapsed without displacement: %d -> %d", length, b.MainLen)
	}
}
