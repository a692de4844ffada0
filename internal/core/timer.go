package core

import (
	"math"
	"time"
)

const (
	// MinSpeed and MaxSpeed bound the animation speed setting.
	MinSpeed = 1
	MaxSpeed = 100
	// DefaultSpeed is roughly 29 steps per second.
	DefaultSpeed = 50
	// MaxStepsPerFrame caps the work done in a single Advance.
	MaxStepsPerFrame = 150
)

// StepPacer converts elapsed time into a number of generation steps. Speed s
// runs 1.07^s steps per second; fractional steps carry over as debt.
type StepPacer struct {
	speed int
	debt  float64
	last  time.Time
}

// NewStepPacer constructs a pacer at the given speed.
func NewStepPacer(speed int) *StepPacer {
	p := &StepPacer{}
	p.SetSpeed(speed)
	return p
}

// SetSpeed changes the speed, clamped to [MinSpeed, MaxSpeed].
func (p *StepPacer) SetSpeed(speed int) {
	p.speed = ClampSpeed(speed)
}

// Speed returns the current speed setting.
func (p *StepPacer) Speed() int { return p.speed }

// StepsPerSecond returns the rate implied by the current speed.
func (p *StepPacer) StepsPerSecond() float64 {
	return math.Pow(1.07, float64(p.speed))
}

// Advance accrues dt worth of steps and returns how many to run now, at most
// MaxStepsPerFrame. Steps beyond the cap stay owed.
func (p *StepPacer) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	p.debt += p.StepsPerSecond() * dt.Seconds()
	n := int(math.Floor(p.debt))
	if n > MaxStepsPerFrame {
		n = MaxStepsPerFrame
	}
	p.debt -= float64(n)
	return n
}

// Tick is Advance measured against the wall clock since the previous Tick.
// The first call only starts the clock.
func (p *StepPacer) Tick() int {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	dt := now.Sub(p.last)
	p.last = now
	return p.Advance(dt)
}

// Reset drops any owed steps and restarts the clock.
func (p *StepPacer) Reset() {
	p.debt = 0
	p.last = time.Time{}
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
