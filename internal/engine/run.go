package engine

import (
	"context"
	"fmt"
)

// Observer is notified after every headless step.
type Observer interface {
	Observe(w *World, t float64)
}

// Sample is one recorded row of a headless run.
type Sample struct {
	Time      float64
	BodyCount int
	Energy    float64
	Px, Py    float64
	AngularL  float64
}

// RunResult collects what a headless run produced.
type RunResult struct {
	Samples     []Sample
	StepsTaken  int
	EnergyDrift float64
	Errors      []error
}

// Run advances the world headlessly for duration at a fixed dt, sampling
// diagnostics after every step. Unlike Frame, there is no display to pace
// against; the caller picks dt. Cancellation stops the run early with the
// partial result.
func (w *World) Run(ctx context.Context, duration, dt float64, obs ...Observer) (*RunResult, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", duration)
	}

	steps := int(duration / dt)
	result := &RunResult{Samples: make([]Sample, 0, steps+1)}

	initialEnergy := w.Energy()
	result.Samples = append(result.Samples, w.sample(0))

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		w.Step(dt)
		t += dt

		if !w.valid() {
			result.Errors = append(result.Errors, StepError{Step: i, Message: "invalid state (NaN/Inf)"})
			break
		}

		result.StepsTaken++
		result.Samples = append(result.Samples, w.sample(t))
		for _, o := range obs {
			o.Observe(w, t)
		}
	}

	result.EnergyDrift = EnergyDrift(initialEnergy, w.Energy())
	return result, nil
}

func (w *World) sample(t float64) Sample {
	px, py := w.Momentum()
	return Sample{
		Time:      t,
		BodyCount: len(w.Bodies),
		Energy:    w.Energy(),
		Px:        px,
		Py:        py,
		AngularL:  w.AngularMomentum(),
	}
}
