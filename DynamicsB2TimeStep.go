package box2dlite

/// Profiling data. Times are in milliseconds.
type B2Profile struct {
	Step       float64
	BroadPhase float64
	Integrate  float64
	PreStep    float64
	Solve      float64
	Positions  float64
}

func MakeB2Profile() B2Profile {
	return B2Profile{}
}

/// This is an internal structure.
type B2TimeStep struct {
	Dt           float64 // time step
	Inv_dt       float64 // inverse time step (0 if dt <= 0).
	Iterations   int
	WarmStarting bool
}

func MakeB2TimeStep(dt float64, iterations int) B2TimeStep {
	step := B2TimeStep{
		Dt:         dt,
		Iterations: iterations,
	}

	if dt > 0.0 {
		step.Inv_dt = 1.0 / dt
	} else {
		step.Inv_dt = 0.0
	}

	return step
}
