package box2dlite

import "math"

func B2Assert(a bool) {
	if !a {
		panic("B2Assert")
	}
}

/// Used as the mass and inertia of immovable bodies.
const B2_maxFloat = math.MaxFloat64
const B2_pi = math.Pi

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

// Collision

/// The maximum number of contact points between two boxes. Do
/// not change this value.
const B2_maxContactPoints = 2

/// Axis selection hysteresis. A later axis only replaces the current best
/// one if its separation exceeds relativeTol * best + absoluteTol * extent.
const B2_relativeTol = 0.95
const B2_absoluteTol = 0.01

// Dynamics

/// Penetration tolerated before the position bias kicks in. This is in meters.
const B2_allowedPenetration = 0.01

/// This scale factor controls how fast overlap is resolved. Ideally this would be 1 so
/// that overlap is removed in one time step. However using values close to 1 often lead
/// to overshoot.
const B2_biasFactor = 0.2

/// Friction coefficient given to new bodies.
const B2_defaultFriction = 0.2
