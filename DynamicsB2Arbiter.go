package box2dlite

import (
	"fmt"
	"math"
)

/// Switches for the sequential impulse solver. Every switch on is the
/// reference behavior; turning them off is useful to study the solver.
type B2SolverSettings struct {
	/// Carry accumulated impulses across steps and apply them before solving.
	WarmStarting bool

	/// Clamp the accumulated impulse instead of each increment.
	AccumulateImpulses bool

	/// Push overlapping boxes apart with a Baumgarte velocity bias.
	PositionCorrection bool
}

func MakeB2SolverSettings() B2SolverSettings {
	return B2SolverSettings{
		WarmStarting:       true,
		AccumulateImpulses: true,
		PositionCorrection: true,
	}
}

/// Identifies an arbiter by its body pair. The pair is unordered: two keys
/// with swapped bodies are equal.
type B2ArbiterKey struct {
	Body1 *B2Body
	Body2 *B2Body
}

func MakeB2ArbiterKey(b1, b2 *B2Body) B2ArbiterKey {
	return B2ArbiterKey{
		Body1: b1,
		Body2: b2,
	}
}

func (key B2ArbiterKey) Equals(other B2ArbiterKey) bool {
	return (key.Body1 == other.Body1 && key.Body2 == other.Body2) ||
		(key.Body1 == other.Body2 && key.Body2 == other.Body1)
}

/// An arbiter holds the contact points and solver state of one pair of
/// touching bodies. Body1 always has the higher registration id.
type B2Arbiter struct {
	Contacts    []B2Contact
	NumContacts int

	Body1 *B2Body
	Body2 *B2Body

	/// Combined friction
	Friction float64

	Settings B2SolverSettings
}

/// Build the arbiter of a body pair and run the narrow phase on it.
func NewB2Arbiter(b1 *B2Body, b2 *B2Body) (*B2Arbiter, error) {
	if b1 == nil || b2 == nil {
		return nil, fmt.Errorf("arbiter needs two bodies: %w", ErrInvalidArgumentType)
	}

	if b1 == b2 {
		return nil, fmt.Errorf("arbiter needs two distinct bodies: %w", ErrInvalidArgumentCount)
	}

	arbiter := &B2Arbiter{
		Settings: MakeB2SolverSettings(),
	}

	if b1.id > b2.id {
		arbiter.Body1 = b1
		arbiter.Body2 = b2
	} else {
		arbiter.Body1 = b2
		arbiter.Body2 = b1
	}

	arbiter.Contacts = B2Collide(arbiter.Body1, arbiter.Body2)
	arbiter.NumContacts = len(arbiter.Contacts)

	arbiter.Friction = math.Sqrt(arbiter.Body1.Friction * arbiter.Body2.Friction)

	return arbiter, nil
}

func (arbiter B2Arbiter) GetKey() B2ArbiterKey {
	return MakeB2ArbiterKey(arbiter.Body1, arbiter.Body2)
}

func (arbiter B2Arbiter) GetContacts() []B2Contact {
	return arbiter.Contacts[:arbiter.NumContacts]
}

func (arbiter B2Arbiter) GetNumContacts() int {
	return arbiter.NumContacts
}

/// Match old contact features to new contact features and copy the stored
/// impulses to warm start the solver. Everything else comes from the new
/// contacts. Neither input is modified.
func B2MergeContacts(oldContacts []B2Contact, newContacts []B2Contact) []B2Contact {
	merged := make([]B2Contact, len(newContacts))

	for i := range newContacts {
		merged[i] = newContacts[i]
		key := newContacts[i].Feature.Key()

		for j := range oldContacts {
			cOld := &oldContacts[j]

			if cOld.Feature.Key() == key {
				merged[i].Pn = cOld.Pn
				merged[i].Pt = cOld.Pt
				merged[i].Pnb = cOld.Pnb
				break
			}
		}
	}

	return merged
}

/// Replace the contact set with a fresh one from the narrow phase, keeping
/// the accumulated impulses of the contacts that persisted.
func (arbiter *B2Arbiter) Update(newContacts []B2Contact) error {
	if len(newContacts) > B2_maxContactPoints {
		return fmt.Errorf("arbiter update with %d contacts, at most %d: %w", len(newContacts), B2_maxContactPoints, ErrInvalidArgumentCount)
	}

	if arbiter.Settings.WarmStarting {
		arbiter.Contacts = B2MergeContacts(arbiter.GetContacts(), newContacts)
	} else {
		arbiter.Contacts = make([]B2Contact, len(newContacts))
		for i := range newContacts {
			arbiter.Contacts[i] = newContacts[i]
			arbiter.Contacts[i].Pn = 0.0
			arbiter.Contacts[i].Pt = 0.0
			arbiter.Contacts[i].Pnb = 0.0
		}
	}

	arbiter.NumContacts = len(newContacts)

	return nil
}

func (arbiter *B2Arbiter) PreStep(inv_dt float64) {
	b1 := arbiter.Body1
	b2 := arbiter.Body2

	biasFactor := 0.0
	if arbiter.Settings.PositionCorrection {
		biasFactor = B2_biasFactor
	}

	for i := 0; i < arbiter.NumContacts; i++ {
		c := &arbiter.Contacts[i]

		c.R1 = B2Vec2Sub(c.Position, b1.Position)
		c.R2 = B2Vec2Sub(c.Position, b2.Position)

		// Precompute normal mass, tangent mass, and bias.
		rn1 := B2Vec2Dot(c.R1, c.Normal)
		rn2 := B2Vec2Dot(c.R2, c.Normal)
		kNormal := b1.InvMass + b2.InvMass
		kNormal += b1.InvI*(B2Vec2Dot(c.R1, c.R1)-rn1*rn1) + b2.InvI*(B2Vec2Dot(c.R2, c.R2)-rn2*rn2)
		c.MassNormal = 1.0 / kNormal

		tangent := B2Vec2CrossVectorScalar(c.Normal, 1.0)
		rt1 := B2Vec2Dot(c.R1, tangent)
		rt2 := B2Vec2Dot(c.R2, tangent)
		kTangent := b1.InvMass + b2.InvMass
		kTangent += b1.InvI*(B2Vec2Dot(c.R1, c.R1)-rt1*rt1) + b2.InvI*(B2Vec2Dot(c.R2, c.R2)-rt2*rt2)
		c.MassTangent = 1.0 / kTangent

		c.Bias = -biasFactor * inv_dt * math.Min(0.0, c.Separation+B2_allowedPenetration)

		if arbiter.Settings.AccumulateImpulses {
			// Apply normal + friction impulse
			P := B2Vec2Add(B2Vec2MulScalar(c.Pn, c.Normal), B2Vec2MulScalar(c.Pt, tangent))

			b1.Velocity.OperatorMinusInplace(B2Vec2MulScalar(b1.InvMass, P))
			b1.AngularVelocity -= b1.InvI * B2Vec2Cross(c.R1, P)

			b2.Velocity.OperatorPlusInplace(B2Vec2MulScalar(b2.InvMass, P))
			b2.AngularVelocity += b2.InvI * B2Vec2Cross(c.R2, P)
		}
	}
}

/// One relaxation pass over the contacts of this arbiter.
func (arbiter *B2Arbiter) ApplyImpulse() {
	b1 := arbiter.Body1
	b2 := arbiter.Body2

	for i := 0; i < arbiter.NumContacts; i++ {
		c := &arbiter.Contacts[i]

		// Relative velocity at contact
		dv := B2Vec2Sub(
			B2Vec2Sub(
				B2Vec2Add(b2.Velocity, B2Vec2CrossScalarVector(b2.AngularVelocity, c.R2)),
				b1.Velocity,
			),
			B2Vec2CrossScalarVector(b1.AngularVelocity, c.R1),
		)

		// Compute normal impulse
		vn := B2Vec2Dot(dv, c.Normal)

		dPn := c.MassNormal * (-vn + c.Bias)

		if arbiter.Settings.AccumulateImpulses {
			// Clamp the accumulated impulse
			Pn0 := c.Pn
			c.Pn = math.Max(Pn0+dPn, 0.0)
			dPn = c.Pn - Pn0
		} else {
			dPn = math.Max(dPn, 0.0)
		}

		// Apply contact impulse
		Pn := B2Vec2MulScalar(dPn, c.Normal)

		b1.Velocity.OperatorMinusInplace(B2Vec2MulScalar(b1.InvMass, Pn))
		b1.AngularVelocity -= b1.InvI * B2Vec2Cross(c.R1, Pn)

		b2.Velocity.OperatorPlusInplace(B2Vec2MulScalar(b2.InvMass, Pn))
		b2.AngularVelocity += b2.InvI * B2Vec2Cross(c.R2, Pn)

		// Relative velocity at contact
		dv = B2Vec2Sub(
			B2Vec2Sub(
				B2Vec2Add(b2.Velocity, B2Vec2CrossScalarVector(b2.AngularVelocity, c.R2)),
				b1.Velocity,
			),
			B2Vec2CrossScalarVector(b1.AngularVelocity, c.R1),
		)

		tangent := B2Vec2CrossVectorScalar(c.Normal, 1.0)
		vt := B2Vec2Dot(dv, tangent)
		dPt := c.MassTangent * (-vt)

		// Compute friction impulse
		maxPt := arbiter.Friction * c.Pn

		if arbiter.Settings.AccumulateImpulses {
			// Clamp friction
			oldTangentImpulse := c.Pt
			c.Pt = B2FloatClamp(oldTangentImpulse+dPt, -maxPt, maxPt)
			dPt = c.Pt - oldTangentImpulse
		} else {
			dPt = B2FloatClamp(dPt, -maxPt, maxPt)
		}

		// Apply contact impulse
		Pt := B2Vec2MulScalar(dPt, tangent)

		b1.Velocity.OperatorMinusInplace(B2Vec2MulScalar(b1.InvMass, Pt))
		b1.AngularVelocity -= b1.InvI * B2Vec2Cross(c.R1, Pt)

		b2.Velocity.OperatorPlusInplace(B2Vec2MulScalar(b2.InvMass, Pt))
		b2.AngularVelocity += b2.InvI * B2Vec2Cross(c.R2, Pt)
	}
}
