package box2dlite

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

/// The world class manages all physics entities and the dynamic simulation.
/// It is not safe for concurrent use: a Step must complete before any other
/// call, and bodies must not be mutated while it runs.
type B2World struct {
	M_bodies   []*B2Body
	M_joints   []*B2Joint
	M_arbiters B2ArbiterList

	M_gravity    B2Vec2
	M_iterations int

	// Next registration id.
	M_bodyCounter int

	M_settings B2SolverSettings

	M_contactFilter   B2ContactFilterInterface
	M_contactListener B2ContactListenerInterface

	M_profile B2Profile
}

func (world B2World) GetBodyList() []*B2Body {
	return world.M_bodies
}

func (world B2World) GetBodyCount() int {
	return len(world.M_bodies)
}

func (world B2World) GetJointList() []*B2Joint {
	return world.M_joints
}

func (world *B2World) GetArbiterList() *B2ArbiterList {
	return &world.M_arbiters
}

func (world *B2World) SetGravity(gravity B2Vec2) {
	world.M_gravity = gravity
}

func (world B2World) GetGravity() B2Vec2 {
	return world.M_gravity
}

/// Number of relaxation passes per step; at least one.
func (world *B2World) SetIterations(iterations int) {
	if iterations < 1 {
		iterations = 1
	}

	world.M_iterations = iterations
}

func (world B2World) GetIterations() int {
	return world.M_iterations
}

func (world *B2World) SetWarmStarting(flag bool) {
	world.M_settings.WarmStarting = flag
}

func (world B2World) GetWarmStarting() bool {
	return world.M_settings.WarmStarting
}

func (world *B2World) SetAccumulateImpulses(flag bool) {
	world.M_settings.AccumulateImpulses = flag
}

func (world B2World) GetAccumulateImpulses() bool {
	return world.M_settings.AccumulateImpulses
}

func (world *B2World) SetPositionCorrection(flag bool) {
	world.M_settings.PositionCorrection = flag
}

func (world B2World) GetPositionCorrection() bool {
	return world.M_settings.PositionCorrection
}

func (world *B2World) SetContactFilter(filter B2ContactFilterInterface) {
	world.M_contactFilter = filter
}

func (world *B2World) SetContactListener(listener B2ContactListenerInterface) {
	world.M_contactListener = listener
}

func (world B2World) GetProfile() B2Profile {
	return world.M_profile
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// B2World.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

func MakeB2World(gravity B2Vec2, iterations int) B2World {

	world := B2World{}

	world.M_bodies = make([]*B2Body, 0)
	world.M_joints = make([]*B2Joint, 0)
	world.M_arbiters = MakeB2ArbiterList()

	world.M_gravity = gravity
	world.SetIterations(iterations)

	world.M_bodyCounter = 0

	world.M_settings = MakeB2SolverSettings()

	world.M_contactFilter = &B2ContactFilter{}
	world.M_contactListener = nil

	world.M_profile = MakeB2Profile()

	return world
}

func NewB2World(gravity B2Vec2, iterations int) *B2World {
	res := MakeB2World(gravity, iterations)
	return &res
}

/// Register a body and give it the next id.
func (world *B2World) AddBody(body *B2Body) error {
	if body == nil {
		return fmt.Errorf("add body: %w", ErrInvalidArgumentType)
	}

	for _, b := range world.M_bodies {
		if b == body {
			return fmt.Errorf("add body %d twice: %w", body.id, ErrInvalidArgumentType)
		}
	}

	body.id = world.M_bodyCounter
	world.M_bodyCounter++
	world.M_bodies = append(world.M_bodies, body)

	return nil
}

func (world *B2World) AddJoint(joint *B2Joint) error {
	if joint == nil {
		return fmt.Errorf("add joint: %w", ErrInvalidArgumentType)
	}

	world.M_joints = append(world.M_joints, joint)

	return nil
}

/// Forget all bodies, joints and arbiters. Ids keep counting up.
func (world *B2World) Clear() {
	world.M_bodies = make([]*B2Body, 0)
	world.M_joints = make([]*B2Joint, 0)
	world.M_arbiters.Clear()
}

/// Take a time step. This performs collision detection, integration,
/// and constraint solution.
/// @param dt the amount of time to simulate, this should not vary.
func (world *B2World) Step(dt float64) {
	stepTimer := MakeB2Timer()

	step := MakeB2TimeStep(dt, world.M_iterations)
	step.WarmStarting = world.M_settings.WarmStarting

	// Determine overlapping bodies and update contact points.
	{
		timer := MakeB2Timer()
		world.BroadPhase()
		world.M_profile.BroadPhase = timer.GetMilliseconds()
	}

	// Integrate forces.
	{
		timer := MakeB2Timer()
		for _, b := range world.M_bodies {
			if b.InvMass == 0.0 {
				continue
			}

			b.Velocity.OperatorPlusInplace(
				B2Vec2MulScalar(step.Dt, B2Vec2Add(world.M_gravity, B2Vec2MulScalar(b.InvMass, b.Force))),
			)
			b.AngularVelocity += step.Dt * b.InvI * b.Torque
		}
		world.M_profile.Integrate = timer.GetMilliseconds()
	}

	// Perform pre-steps.
	{
		timer := MakeB2Timer()
		for i := 0; i < world.M_arbiters.GetLength(); i++ {
			arbiter := world.M_arbiters.Get(i)
			arbiter.Settings = world.M_settings
			arbiter.PreStep(step.Inv_dt)
		}

		// Joints are stored but not solved yet.

		world.M_profile.PreStep = timer.GetMilliseconds()
	}

	// Perform iterations.
	// Arbiters are relaxed in insertion order. Traces depend on this order.
	{
		timer := MakeB2Timer()
		for i := 0; i < step.Iterations; i++ {
			for j := 0; j < world.M_arbiters.GetLength(); j++ {
				world.M_arbiters.Get(j).ApplyImpulse()
			}
		}
		world.M_profile.Solve = timer.GetMilliseconds()
	}

	if world.M_contactListener != nil {
		for i := 0; i < world.M_arbiters.GetLength(); i++ {
			world.M_contactListener.PostSolve(world.M_arbiters.Get(i))
		}
	}

	// Integrate velocities.
	{
		timer := MakeB2Timer()
		for _, b := range world.M_bodies {
			b.Position.OperatorPlusInplace(B2Vec2MulScalar(step.Dt, b.Velocity))
			b.Rotation += step.Dt * b.AngularVelocity

			b.Force.SetZero()
			b.Torque = 0.0
		}
		world.M_profile.Positions = timer.GetMilliseconds()
	}

	world.M_profile.Step = stepTimer.GetMilliseconds()
}

/// O(n^2) broad-phase. Every filtered pair runs the narrow phase; touching
/// pairs get or refresh an arbiter, separated pairs lose theirs.
func (world *B2World) BroadPhase() {
	bodyCount := len(world.M_bodies)

	for i := 0; i < bodyCount; i++ {
		bi := world.M_bodies[i]

		for j := i + 1; j < bodyCount; j++ {
			bj := world.M_bodies[j]

			if world.M_contactFilter != nil && !world.M_contactFilter.ShouldCollide(bi, bj) {
				continue
			}

			newArb, err := NewB2Arbiter(bi, bj)
			B2Assert(err == nil)
			newArb.Settings = world.M_settings

			index, found := world.M_arbiters.GetIndex(newArb)

			if newArb.NumContacts > 0 {
				if found {
					arbiter := world.M_arbiters.Get(index)
					arbiter.Settings = world.M_settings
					err := arbiter.Update(newArb.Contacts)
					B2Assert(err == nil)
				} else {
					world.M_arbiters.Add(newArb)
					if world.M_contactListener != nil {
						world.M_contactListener.BeginContact(newArb)
					}
				}
			} else if found {
				arbiter := world.M_arbiters.Get(index)
				world.M_arbiters.Remove(arbiter)
				arbiter.Contacts = nil
				arbiter.NumContacts = 0
				if world.M_contactListener != nil {
					world.M_contactListener.EndContact(arbiter)
				}
			}
		}
	}
}

/// Dump the world state: gravity, solver settings, bodies and arbiters.
func (world *B2World) Dump(w io.Writer) {
	config := spew.ConfigState{
		Indent:                  "\t",
		MaxDepth:                3,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	fmt.Fprintf(w, "gravity = (%.15e, %.15e);\n", world.M_gravity.X, world.M_gravity.Y)
	fmt.Fprintf(w, "iterations = %d;\n", world.M_iterations)
	fmt.Fprintf(w, "settings = %+v;\n", world.M_settings)

	for _, b := range world.M_bodies {
		fmt.Fprintf(w, "bodies[%d] = ", b.id)
		config.Fdump(w, b)
	}

	for i := 0; i < world.M_arbiters.GetLength(); i++ {
		arbiter := world.M_arbiters.Get(i)
		fmt.Fprintf(w, "arbiters[%d] = (%d, %d) ", i, arbiter.Body1.id, arbiter.Body2.id)
		config.Fdump(w, arbiter.GetContacts())
	}
}
