package box2dlite

/// A rigid box. The world owns registered bodies; arbiters and joints refer
/// to them by pointer and never copy them.
///
/// Position, Rotation, Velocity, AngularVelocity and Friction may be written
/// by the host before the first step and read after each step. They must not
/// be mutated while a step is running.
type B2Body struct {
	Position        B2Vec2
	Rotation        float64
	Velocity        B2Vec2
	AngularVelocity float64

	// Accumulated per step, cleared by the world at the end of every step.
	Force  B2Vec2
	Torque float64

	Friction float64

	/// Full extents of the box along its local axes.
	Width B2Vec2

	Mass, InvMass float64

	// Rotational inertia about the center of mass.
	I, InvI float64

	UserData interface{}

	id int
}

/// A body starts immovable: unit width, infinite mass and inertia.
func MakeB2Body() B2Body {
	return B2Body{
		Position:        MakeB2Vec2(0, 0),
		Rotation:        0.0,
		Velocity:        MakeB2Vec2(0, 0),
		AngularVelocity: 0.0,
		Force:           MakeB2Vec2(0, 0),
		Torque:          0.0,
		Friction:        B2_defaultFriction,
		Width:           MakeB2Vec2(1.0, 1.0),
		Mass:            B2_maxFloat,
		InvMass:         0.0,
		I:               B2_maxFloat,
		InvI:            0.0,
	}
}

func NewB2Body() *B2Body {
	res := MakeB2Body()
	return &res
}

/// Reset the body to rest at the origin and give it a new size and mass.
/// A mass of B2_maxFloat or more makes the body immovable.
func (body *B2Body) Set(width B2Vec2, mass float64) {
	body.Position.SetZero()
	body.Rotation = 0.0
	body.Velocity.SetZero()
	body.AngularVelocity = 0.0
	body.Force.SetZero()
	body.Torque = 0.0
	body.Friction = B2_defaultFriction

	body.Width = width
	body.Mass = mass

	if mass < B2_maxFloat {
		body.InvMass = 1.0 / mass
		body.I = mass * (width.X*width.X + width.Y*width.Y) / 12.0
		body.InvI = 1.0 / body.I
	} else {
		body.InvMass = 0.0
		body.I = B2_maxFloat
		body.InvI = 0.0
	}
}

func (body *B2Body) AddForce(force B2Vec2) {
	body.Force.OperatorPlusInplace(force)
}

func (body *B2Body) AddTorque(torque float64) {
	body.Torque += torque
}

/// Static bodies have zero inverse mass and zero inverse inertia.
func (body B2Body) IsStatic() bool {
	return body.InvMass == 0.0
}

/// Registration id, assigned by the world. Only meaningful once added.
func (body B2Body) GetId() int {
	return body.id
}

func (body B2Body) GetHalfExtents() B2Vec2 {
	return B2Vec2MulScalar(0.5, body.Width)
}

func (body B2Body) GetRotationMatrix() B2Mat22 {
	return MakeB2Mat22FromAngle(body.Rotation)
}

/// Velocity of a world point attached to the body.
func (body B2Body) GetLinearVelocityFromWorldPoint(worldPoint B2Vec2) B2Vec2 {
	return B2Vec2Add(
		body.Velocity,
		B2Vec2CrossScalarVector(body.AngularVelocity, B2Vec2Sub(worldPoint, body.Position)),
	)
}
