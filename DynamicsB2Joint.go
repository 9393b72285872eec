package box2dlite

/// A joint between two bodies. Joints are stored by the world but no joint
/// constraint is solved yet.
type B2Joint struct {
	/// The first attached body.
	Body1 *B2Body

	/// The second attached body.
	Body2 *B2Body

	/// Use this to attach application specific data to your joints.
	UserData interface{}
}

func NewB2Joint(b1 *B2Body, b2 *B2Body) *B2Joint {
	return &B2Joint{
		Body1: b1,
		Body2: b2,
	}
}

func (joint B2Joint) GetBody1() *B2Body {
	return joint.Body1
}

func (joint B2Joint) GetBody2() *B2Body {
	return joint.Body2
}
