package box2dlite

/// A contact point between two boxes. It holds details related to the
/// geometry and dynamics of the contact point.
/// Only the accumulated impulses survive from one step to the next; the
/// rest is rebuilt by the narrow phase every step.
/// Note: the impulses are used for internal caching and may not
/// provide reliable contact forces, especially for high speed collisions.
type B2Contact struct {
	Position B2Vec2
	Normal   B2Vec2 ///< world vector pointing from body 1 to body 2
	R1, R2   B2Vec2 ///< contact point relative to each body center

	Separation float64 ///< a negative value indicates overlap, in meters

	Pn  float64 ///< accumulated normal impulse
	Pt  float64 ///< accumulated tangent impulse
	Pnb float64 ///< accumulated normal impulse for position bias

	MassNormal, MassTangent float64
	Bias                    float64

	Feature B2FeaturePair ///< uniquely identifies a contact point between two boxes
}

func MakeB2Contact() B2Contact {
	return B2Contact{
		Position: MakeB2Vec2(0, 0),
		Normal:   MakeB2Vec2(0, 0),
		R1:       MakeB2Vec2(0, 0),
		R2:       MakeB2Vec2(0, 0),
		Feature:  MakeB2FeaturePair(),
	}
}

func NewB2Contact() *B2Contact {
	res := MakeB2Contact()
	return &res
}
