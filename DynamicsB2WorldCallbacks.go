package box2dlite

type B2ContactFilterInterface interface {
	ShouldCollide(bodyA *B2Body, bodyB *B2Body) bool
}

type B2ContactListenerInterface interface {
	/// Called when two bodies begin to touch, right after their arbiter joins the world.
	BeginContact(arbiter *B2Arbiter)

	/// Called when two bodies cease to touch, right after their arbiter leaves the world.
	/// The arbiter still holds the bodies but no contacts.
	EndContact(arbiter *B2Arbiter)

	/// This lets you inspect an arbiter after the solver is finished. This is useful
	/// for inspecting impulses.
	/// Note: positions are not integrated yet when this is called.
	PostSolve(arbiter *B2Arbiter)
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// B2WorldCallbacks.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type B2ContactFilter struct {
}

// Return true if contact calculations should be performed between these two bodies.
// Two immovable bodies never collide, neither does a body with itself.
// If you implement your own collision filter you may want to build from this implementation.
func (cf *B2ContactFilter) ShouldCollide(bodyA *B2Body, bodyB *B2Body) bool {
	if bodyA == bodyB {
		return false
	}

	return !(bodyA.IsStatic() && bodyB.IsStatic())
}
