package box2dlite

// Box vs box collision using the separating axis test on the four face
// normals, then clipping the incident edge against the side planes of the
// reference face.
//
// Find the face of min penetration on A, then on B; exit early if a face separates.
// Choose the reference face with hysteresis so the normal does not flicker.
// Find incident edge
// Clip

// The normal points from A to B
func B2Collide(bodyA *B2Body, bodyB *B2Body) []B2Contact {

	// Setup
	hA := bodyA.GetHalfExtents()
	hB := bodyB.GetHalfExtents()

	posA := bodyA.Position
	posB := bodyB.Position

	rotA := bodyA.GetRotationMatrix()
	rotB := bodyB.GetRotationMatrix()

	rotAT := rotA.Transpose()
	rotBT := rotB.Transpose()

	dp := B2Vec2Sub(posB, posA)
	dA := B2Mat22Vec2Mul(rotAT, dp)
	dB := B2Mat22Vec2Mul(rotBT, dp)

	C := B2Mat22Mul(rotAT, rotB)
	absC := B2Mat22Abs(C)
	absCT := absC.Transpose()

	// Box A faces
	faceA := B2Vec2Sub(B2Vec2Sub(B2Vec2Abs(dA), hA), B2Mat22Vec2Mul(absC, hB))
	if faceA.X > 0.0 || faceA.Y > 0.0 {
		return nil
	}

	// Box B faces
	faceB := B2Vec2Sub(B2Vec2Sub(B2Vec2Abs(dB), hB), B2Mat22Vec2Mul(absCT, hA))
	if faceB.X > 0.0 || faceB.Y > 0.0 {
		return nil
	}

	// Find best axis

	// Box A faces
	axis := B2Axis.FACE_A_X
	separation := faceA.X
	normal := rotA.Col1
	if dA.X <= 0.0 {
		normal = rotA.Col1.OperatorNegate()
	}

	if faceA.Y > B2_relativeTol*separation+B2_absoluteTol*hA.Y {
		axis = B2Axis.FACE_A_Y
		separation = faceA.Y
		normal = rotA.Col2
		if dA.Y <= 0.0 {
			normal = rotA.Col2.OperatorNegate()
		}
	}

	// Box B faces
	if faceB.X > B2_relativeTol*separation+B2_absoluteTol*hB.X {
		axis = B2Axis.FACE_B_X
		separation = faceB.X
		normal = rotB.Col1
		if dB.X <= 0.0 {
			normal = rotB.Col1.OperatorNegate()
		}
	}

	if faceB.Y > B2_relativeTol*separation+B2_absoluteTol*hB.Y {
		axis = B2Axis.FACE_B_Y
		separation = faceB.Y
		normal = rotB.Col2
		if dB.Y <= 0.0 {
			normal = rotB.Col2.OperatorNegate()
		}
	}

	// Setup clipping plane data based on the separating axis
	var frontNormal, sideNormal B2Vec2
	incidentEdge := make([]B2ClipVertex, 2)
	var front, negSide, posSide float64
	var negEdge, posEdge uint8

	// Compute the clipping lines and the line segment to be clipped.
	switch axis {
	case B2Axis.FACE_A_X:
		frontNormal = normal
		front = B2Vec2Dot(posA, frontNormal) + hA.X
		sideNormal = rotA.Col2
		side := B2Vec2Dot(posA, sideNormal)
		negSide = -side + hA.Y
		posSide = side + hA.Y
		negEdge = B2EdgeNumber.B2_edge3
		posEdge = B2EdgeNumber.B2_edge1
		B2ComputeIncidentEdge(incidentEdge, hB, posB, rotB, frontNormal)

	case B2Axis.FACE_A_Y:
		frontNormal = normal
		front = B2Vec2Dot(posA, frontNormal) + hA.Y
		sideNormal = rotA.Col1
		side := B2Vec2Dot(posA, sideNormal)
		negSide = -side + hA.X
		posSide = side + hA.X
		negEdge = B2EdgeNumber.B2_edge2
		posEdge = B2EdgeNumber.B2_edge4
		B2ComputeIncidentEdge(incidentEdge, hB, posB, rotB, frontNormal)

	case B2Axis.FACE_B_X:
		frontNormal = normal.OperatorNegate()
		front = B2Vec2Dot(posB, frontNormal) + hB.X
		sideNormal = rotB.Col2
		side := B2Vec2Dot(posB, sideNormal)
		negSide = -side + hB.Y
		posSide = side + hB.Y
		negEdge = B2EdgeNumber.B2_edge3
		posEdge = B2EdgeNumber.B2_edge1
		B2ComputeIncidentEdge(incidentEdge, hA, posA, rotA, frontNormal)

	case B2Axis.FACE_B_Y:
		frontNormal = normal.OperatorNegate()
		front = B2Vec2Dot(posB, frontNormal) + hB.Y
		sideNormal = rotB.Col1
		side := B2Vec2Dot(posB, sideNormal)
		negSide = -side + hB.X
		posSide = side + hB.X
		negEdge = B2EdgeNumber.B2_edge2
		posEdge = B2EdgeNumber.B2_edge4
		B2ComputeIncidentEdge(incidentEdge, hA, posA, rotA, frontNormal)
	}

	// Clip other face with 5 box planes (1 face plane, 4 edge planes)
	clipPoints1 := make([]B2ClipVertex, 2)
	clipPoints2 := make([]B2ClipVertex, 2)

	// Clip to box side 1
	np := B2ClipSegmentToLine(clipPoints1, incidentEdge, sideNormal.OperatorNegate(), negSide, negEdge)
	if np < 2 {
		return nil
	}

	// Clip to negative box side 1
	np = B2ClipSegmentToLine(clipPoints2, clipPoints1, sideNormal, posSide, posEdge)
	if np < 2 {
		return nil
	}

	// Now clipPoints2 contains the clipping points.
	// Due to roundoff, it is possible that clipping removes all points.
	contacts := make([]B2Contact, 0, B2_maxContactPoints)
	for i := 0; i < B2_maxContactPoints; i++ {
		sep := B2Vec2Dot(frontNormal, clipPoints2[i].V) - front

		if sep <= 0.0 {
			c := MakeB2Contact()
			c.Separation = sep
			c.Normal = normal
			// Slide contact point onto reference face (easy to cull)
			c.Position = B2Vec2Sub(clipPoints2[i].V, B2Vec2MulScalar(sep, frontNormal))
			c.Feature = clipPoints2[i].Fp
			if axis == B2Axis.FACE_B_X || axis == B2Axis.FACE_B_Y {
				c.Feature.Flip()
			}
			contacts = append(contacts, c)
		}
	}

	return contacts
}
