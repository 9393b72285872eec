package box2dlite

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// B2Collision.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Box vertex and edge numbering:
///
///        ^ y
///        |
///        e1
///   v2 ------ v1
///    |        |
/// e2 |        | e4  --> x
///    |        |
///   v3 ------ v4
///        e3
var B2EdgeNumber = struct {
	B2_noEdge uint8
	B2_edge1  uint8
	B2_edge2  uint8
	B2_edge3  uint8
	B2_edge4  uint8
}{
	B2_noEdge: 0,
	B2_edge1:  1,
	B2_edge2:  2,
	B2_edge3:  3,
	B2_edge4:  4,
}

/// Candidate separating axes, in test order.
var B2Axis = struct {
	FACE_A_X uint8
	FACE_A_Y uint8
	FACE_B_X uint8
	FACE_B_Y uint8
}{
	FACE_A_X: 0,
	FACE_A_Y: 1,
	FACE_B_X: 2,
	FACE_B_Y: 3,
}

/// The edges that intersect to form the contact point.
/// This must be 4 bytes or less.
type B2FeaturePair struct {
	InEdge1  uint8
	OutEdge1 uint8
	InEdge2  uint8
	OutEdge2 uint8
}

func MakeB2FeaturePair() B2FeaturePair {
	return B2FeaturePair{}
}

/// Contact ids to facilitate warm starting.
///< Used to quickly compare contact ids.
func (fp B2FeaturePair) Key() uint32 {
	var key uint32 = 0
	key |= uint32(fp.InEdge1)
	key |= uint32(fp.OutEdge1) << 8
	key |= uint32(fp.InEdge2) << 16
	key |= uint32(fp.OutEdge2) << 24
	return key
}

func (fp *B2FeaturePair) SetKey(key uint32) {
	fp.InEdge1 = uint8(key & 0xFF)
	fp.OutEdge1 = uint8(key >> 8 & 0xFF)
	fp.InEdge2 = uint8(key >> 16 & 0xFF)
	fp.OutEdge2 = uint8(key >> 24 & 0xFF)
}

func (fp B2FeaturePair) Equals(other B2FeaturePair) bool {
	return fp.Key() == other.Key()
}

/// Swap the edges of box 1 with the edges of box 2.
func (fp *B2FeaturePair) Flip() {
	fp.InEdge1, fp.InEdge2 = fp.InEdge2, fp.InEdge1
	fp.OutEdge1, fp.OutEdge2 = fp.OutEdge2, fp.OutEdge1
}

/// Used for computing contact points.
type B2ClipVertex struct {
	V  B2Vec2
	Fp B2FeaturePair
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// B2Collision.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Clipping for contact manifolds.
/// Keeps the part of the segment vIn behind the line normal.x = offset and
/// records clipEdge in the feature of a newly created intersection point.
func B2ClipSegmentToLine(vOut []B2ClipVertex, vIn []B2ClipVertex, normal B2Vec2, offset float64, clipEdge uint8) int {

	// Start with no output points
	numOut := 0

	// Calculate the distance of end points to the line
	distance0 := B2Vec2Dot(normal, vIn[0].V) - offset
	distance1 := B2Vec2Dot(normal, vIn[1].V) - offset

	// If the points are behind the plane
	if distance0 <= 0.0 {
		vOut[numOut] = vIn[0]
		numOut++
	}

	if distance1 <= 0.0 {
		vOut[numOut] = vIn[1]
		numOut++
	}

	// If the points are on different sides of the plane
	if distance0*distance1 < 0.0 {
		// Find intersection point of edge and plane
		interp := distance0 / (distance0 - distance1)
		vOut[numOut].V = B2Vec2Add(
			vIn[0].V,
			B2Vec2MulScalar(interp, B2Vec2Sub(vIn[1].V, vIn[0].V)),
		)

		if distance0 > 0.0 {
			vOut[numOut].Fp = vIn[0].Fp
			vOut[numOut].Fp.InEdge1 = clipEdge
			vOut[numOut].Fp.InEdge2 = B2EdgeNumber.B2_noEdge
		} else {
			vOut[numOut].Fp = vIn[1].Fp
			vOut[numOut].Fp.OutEdge1 = clipEdge
			vOut[numOut].Fp.OutEdge2 = B2EdgeNumber.B2_noEdge
		}
		numOut++
	}

	return numOut
}

/// Find the edge of the incident box (half extents h, placed at pos with
/// rotation rot) that faces the reference normal the most, in world space.
func B2ComputeIncidentEdge(c []B2ClipVertex, h B2Vec2, pos B2Vec2, rot B2Mat22, normal B2Vec2) {

	// The normal is from the reference box. Convert it
	// to the incident box's frame and flip sign.
	n := B2Mat22Vec2Mul(rot.Transpose(), normal).OperatorNegate()
	nAbs := B2Vec2Abs(n)

	if nAbs.X > nAbs.Y {
		if B2Sign(n.X) > 0.0 {
			c[0].V.Set(h.X, -h.Y)
			c[0].Fp.InEdge2 = B2EdgeNumber.B2_edge3
			c[0].Fp.OutEdge2 = B2EdgeNumber.B2_edge4

			c[1].V.Set(h.X, h.Y)
			c[1].Fp.InEdge2 = B2EdgeNumber.B2_edge4
			c[1].Fp.OutEdge2 = B2EdgeNumber.B2_edge1
		} else {
			c[0].V.Set(-h.X, h.Y)
			c[0].Fp.InEdge2 = B2EdgeNumber.B2_edge1
			c[0].Fp.OutEdge2 = B2EdgeNumber.B2_edge2

			c[1].V.Set(-h.X, -h.Y)
			c[1].Fp.InEdge2 = B2EdgeNumber.B2_edge2
			c[1].Fp.OutEdge2 = B2EdgeNumber.B2_edge3
		}
	} else {
		if B2Sign(n.Y) > 0.0 {
			c[0].V.Set(h.X, h.Y)
			c[0].Fp.InEdge2 = B2EdgeNumber.B2_edge4
			c[0].Fp.OutEdge2 = B2EdgeNumber.B2_edge1

			c[1].V.Set(-h.X, h.Y)
			c[1].Fp.InEdge2 = B2EdgeNumber.B2_edge1
			c[1].Fp.OutEdge2 = B2EdgeNumber.B2_edge2
		} else {
			c[0].V.Set(-h.X, -h.Y)
			c[0].Fp.InEdge2 = B2EdgeNumber.B2_edge2
			c[0].Fp.OutEdge2 = B2EdgeNumber.B2_edge3

			c[1].V.Set(h.X, -h.Y)
			c[1].Fp.InEdge2 = B2EdgeNumber.B2_edge3
			c[1].Fp.OutEdge2 = B2EdgeNumber.B2_edge4
		}
	}

	c[0].V = B2Vec2Add(pos, B2Mat22Vec2Mul(rot, c[0].V))
	c[1].V = B2Vec2Add(pos, B2Mat22Vec2Mul(rot, c[1].V))
}
