package box2dlite_test

import (
	"math"
	"testing"

	"github.com/ByteArena/box2dlite"
	"github.com/davecgh/go-spew/spew"
)

func makeBox(x, y, w, h, mass float64) *box2dlite.B2Body {
	body := box2dlite.NewB2Body()
	body.Set(box2dlite.MakeB2Vec2(w, h), mass)
	body.Position.Set(x, y)
	return body
}

func TestCollideDisjointBoxes(t *testing.T) {
	a := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	b := makeBox(3.0, 0.0, 1.0, 1.0, 1.0)

	if contacts := box2dlite.B2Collide(a, b); len(contacts) != 0 {
		t.Fatalf("expected no contacts, got %s", spew.Sdump(contacts))
	}

	// Separated along y only.
	b.Position.Set(0.2, 1.5)
	if contacts := box2dlite.B2Collide(a, b); len(contacts) != 0 {
		t.Fatalf("expected no contacts, got %s", spew.Sdump(contacts))
	}
}

func TestCollideOverlappingBoxes(t *testing.T) {
	a := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	b := makeBox(0.5, 0.0, 1.0, 1.0, 1.0)

	contacts := box2dlite.B2Collide(a, b)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %s", spew.Sdump(contacts))
	}

	wantPositions := []box2dlite.B2Vec2{
		box2dlite.MakeB2Vec2(0.5, 0.5),
		box2dlite.MakeB2Vec2(0.5, -0.5),
	}

	for i, c := range contacts {
		if !vecNearlyEqual(c.Normal, box2dlite.MakeB2Vec2(1.0, 0.0), epsilon) {
			t.Errorf("contact %d: normal %v should point from A to B", i, c.Normal)
		}

		if !nearlyEqual(c.Separation, -0.5, epsilon) {
			t.Errorf("contact %d: separation %v", i, c.Separation)
		}

		if !vecNearlyEqual(c.Position, wantPositions[i], epsilon) {
			t.Errorf("contact %d: position %v, want %v", i, c.Position, wantPositions[i])
		}
	}

	if contacts[0].Feature.Key() == contacts[1].Feature.Key() {
		t.Fatalf("the two contacts share a feature: %s", spew.Sdump(contacts))
	}

	// Swapping the bodies reverses the normal.
	reversed := box2dlite.B2Collide(b, a)
	if len(reversed) != 2 {
		t.Fatalf("expected 2 contacts, got %s", spew.Sdump(reversed))
	}
	for i, c := range reversed {
		if !vecNearlyEqual(c.Normal, box2dlite.MakeB2Vec2(-1.0, 0.0), epsilon) {
			t.Errorf("reversed contact %d: normal %v", i, c.Normal)
		}
	}
}

func TestCollideFeatureStability(t *testing.T) {
	a := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	b := makeBox(0.3, 0.8, 1.0, 1.0, 1.0)
	b.Rotation = 0.1

	first := box2dlite.B2Collide(a, b)
	second := box2dlite.B2Collide(a, b)

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("unstable contact count: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i].Feature.Key() != second[i].Feature.Key() {
			t.Fatalf("contact %d: feature %+v then %+v", i, first[i].Feature, second[i].Feature)
		}
	}
}

func TestCollideResting(t *testing.T) {
	floor := makeBox(0.0, -0.5, 20.0, 1.0, box2dlite.B2_maxFloat)
	box := makeBox(0.0, 0.5, 1.0, 1.0, 1.0)

	contacts := box2dlite.B2Collide(box, floor)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %s", spew.Sdump(contacts))
	}

	for i, c := range contacts {
		if !vecNearlyEqual(c.Normal, box2dlite.MakeB2Vec2(0.0, -1.0), epsilon) {
			t.Errorf("contact %d: normal %v", i, c.Normal)
		}

		if !nearlyEqual(c.Separation, 0.0, epsilon) || !nearlyEqual(c.Position.Y, 0.0, epsilon) {
			t.Errorf("contact %d: %+v", i, c)
		}

		if !nearlyEqual(c.Position.X*c.Position.X, 0.25, epsilon) {
			t.Errorf("contact %d: x = %v, want +-0.5", i, c.Position.X)
		}
	}
}

func TestCollideReferenceOnSecondBoxFlipsFeatures(t *testing.T) {
	box := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	box.Rotation = 0.6
	floor := makeBox(0.0, -1.15, 20.0, 1.0, box2dlite.B2_maxFloat)

	// The floor top face is the reference face in both calls.
	boxFirst := box2dlite.B2Collide(box, floor)
	floorFirst := box2dlite.B2Collide(floor, box)

	if len(boxFirst) != 1 || len(floorFirst) != 1 {
		t.Fatalf("expected one corner contact, got %s and %s", spew.Sdump(boxFirst), spew.Sdump(floorFirst))
	}

	if !nearlyEqual(boxFirst[0].Separation, floorFirst[0].Separation, epsilon) ||
		!nearlyEqual(boxFirst[0].Separation, -0.045, 1e-3) {
		t.Fatalf("separation: %v and %v", boxFirst[0].Separation, floorFirst[0].Separation)
	}

	if !vecNearlyEqual(boxFirst[0].Normal, box2dlite.MakeB2Vec2(0.0, -1.0), epsilon) ||
		!vecNearlyEqual(floorFirst[0].Normal, box2dlite.MakeB2Vec2(0.0, 1.0), epsilon) {
		t.Fatalf("normals: %v and %v", boxFirst[0].Normal, floorFirst[0].Normal)
	}

	if !vecNearlyEqual(boxFirst[0].Position, floorFirst[0].Position, epsilon) ||
		!nearlyEqual(boxFirst[0].Position.Y, -0.65, epsilon) {
		t.Fatalf("positions: %v and %v", boxFirst[0].Position, floorFirst[0].Position)
	}

	wantFloorFirst := box2dlite.B2FeaturePair{InEdge2: box2dlite.B2EdgeNumber.B2_edge2, OutEdge2: box2dlite.B2EdgeNumber.B2_edge3}
	if floorFirst[0].Feature != wantFloorFirst {
		t.Fatalf("feature with the floor first: got %+v, want %+v", floorFirst[0].Feature, wantFloorFirst)
	}

	// Edges of the first argument are always reported as edges of box 1.
	flipped := floorFirst[0].Feature
	flipped.Flip()
	if boxFirst[0].Feature != flipped {
		t.Fatalf("feature with the box first: got %+v, want %+v", boxFirst[0].Feature, flipped)
	}
}

func TestCollideAxisSelection(t *testing.T) {
	// Unit box A at the origin, unit box B at (0.5, y). The x overlap is
	// fixed at 0.5, so the A.y face only wins once its separation beats
	// 0.95 * -0.5 + 0.01 * 0.5 = -0.47, that is for y > 0.53.
	cases := []struct {
		name   string
		y      float64
		normal box2dlite.B2Vec2
	}{
		{"tie keeps the first axis", 0.5, box2dlite.MakeB2Vec2(1.0, 0.0)},
		{"below threshold", 0.51, box2dlite.MakeB2Vec2(1.0, 0.0)},
		{"at threshold", 0.53, box2dlite.MakeB2Vec2(1.0, 0.0)},
		{"beyond threshold", 0.6, box2dlite.MakeB2Vec2(0.0, 1.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
			b := makeBox(0.5, tc.y, 1.0, 1.0, 1.0)

			contacts := box2dlite.B2Collide(a, b)
			if len(contacts) == 0 {
				t.Fatalf("expected contacts at y = %v", tc.y)
			}

			for i, c := range contacts {
				if !vecNearlyEqual(c.Normal, tc.normal, epsilon) {
					t.Fatalf("contact %d: normal %v, want %v", i, c.Normal, tc.normal)
				}
			}
		})
	}
}

func TestCollideSecondBoxSideFace(t *testing.T) {
	// A small box tilted by 0.7 rad pokes its right corner into the left
	// face of a 2x2 box. The big box x face is the reference face.
	small := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	small.Rotation = 0.7
	big := makeBox(1.65, 0.0, 2.0, 2.0, 1.0)

	c, s := math.Cos(0.7), math.Sin(0.7)
	corner := box2dlite.MakeB2Vec2(0.5*c+0.5*s, 0.5*s-0.5*c)
	wantSeparation := 0.65 - corner.X

	smallFirst := box2dlite.B2Collide(small, big)
	if len(smallFirst) != 1 {
		t.Fatalf("expected one corner contact, got %s", spew.Sdump(smallFirst))
	}

	contact := smallFirst[0]
	if !vecNearlyEqual(contact.Normal, box2dlite.MakeB2Vec2(1.0, 0.0), epsilon) {
		t.Fatalf("normal: %v", contact.Normal)
	}

	if !nearlyEqual(contact.Separation, wantSeparation, epsilon) {
		t.Fatalf("separation: %v, want %v", contact.Separation, wantSeparation)
	}

	if !vecNearlyEqual(contact.Position, box2dlite.MakeB2Vec2(0.65, corner.Y), epsilon) {
		t.Fatalf("position: %v", contact.Position)
	}

	// The incident edge runs from edge 3 to edge 4 of the small box, which is box 1.
	want := box2dlite.B2FeaturePair{
		InEdge1:  box2dlite.B2EdgeNumber.B2_edge3,
		OutEdge1: box2dlite.B2EdgeNumber.B2_edge4,
	}
	if contact.Feature != want {
		t.Fatalf("feature: got %+v, want %+v", contact.Feature, want)
	}

	bigFirst := box2dlite.B2Collide(big, small)
	if len(bigFirst) != 1 {
		t.Fatalf("expected one corner contact, got %s", spew.Sdump(bigFirst))
	}

	if !vecNearlyEqual(bigFirst[0].Normal, box2dlite.MakeB2Vec2(-1.0, 0.0), epsilon) ||
		!vecNearlyEqual(bigFirst[0].Position, contact.Position, epsilon) {
		t.Fatalf("big box first: %+v", bigFirst[0])
	}

	unflipped := contact.Feature
	unflipped.Flip()
	if bigFirst[0].Feature != unflipped {
		t.Fatalf("feature with the big box first: got %+v, want %+v", bigFirst[0].Feature, unflipped)
	}
}
