package game

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRayCylinderHitsSideAtExpectedDistance(t *testing.T) {
	ray := rl.Ray{Position: rl.NewVector3(0, 1.5, 5), Direction: rl.NewVector3(0, 0, -1)}
	centre := rl.NewVector3(0, 1.5, -5)

	dist, hit := RayCylinder(ray, centre, 1.0, 3.0, 100)
	if !hit {
		t.Fatalf("expected straight-on ray to hit cylinder")
	}
	// Near side of the cylinder sits at z = -4, nine units from the origin.
	if math.Abs(float64(dist)-9) > 0.001 {
		t.Fatalf("expected hit at distance 9, got %.4f", dist)
	}
}

func TestRayCylinderMissesOutsideRadiusAndHeight(t *testing.T) {
	centre := rl.NewVector3(0, 1.5, -5)

	wide := rl.Ray{Position: rl.NewVector3(2.5, 1.5, 5), Direction: rl.NewVector3(0, 0, -1)}
	if _, hit := RayCylinder(wide, centre, 1.0, 3.0, 100); hit {
		t.Fatalf("expected ray outside the radius to miss")
	}

	high := rl.Ray{Position: rl.NewVector3(0, 10, 5), Direction: rl.NewVector3(0, 0, -1)}
	if _, hit := RayCylinder(high, centre, 1.0, 3.0, 100); hit {
		t.Fatalf("expected ray above the cylinder to miss")
	}

	short := rl.Ray{Position: rl.NewVector3(0, 1.5, 5), Direction: rl.NewVector3(0, 0, -1)}
	if _, hit := RayCylinder(short, centre, 1.0, 3.0, 5); hit {
		t.Fatalf("expected hit beyond max distance to be discarded")
	}
}

func TestRayCylinderHitsTopCap(t *testing.T) {
	centre := rl.NewVector3(0, 1.5, 0)
	down := rl.Ray{Position: rl.NewVector3(0.5, 10, 0), Direction: rl.NewVector3(0, -1, 0)}

	dist, hit := RayCylinder(down, centre, 1.0, 3.0, 100)
	if !hit {
		t.Fatalf("expected axis-parallel ray to hit the top cap")
	}
	// Top cap sits at y = 3, seven units below the ray origin.
	if math.Abs(float64(dist)-7) > 0.001 {
		t.Fatalf("expected cap hit at distance 7, got %.4f", dist)
	}
}

func TestRayCylinderIgnoresHitsBehindOrigin(t *testing.T) {
	centre := rl.NewVector3(0, 1.5, 5)
	away := rl.Ray{Position: rl.NewVector3(0, 1.5, 0), Direction: rl.NewVector3(0, 0, -1)}
	if _, hit := RayCylinder(away, centre, 1.0, 3.0, 100); hit {
		t.Fatalf("expected cylinder behind the ray to be ignored")
	}
}

func TestPointInCylinder(t *testing.T) {
	centre := rl.NewVector3(0, 1.5, 0)
	if !PointInCylinder(rl.NewVector3(0.5, 1.5, 0.5), centre, 1.0, 3.0) {
		t.Fatalf("expected interior point inside")
	}
	if PointInCylinder(rl.NewVector3(1.5, 1.5, 0), centre, 1.0, 3.0) {
		t.Fatalf("expected point outside the radius to be rejected")
	}
	if PointInCylinder(rl.NewVector3(0, 3.5, 0), centre, 1.0, 3.0) {
		t.Fatalf("expected point above the height bound to be rejected")
	}
}

func TestCylinderSphereOverlapUsesLargerExtent(t *testing.T) {
	centre := rl.NewVector3(0, 1.5, 0)
	// Effective radius is height/2 = 1.5 for a tall thin ghost.
	if !CylinderSphereOverlap(centre, 0.6, 3.0, rl.NewVector3(1.8, 1.5, 0), 0.5) {
		t.Fatalf("expected overlap inside effective radius + sphere radius")
	}
	if CylinderSphereOverlap(centre, 0.6, 3.0, rl.NewVector3(3.0, 1.5, 0), 0.5) {
		t.Fatalf("expected no overlap well clear of the ghost")
	}
}
