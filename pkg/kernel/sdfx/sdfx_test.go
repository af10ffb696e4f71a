package sdfx

import (
	"math"
	"testing"
)

func TestBoxMinCornerOrigin(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	panel := k.Translate(k.Box(10, 10, 10), 100, 200, 300)
	min, max := panel.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestToMeshBox(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes is slow")
	}

	k := New()
	mesh, err := k.ToMesh(k.Box(100, 50, 25))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triangles*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

// A side panel with a groove cut out should produce more triangles than the
// plain panel.
func TestDifferenceGroove(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes is slow")
	}

	k := New()
	panel := k.Box(18, 560, 720)
	panelMesh, err := k.ToMesh(panel)
	if err != nil {
		t.Fatalf("ToMesh(panel) failed: %v", err)
	}

	groove := k.Translate(k.Box(10, 8, 720), 8, 540, 0)
	cut := k.Difference(panel, groove)
	cutMesh, err := k.ToMesh(cut)
	if err != nil {
		t.Fatalf("ToMesh(cut) failed: %v", err)
	}
	if cutMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	if cutMesh.TriangleCount() <= panelMesh.TriangleCount() {
		t.Errorf("grooved panel (%d triangles) should exceed the plain panel (%d)",
			cutMesh.TriangleCount(), panelMesh.TriangleCount())
	}
}

func TestUnion(t *testing.T) {
	k := New()
	a := k.Box(50, 50, 50)
	b := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	min, max := k.Union(a, b).BoundingBox()

	const tol = 0.5
	if math.Abs(min[0]) > tol || math.Abs(max[0]-80) > tol {
		t.Errorf("union X extent = [%f, %f], expected [0, 80]", min[0], max[0])
	}
}
