package geogen

import (
	"errors"
	"strings"
	"testing"
)

func expectValidationErr(t *testing.T, err error, wants ...string) {
	t.Helper()
	if !errors.Is(err, ErrValidation) {
		t.Fatal(err)
	}
	for _, w := range wants {
		if !strings.Contains(err.Error(), w) {
			t.Fatalf("error %q missing %q", err, w)
		}
	}
}

func TestValidateCount(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.Point(WithCount(0))
	expectValidationErr(t, err, "count", "0")
}

func TestValidateVertexRange(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.LineString(WithVertexRange(40, 6))
	expectValidationErr(t, err, "min_vertex (40)", "max_vertex (6)")
}

func TestValidateVertexFloor(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.LineString(WithVertexRange(1, 5))
	expectValidationErr(t, err, "at least 2", "got 1")
	_, err = g.Polygon(WithVertexRange(2, 8))
	expectValidationErr(t, err, "at least 3", "got 2")
}

func TestValidateBBoxOrder(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.Point(WithBBox(83.77, 29.12, 72.81, 12.70))
	expectValidationErr(t, err, "minx (83.77)", "maxx (72.81)")
	_, err = g.Point(WithBBox(10, 50, 20, 40))
	expectValidationErr(t, err, "miny (50)", "maxy (40)")
}

func TestValidateBBoxArity(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.Point(WithBBox(0, 0, 10))
	expectValidationErr(t, err, "exactly 4 values", "got 3")
}

func TestValidateRadius(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.Circle(WithRadius(-2))
	expectValidationErr(t, err, "radius", "-2")
	_, err = g.Circle(WithRadius(0))
	expectValidationErr(t, err, "radius")
}

func TestValidateNumPoints(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.Circle(WithNumPoints(4))
	expectValidationErr(t, err, "num_points", "got 4")
}

func TestValidateMembers(t *testing.T) {
	g := NewGeoGenToolbox()
	_, err := g.MultiPoint(WithMembers(1))
	expectValidationErr(t, err, "members", "MultiPoint", "got 1")
}

func TestValidateIdempotent(t *testing.T) {
	bad := newGenRequest(FamilyLineString, []GenOption{WithVertexRange(40, 6)})
	e1, e2 := validateRequest(bad), validateRequest(bad)
	if e1 == nil || e2 == nil || e1.Error() != e2.Error() {
		t.Fatal(e1, e2)
	}
	good := newGenRequest(FamilyPoint, []GenOption{WithCount(3)})
	if err := validateRequest(good); err != nil {
		t.Fatal(err)
	}
	if err := validateRequest(good); err != nil {
		t.Fatal(err)
	}
}
