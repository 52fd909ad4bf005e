package floorplan

import (
	"testing"

	"github.com/rehmanul/ilot-placement/pkg/geom"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		entity RawEntity
		want   Category
	}{
		{
			name:   "restricted keyword wins over everything",
			entity: RawEntity{Text: "NO ENTREE", Kind: EntityKindDoor},
			want:   CategoryRestricted,
		},
		{
			name:   "interdit is case-insensitive restricted",
			entity: RawEntity{Text: "Zone Interdit"},
			want:   CategoryRestricted,
		},
		{
			name:   "entrance keyword is opening",
			entity: RawEntity{Text: "Entrance A"},
			want:   CategoryOpening,
		},
		{
			name:   "door kind is opening even without text",
			entity: RawEntity{Kind: EntityKindDoor},
			want:   CategoryOpening,
		},
		{
			name:   "window kind is opening",
			entity: RawEntity{Kind: EntityKindWindow},
			want:   CategoryOpening,
		},
		{
			name:   "wall kind is wall",
			entity: RawEntity{Kind: EntityKindWall},
			want:   CategoryWall,
		},
		{
			name:   "layer name mur is wall",
			entity: RawEntity{Layer: "MUR_PORTEUR"},
			want:   CategoryWall,
		},
		{
			name:   "stroke weight above threshold is wall",
			entity: RawEntity{StrokeWeight: 5.0},
			want:   CategoryWall,
		},
		{
			name:   "plain generic entity is other",
			entity: RawEntity{Kind: EntityKindGeneric, StrokeWeight: 0.5},
			want:   CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.entity); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q", tt.entity, got, tt.want)
			}
		})
	}
}

func TestClassifier_Build(t *testing.T) {
	c := NewClassifier()
	bounds := DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 20, Height: 10}}

	entities := []RawEntity{
		{ID: "w1", Kind: EntityKindWall, Footprint: geom.Rect{X: 0, Y: 0, Width: 0.2, Height: 10}},
		{ID: "d1", Text: "Entrance", Footprint: geom.Rect{X: 9, Y: 0, Width: 2, Height: 0.1}},
		{ID: "z1", Text: "restricted", Footprint: geom.Rect{X: 15, Y: 5, Width: 2, Height: 2}},
		{ID: "misc", Kind: EntityKindGeneric, Footprint: geom.Rect{X: 1, Y: 1, Width: 1, Height: 1}},
	}

	fp, err := c.Build(bounds, entities, 0.1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(fp.Walls) != 1 {
		t.Errorf("len(Walls) = %d, want 1", len(fp.Walls))
	}
	if len(fp.Openings) != 1 {
		t.Errorf("len(Openings) = %d, want 1", len(fp.Openings))
	}
	if len(fp.RestrictedZones) != 1 {
		t.Errorf("len(RestrictedZones) = %d, want 1", len(fp.RestrictedZones))
	}
	if len(fp.EntrancePoints) != 1 {
		t.Errorf("len(EntrancePoints) = %d, want 1", len(fp.EntrancePoints))
	}
}

func TestClassifier_Build_ZeroThicknessWallPromoted(t *testing.T) {
	c := NewClassifier()
	bounds := DrawingBounds{Rect: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	entities := []RawEntity{
		{ID: "w1", Kind: EntityKindWall, Footprint: geom.Rect{X: 1, Y: 1, Width: 5, Height: 0}},
	}
	fp, err := c.Build(bounds, entities, 0.1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if fp.Walls[0].Thickness != 0.1 {
		t.Errorf("Thickness = %v, want minThickness 0.1", fp.Walls[0].Thickness)
	}
}
