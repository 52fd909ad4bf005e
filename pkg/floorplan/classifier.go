package floorplan

import (
	"fmt"
	"strings"

	"github.com/rehmanul/ilot-placement/pkg/geom"
)

// EntityKind is the ingest adapter's raw classification of a primitive,
// prior to this package's reclassification.
type EntityKind string

const (
	EntityKindDoor    EntityKind = "door"
	EntityKindWindow  EntityKind = "window"
	EntityKindWall    EntityKind = "wall"
	EntityKindGeneric EntityKind = "generic"
)

// RawEntity is a single primitive delivered by the (out-of-scope) ingest
// adapter: a rectangle footprint plus the hints the Classifier uses to
// assign a Category.
type RawEntity struct {
	ID           string
	Footprint    geom.Rect
	Polygon      *geom.Polygon // non-nil for non-rectangular zones
	Kind         EntityKind
	Layer        string
	StrokeWeight float64
	Text         string
}

// Category is the Classifier's output tag for a RawEntity.
type Category string

const (
	CategoryRestricted Category = "restricted"
	CategoryOpening    Category = "opening"
	CategoryWall       Category = "wall"
	CategoryOther      Category = "other"
)

var restrictedKeywords = []string{"no entree", "no entry", "interdit", "restricted"}

var openingKeywords = []string{"entrée", "entree", "entrance", "sortie", "exit"}

var wallLayerKeywords = []string{"wall", "mur"}

// Classifier assigns a Category to each RawEntity using the ordered rule
// set of §4.2: restricted zones win on keyword match, then openings by
// keyword or entity kind, then walls by kind/layer/stroke weight, and
// everything else falls through to "other".
type Classifier struct {
	// WallStrokeThreshold is the stroke weight above which an entity with
	// no other hint is still classified as a wall.
	WallStrokeThreshold float64
}

// NewClassifier returns a Classifier using the default wall-stroke
// threshold of 2.0 (the ingest adapter's units, typically points).
func NewClassifier() *Classifier {
	return &Classifier{WallStrokeThreshold: 2.0}
}

// Classify returns the Category for a single entity, applying the rules in
// order and returning on the first match.
func (c *Classifier) Classify(e RawEntity) Category {
	text := strings.ToLower(e.Text)

	for _, kw := range restrictedKeywords {
		if strings.Contains(text, kw) {
			return CategoryRestricted
		}
	}

	for _, kw := range openingKeywords {
		if strings.Contains(text, kw) {
			return CategoryOpening
		}
	}
	if e.Kind == EntityKindDoor || e.Kind == EntityKindWindow {
		return CategoryOpening
	}

	if e.Kind == EntityKindWall {
		return CategoryWall
	}
	layer := strings.ToLower(e.Layer)
	for _, kw := range wallLayerKeywords {
		if strings.Contains(layer, kw) {
			return CategoryWall
		}
	}
	if e.StrokeWeight > c.WallStrokeThreshold {
		return CategoryWall
	}

	return CategoryOther
}

// Build classifies every entity and assembles a validated FloorPlan. Walls
// are assigned a thickness from their footprint's shorter side (or
// minThickness, whichever is larger, to satisfy Wall's thickness > 0
// invariant for degenerate zero-thickness input rects). Openings default to
// OpeningInteriorDoor unless the entity's text indicates an entrance/exit.
// RestrictedZone entities carry their polygon when the ingest adapter
// supplied one; otherwise the footprint rect is used as a 4-vertex polygon.
func (c *Classifier) Build(bounds DrawingBounds, entities []RawEntity, minThickness float64) (*FloorPlan, error) {
	var walls []Wall
	var openings []Opening
	var zones []RestrictedZone

	for _, e := range entities {
		switch c.Classify(e) {
		case CategoryWall:
			thickness := minF(e.Footprint.Width, e.Footprint.Height)
			if thickness < minThickness {
				thickness = minThickness
			}
			walls = append(walls, Wall{
				ID:        e.ID,
				Footprint: e.Footprint,
				Thickness: thickness,
				Layer:     e.Layer,
			})

		case CategoryOpening:
			openings = append(openings, Opening{
				ID:        e.ID,
				Footprint: e.Footprint,
				Kind:      openingKindFor(e.Text),
			})

		case CategoryRestricted:
			poly := e.Polygon
			if poly == nil {
				p := rectToPolygon(e.Footprint)
				poly = &p
			}
			zones = append(zones, RestrictedZone{
				ID:      e.ID,
				Polygon: *poly,
				Label:   e.Text,
			})

		case CategoryOther:
			// ignored by the core, per §4.2 rule 4
		}
	}

	fp, err := NewFloorPlan(bounds, walls, openings, zones)
	if err != nil {
		return nil, fmt.Errorf("building floor plan: %w", err)
	}
	return fp, nil
}

func openingKindFor(text string) OpeningKind {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "entrée"), strings.Contains(lower, "entree"), strings.Contains(lower, "entrance"):
		return OpeningEntrance
	case strings.Contains(lower, "sortie"), strings.Contains(lower, "exit"):
		return OpeningExit
	default:
		return OpeningInteriorDoor
	}
}

func rectToPolygon(r geom.Rect) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MaxY()},
	}}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
