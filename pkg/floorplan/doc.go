// Package floorplan models the normalized, classified representation of an
// architectural floor plan: walls, openings, restricted zones, and the
// overall drawing bounds, plus the classifier that assigns raw ingest
// primitives to these categories.
//
// A FloorPlan is built once per optimization run and is immutable for the
// run's duration; every Candidate in the placement engine shares the same
// FloorPlan read-only (§3 of the engine design).
package floorplan
