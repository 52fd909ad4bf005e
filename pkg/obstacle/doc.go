// Package obstacle builds the two obstacle representations the engine needs
// once per floor plan (§4.3): a static rectangle list (optionally bucketed
// into a uniform grid for large plans) used for O(1)-ish placement
// disjointness queries, and a walkability grid used as the input surface
// for A* corridor routing.
//
// Both representations are built once from an immutable floorplan.FloorPlan
// and never mutated afterward; every Candidate in the placement engine
// shares the same Index read-only.
package obstacle
