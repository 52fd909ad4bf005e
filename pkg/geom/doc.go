// Package geom provides the shared geometric vocabulary used by every other
// package in the îlot placement engine: points, axis-aligned rectangles,
// polylines, polygons, and the predicates built on top of them (overlap with
// clearance, point-in-polygon, polygon area, segment-rectangle intersection).
//
// All functions here are pure math: given finite inputs they never fail.
// Callers at the system boundary (floorplan classification, config parsing)
// are responsible for rejecting non-finite or negative-extent inputs before
// they reach this package.
package geom
