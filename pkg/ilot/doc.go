// Package ilot defines the placement engine's core domain types: Îlot (a
// single rectangular workstation footprint) and Candidate (one individual of
// the evolutionary population, owning its own îlots and corridors).
//
// Candidate values must be copied with Clone rather than by a shallow
// struct copy, since Îlot and Corridor connection-id sets are backed by
// slices that a shallow copy would
// alias between parent and child.
package ilot
