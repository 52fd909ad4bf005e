// Package diagdraw renders a floor plan, and optionally one candidate's
// îlots and corridors over it, as an SVG,
// for use from tests only: a failing placement/corridor test can dump a
// picture of what actually got built instead of a wall of coordinates.
//
// It is wired to github.com/ajstarks/svgo, the teacher's own SVG export
// library, rather than adding a new one. It is deliberately not reachable
// from pkg/engine.Optimize or any exported Result type: spec.md places
// visualization/export out of scope as an external-collaborator concern,
// so this package exists to keep svgo wired and exercised without adding
// a public visualization surface the spec excludes.
package diagdraw
