// Package catalog derives the target îlot mix — a count per SizeBucket —
// from a configuration's size-mix percentages and a floor plan's usable
// area, per §4.4's "Representation" paragraph: "Size-bucket counts are
// determined once from Config (size mix percentages × a target count
// derived from usable area / average-area-per-bucket)".
package catalog
