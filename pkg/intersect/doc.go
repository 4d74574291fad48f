// Package intersect solves closed-form intersections between the
// line-family and circle-family parts of sketch entities.
//
// Arcs are treated as their full circles: an intersection lying outside
// the arc's sweep is still reported. Snapping has always behaved this way
// and constraint seeding downstream expects the same points, so the
// approximation is kept.
package intersect
