// Package geom holds the 2D value types shared by the sketch core:
// points, axis-aligned bounding boxes, angle helpers and the fixed
// epsilons that define degeneracy for the rest of the module.
package geom
