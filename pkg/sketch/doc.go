// Package sketch defines the 2D sketch entity types and the geometry
// library that evaluates, projects onto and bounds them. Entities are
// immutable values owned by an external store; every function in this
// package reads them and never mutates them.
package sketch
