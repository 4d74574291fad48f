// Package snap turns a raw cursor position into the single best snap
// target of a sketch.
//
// Candidate generation collects grid, endpoint, midpoint, center,
// nearest-on-curve and intersection points near the query. Resolution
// keeps only candidates strictly closer than the snap distance and orders
// them by snap type priority first and distance second, so an exact
// endpoint a few units away beats a curve point that happens to be
// closer.
//
// Find is the stateless entry point. Engine wraps it for hosts that push
// entity and settings snapshots separately from pointer queries.
package snap
