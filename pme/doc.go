// Package pme is the solver binding layer for reciprocal-space Ewald
// electrostatics.
//
// An Instance is configured once (Setup, SetLatticeVectors) and then
// evaluates the reciprocal-space energy and forces per simulation step.
// Caller-supplied parameter, coordinate and force buffers are wrapped as
// borrowed matrix views — no copies are taken, and forces are accumulated
// into the caller's memory in place.
//
// A single Instance shares scratch state across calls and is not safe for
// concurrent use; callers serialize externally. The configured thread
// count only bounds the internal fan-out of the reciprocal sum — the
// matrix kernel underneath never spawns work.
package pme
