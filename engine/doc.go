// Package engine computes one Game of Life generation from the previous one.
//
// The grid is bounded: cells past the edges do not exist and never count as
// neighbors. An Engine carries its own size-limit policy, fixed at New, and
// is safe for concurrent use.
package engine
