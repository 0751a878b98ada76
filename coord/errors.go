package coord

import "errors"

// ErrRingFull indicates a Push onto a Ring that already holds 6 elements.
// Pushing a 7th neighbor is a programming error: no cell on this tiling has
// more than 6 neighbors, so callers should never hit this in practice.
var ErrRingFull = errors.New("coord: ring capacity (6) exceeded")

// ErrRingSize indicates RingOf was given a number of values outside the valid
// ring-length range of 2..=6 (a Ring always models a pentagon or hexagon
// neighborhood, never fewer than 2 entries).
var ErrRingSize = errors.New("coord: ring length must be between 2 and 6")

// ErrInvalidCoordinate indicates a Coordinate failed IsValid for the given
// subdivision count — chunk >= 5, or short/long out of range.
var ErrInvalidCoordinate = errors.New("coord: coordinate out of range")
