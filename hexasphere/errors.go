package hexasphere

import "errors"

// ErrDuplicateCoordinate indicates GetManyMut was asked for two or more
// overlapping coordinates. Granting two mutable references into the same
// slot would alias, so GetManyMut refuses instead, the same guarantee the
// reference implementation's get_many_mut gives by returning None.
var ErrDuplicateCoordinate = errors.New("hexasphere: duplicate coordinate in GetMany request")

// ErrInvalidCoordinate indicates a coordinate passed to Get/Set/GetMany*
// failed coord.Tiling.IsValid for this Hexasphere's subdivision count.
var ErrInvalidCoordinate = errors.New("hexasphere: coordinate out of range")
