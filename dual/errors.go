package dual

import "errors"

// ErrMissingAdjacency indicates Build was asked to process a face index that
// has no entry in the surrounding map and no override ring was supplied for
// it either.
var ErrMissingAdjacency = errors.New("dual: face has no adjacency ring")
