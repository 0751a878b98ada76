package meshadj

import "errors"

// ErrIndicesNotTriples indicates Build was given an indices slice whose
// length is not a multiple of 3 — it cannot be read as a flat triangle list.
var ErrIndicesNotTriples = errors.New("meshadj: indices length must be a multiple of 3")
