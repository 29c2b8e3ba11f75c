package reedsshepp

import "errors"

// ErrNoPath is returned when no curve word admits a feasible path for a
// pose pair. With the full Reeds-Shepp word set this does not occur for
// finite inputs; it guards against NaN/Inf poses.
var ErrNoPath = errors.New("reedsshepp: no feasible path")
