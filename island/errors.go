package island

import "errors"

// ErrConstraintBufferFull is returned by Discover when the arena could
// not satisfy a scratch or output allocation. It wraps the underlying
// arena.ErrExhausted, so callers may also check with
// errors.Is(err, arena.ErrExhausted).
var ErrConstraintBufferFull = errors.New("island: constraint buffer full")
