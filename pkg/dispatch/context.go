package dispatch

// DecodeContext carries the set of supertypes whose dispatch is currently
// suppressed, scoped to one logical decode call. Threading the set through
// the call chain (instead of mutating shared serializer state) keeps
// concurrent decodes on a shared converter fully independent.
//
// A DecodeContext is not safe for concurrent use: each top-level decode gets
// its own.
type DecodeContext struct {
	suppressed map[string]int
}

// NewDecodeContext returns an empty context with nothing suppressed.
func NewDecodeContext() *DecodeContext {
	return &DecodeContext{}
}

// IsSuppressed reports whether dispatch for the supertype is currently
// suppressed in this context.
func (c *DecodeContext) IsSuppressed(supertype string) bool {
	if c == nil {
		return false
	}
	return c.suppressed[supertype] > 0
}

// Suppress marks the supertype as non-dispatchable and returns the release
// function. Calls nest: the supertype stays suppressed until every
// outstanding release has run. Release is idempotent, so it is safe to
// defer unconditionally.
func (c *DecodeContext) Suppress(supertype string) func() {
	if c.suppressed == nil {
		c.suppressed = make(map[string]int)
	}
	c.suppressed[supertype]++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		c.suppressed[supertype]--
		if c.suppressed[supertype] <= 0 {
			delete(c.suppressed, supertype)
		}
	}
}
