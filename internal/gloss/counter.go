package gloss

// Counter hands out 1, 2, 3, ... It is not safe for concurrent use; every
// conversion owns its own.
type Counter struct {
	n int
}

// Next returns the next value.
func (c *Counter) Next() int {
	c.n++
	return c.n
}

// Last returns the most recently issued value, or 0.
func (c *Counter) Last() int {
	return c.n
}
