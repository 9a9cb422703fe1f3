package genetic

// cachedValue is an explicit two-state cache for a derived scalar.
// The zero value is unset.
type cachedValue struct {
	value float64
	valid bool
}

// get returns the cached value, computing and storing it first if unset.
func (c *cachedValue) get(compute func() float64) float64 {
	if !c.valid {
		c.value = compute()
		c.valid = true
	}
	return c.value
}

func (c *cachedValue) reset() {
	c.value = 0
	c.valid = false
}
