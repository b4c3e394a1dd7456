package smoothing

// cache memoizes a function of the series index. It is owned by a single
// Forecaster, so entries never mix values from different constants.
type cache struct {
	data     map[int]float64
	computed int
}

func newCache() *cache {
	return &cache{data: make(map[int]float64)}
}

func (c *cache) get(t int, compute func(int) float64) float64 {
	if v, ok := c.data[t]; ok {
		return v
	}
	v := compute(t)
	c.computed++
	c.data[t] = v
	return v
}
