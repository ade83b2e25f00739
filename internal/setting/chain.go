package setting

// Chain tries each source in order; the first one that knows the key wins.
type Chain struct {
	sources []Source
}

func NewChain(sources ...Source) *Chain { return &Chain{sources: sources} }

// Resolve returns the value for key and the name of the source that answered.
func (c *Chain) Resolve(key string) (value, source string, ok bool, err error) {
	for _, s := range c.sources {
		v, hit, lerr := s.Lookup(key)
		if lerr != nil {
			return "", s.Name(), false, lerr
		}
		if hit {
			return v, s.Name(), true, nil
		}
	}
	return "", "", false, nil
}

// Value is Resolve without the source attribution.
func (c *Chain) Value(key string) (string, bool, error) {
	v, _, ok, err := c.Resolve(key)
	return v, ok, err
}
