package dslist

import (
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

type Option option.Option[Config]

type Config struct {
	// Capacity is the number of elements the backing store is pre-allocated for.
	Capacity int
}

var _ Option = Config{}

func (c Config) Configure(o *Config) {
	o.Capacity = zerokit.Coalesce(c.Capacity, o.Capacity)
}

// Capacity pre-allocates the backing store for n elements.
func Capacity(n int) Option {
	return option.Func[Config](func(c *Config) { c.Capacity = max(n, 0) })
}
