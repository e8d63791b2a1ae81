package arrseq

// Opt определение опции массива.
type Opt func(c *config, _ optRestriction)

type optRestriction struct{}

type config struct {
	capacity int
}

// WithCapacity задаёт начальную ёмкость хранилища.
// Отрицательные значения игнорируются.
func WithCapacity(n int) Opt {
	return func(c *config, _ optRestriction) {
		if n < 0 {
			return
		}

		c.capacity = n
	}
}
