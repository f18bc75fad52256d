package state

// Change is delivered to the change callback after every successful mutation.
type Change struct {
	Revision uint64   `json:"revision"`
	Paths    []Stroke `json:"paths"`
}

// ChangeFunc observes document changes. It must not mutate the store it observes.
type ChangeFunc func(Change)

// clock counts document revisions. The store is single-goroutine, so no atomics.
type clock struct {
	revision uint64
}

func (c *clock) tick() uint64 {
	c.revision++
	return c.revision
}
