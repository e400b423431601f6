package authoring

import "slices"

// Sentinel ends list input.
const Sentinel = "q"

type CollectorState int

const (
	Collecting CollectorState = iota
	Done
)

// SentinelCollector accumulates lines until one equals the sentinel. Every
// line fed while collecting is kept, empty ones included, and Result drops
// only the first occurrence of the sentinel.
type SentinelCollector struct {
	sentinel string
	state    CollectorState
	items    []string
}

func NewSentinelCollector(sentinel string) *SentinelCollector {
	return &SentinelCollector{sentinel: sentinel}
}

// Feed records line and returns the state after it. Lines fed once the
// collector is done are ignored.
func (c *SentinelCollector) Feed(line string) CollectorState {
	if c.state == Done {
		return Done
	}
	c.items = append(c.items, line)
	if line == c.sentinel {
		c.state = Done
	}
	return c.state
}

// Close finishes collection without a sentinel, e.g. on end of input.
func (c *SentinelCollector) Close() {
	c.state = Done
}

func (c *SentinelCollector) State() CollectorState {
	return c.state
}

// Count is the number of lines fed so far, sentinel included.
func (c *SentinelCollector) Count() int {
	return len(c.items)
}

func (c *SentinelCollector) Result() []string {
	out := slices.Clone(c.items)
	if out == nil {
		out = []string{}
	}
	if i := slices.Index(out, c.sentinel); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	return out
}
