package metrics

import "fmt"

// AgentConfig describes one contestant of a self-play experiment. A zero
// Depth stands for the random baseline.
type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
	Seed       uint64 // Random agents only
}

func (c AgentConfig) String() string {
	if c.Depth == 0 {
		return fmt.Sprintf("agent%d(random)", c.ID)
	}
	return fmt.Sprintf("agent%d(depth=%d)", c.ID, c.Depth)
}
