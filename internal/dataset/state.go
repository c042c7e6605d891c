package dataset

import (
	"time"

	"github.com/kjannette/carprice-stats/internal/stats"
)

// State is the outcome of the startup load. It is either Loaded or
// Unavailable and never changes once the server is running.
type State interface {
	state()
}

type Loaded struct {
	Table    *stats.Table
	Source   string
	LoadedAt time.Time
}

type Unavailable struct {
	Source string
	Reason string
}

func (Loaded) state()      {}
func (Unavailable) state() {}
