package campaign

import (
	"time"

	"github.com/ignite/campaign-chat/internal/domain"
)

// fixedRand returns the same draws every time: IntN yields min(i, n-1) and
// Float64 yields f.
type fixedRand struct {
	i int
	f float64
}

func (r fixedRand) IntN(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func (r fixedRand) Float64() float64 { return r.f }

// allSourceSets returns every subset of the connector set.
func allSourceSets() []domain.SourceSet {
	ids := domain.SourceIDs()
	var out []domain.SourceSet
	for mask := 0; mask < 1<<len(ids); mask++ {
		set := domain.SourceSet{}
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				set = append(set, id)
			}
		}
		out = append(out, set)
	}
	return out
}

// messageFor returns a message that classifies as intent.
func messageFor(intent domain.Intent) string {
	return "please help with " + Keywords(intent)[0]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
