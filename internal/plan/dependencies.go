package plan

import (
	"sort"
	"strings"
)

// IndexSet is a set of task positions.
type IndexSet map[int]struct{}

// Add inserts i into the set.
func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Sorted returns the members in ascending order. The order is a
// presentation choice; only membership is meaningful.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// InferDependencies fills the Dependencies field of every draft in place
// and returns drafts. Each rule only looks at earlier positions, so the
// resulting graph is acyclic by construction:
//   - every task after the first depends on its predecessor;
//   - a "testing" task depends on every earlier implement/develop task;
//   - otherwise a "deploy" task depends on every earlier test task.
func InferDependencies(drafts []TaskDraft) []TaskDraft {
	for i := range drafts {
		deps := IndexSet{}
		if i > 0 {
			deps.Add(i - 1)
		}

		title := strings.ToLower(drafts[i].Title)
		switch {
		case strings.Contains(title, "testing"):
			addEarlier(deps, drafts[:i], "implement", "develop")
		case strings.Contains(title, "deploy"):
			addEarlier(deps, drafts[:i], "test")
		}

		drafts[i].Dependencies = deps.Sorted()
	}
	return drafts
}

func addEarlier(deps IndexSet, earlier []TaskDraft, keywords ...string) {
	for j, prev := range earlier {
		title := strings.ToLower(prev.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				deps.Add(j)
				break
			}
		}
	}
}
