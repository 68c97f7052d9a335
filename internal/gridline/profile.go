package gridline

import (
	"sort"

	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// Profile maps each difficulty to a search depth for boards of a given size.
type Profile struct {
	Size                  int
	Easy                  int
	Medium                int
	Hard                  int
	RandomMoveProbability float64
}

// Profiles is a table of per-size profiles. A board uses the profile with the largest
// size not above its own, or the smallest profile when none qualifies.
type Profiles []Profile

// DefaultProfiles keeps 3x3 hard play perfect and trades strength for speed as boards grow.
func DefaultProfiles() Profiles {
	return Profiles{
		{Size: 3, Easy: 1, Medium: 3, Hard: Unbounded},
		{Size: 4, Easy: 1, Medium: 2, Hard: 4, RandomMoveProbability: 0.1},
		{Size: 5, Easy: 1, Medium: 2, Hard: 3, RandomMoveProbability: 0.2},
		{Size: 6, Easy: 1, Medium: 1, Hard: 2, RandomMoveProbability: 0.3},
	}
}

func (that Profile) Depth(difficulty entity.Difficulty) int {
	switch difficulty {
	case entity.DifficultyEasy:
		return that.Easy
	case entity.DifficultyMedium:
		return that.Medium
	default:
		return that.Hard
	}
}

func (that Profiles) Lookup(size int) Profile {
	if len(that) == 0 {
		return DefaultProfiles().Lookup(size)
	}

	sorted := make(Profiles, len(that))
	copy(sorted, that)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size < sorted[j].Size })

	chosen := sorted[0]
	for _, profile := range sorted {
		if profile.Size <= size {
			chosen = profile
		}
	}

	return chosen
}

// SearchConfig resolves the search bounds for a board size and difficulty.
func (that Profiles) SearchConfig(size int, difficulty entity.Difficulty) SearchConfig {
	profile := that.Lookup(size)

	return SearchConfig{
		MaxDepth:              profile.Depth(difficulty),
		RandomMoveProbability: profile.RandomMoveProbability,
	}
}
