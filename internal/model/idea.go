package model

// Dimension is one of the five axes an idea is rated on.
type Dimension int

const (
	// Passion rates how much the founder cares about the idea.
	Passion Dimension = iota
	// Pain rates how badly the target customer feels the problem.
	Pain
	// Profit rates how clearly the idea makes money.
	Profit
	// MarketFit rates how well the idea matches a reachable market.
	MarketFit
	// SkillMatch rates how well the founder's skills fit the idea.
	SkillMatch
)

// Dimensions lists every dimension in display order.
var Dimensions = []Dimension{Passion, Pain, Profit, MarketFit, SkillMatch}

// String returns the column label of the dimension.
func (d Dimension) String() string {
	switch d {
	case Passion:
		return "Passion"
	case Pain:
		return "Pain"
	case Profit:
		return "Profit"
	case MarketFit:
		return "Market Fit"
	case SkillMatch:
		return "Skill Match"
	default:
		return "Unknown"
	}
}

// Key returns the camelCase field name used in answers files and field paths.
func (d Dimension) Key() string {
	switch d {
	case Passion:
		return "passion"
	case Pain:
		return "pain"
	case Profit:
		return "profit"
	case MarketFit:
		return "marketFit"
	case SkillMatch:
		return "skillMatch"
	default:
		return ""
	}
}

// ParseDimension maps a field key such as "marketFit" back to its Dimension.
func ParseDimension(key string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.Key() == key {
			return d, true
		}
	}
	return 0, false
}

// Idea is a candidate business idea with its five ratings.
type Idea struct {
	Name       string `json:"name" yaml:"name"`
	Passion    int    `json:"passion" yaml:"passion"`
	Pain       int    `json:"pain" yaml:"pain"`
	Profit     int    `json:"profit" yaml:"profit"`
	MarketFit  int    `json:"marketFit" yaml:"marketFit"`
	SkillMatch int    `json:"skillMatch" yaml:"skillMatch"`
}

// Score returns the rating of the idea on dimension d.
func (i Idea) Score(d Dimension) int {
	switch d {
	case Passion:
		return i.Passion
	case Pain:
		return i.Pain
	case Profit:
		return i.Profit
	case MarketFit:
		return i.MarketFit
	case SkillMatch:
		return i.SkillMatch
	}
	return 0
}

// WithScore returns a copy of the idea with dimension d set to n.
// n is stored as given.
func (i Idea) WithScore(d Dimension, n int) Idea {
	switch d {
	case Passion:
		i.Passion = n
	case Pain:
		i.Pain = n
	case Profit:
		i.Profit = n
	case MarketFit:
		i.MarketFit = n
	case SkillMatch:
		i.SkillMatch = n
	}
	return i
}

// Total returns the sum of the five ratings (0..25 for valid scores).
func (i Idea) Total() int {
	return i.Passion + i.Pain + i.Profit + i.MarketFit + i.SkillMatch
}

// MaxIdeaTotal is the highest possible idea total.
const MaxIdeaTotal = MaxScore * 5
