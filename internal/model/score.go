package model

import "math"

// Founder Fit label thresholds. Each is an inclusive lower bound and they
// are checked from the highest down.
const (
	BornFounderThreshold       = 45
	BuilderInProgressThreshold = 35
	ExplorerThreshold          = 25

	// MaxFounderTotal is the highest possible Founder Fit total.
	MaxFounderTotal = MaxScore * FounderStatementCount
)

// Band is a coarse rating of a derived score, used to colour score boxes
// and progress bars.
type Band int

const (
	// BandLow is the weakest band.
	BandLow Band = iota
	// BandFair is a middling result.
	BandFair
	// BandGood is close to the top.
	BandGood
	// BandExcellent is reserved for the top Founder Fit label.
	BandExcellent
)

// String returns the lowercase band name, used as a CSS class suffix.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandFair:
		return "fair"
	case BandGood:
		return "good"
	case BandExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// FounderTotal returns the sum of the founder scores.
func (a *WorkbookAnswers) FounderTotal() int {
	total := 0
	for _, n := range a.FounderScores {
		total += n
	}
	return total
}

// FounderLabel returns the qualitative label for a Founder Fit total.
func FounderLabel(total int) string {
	switch {
	case total >= BornFounderThreshold:
		return "Born Founder"
	case total >= BuilderInProgressThreshold:
		return "Builder in Progress"
	case total >= ExplorerThreshold:
		return "Explorer"
	default:
		return "Needs Reboot"
	}
}

// FounderBand returns the band matching FounderLabel for total.
func FounderBand(total int) Band {
	switch {
	case total >= BornFounderThreshold:
		return BandExcellent
	case total >= BuilderInProgressThreshold:
		return BandGood
	case total >= ExplorerThreshold:
		return BandFair
	default:
		return BandLow
	}
}

// IdeaBand rates an idea total: 20 and above is good, 12 and above fair.
func IdeaBand(total int) Band {
	switch {
	case total >= 20:
		return BandGood
	case total >= 12:
		return BandFair
	default:
		return BandLow
	}
}

// ChecklistDone returns the number of completed checklist items.
func (a *WorkbookAnswers) ChecklistDone() int {
	done := 0
	for _, ok := range a.Checklist {
		if ok {
			done++
		}
	}
	return done
}

// ChecklistBand rates a checklist completion count: 8 and above is good,
// 5 and above fair.
func ChecklistBand(done int) Band {
	switch {
	case done >= 8:
		return BandGood
	case done >= 5:
		return BandFair
	default:
		return BandLow
	}
}

// Percent returns value as a rounded percentage of maximum.
// A non-positive maximum yields 0.
func Percent(value, maximum int) int {
	if maximum <= 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(maximum) * 100))
}

// Summary collects the values derived from a record.
// It is computed by Summarize and never stored with the answers.
type Summary struct {
	// IdeaTotals holds each idea's total in idea order.
	IdeaTotals []int `json:"ideaTotals"`

	// FounderTotal is the sum of the founder scores.
	FounderTotal int `json:"founderTotal"`

	// FounderLabel is the banded label of FounderTotal.
	FounderLabel string `json:"founderLabel"`

	// ChecklistDone counts the completed checklist items.
	ChecklistDone int `json:"checklistDone"`

	// ChecklistTotal is the number of checklist items.
	ChecklistTotal int `json:"checklistTotal"`
}

// Summarize computes the derived values of a.
func Summarize(a *WorkbookAnswers) Summary {
	totals := make([]int, len(a.Ideas))
	for i, idea := range a.Ideas {
		totals[i] = idea.Total()
	}
	founderTotal := a.FounderTotal()
	return Summary{
		IdeaTotals:     totals,
		FounderTotal:   founderTotal,
		FounderLabel:   FounderLabel(founderTotal),
		ChecklistDone:  a.ChecklistDone(),
		ChecklistTotal: len(a.Checklist),
	}
}
