package prompt

import (
	"fmt"

	"github.com/lshigami/Assessly/internal/model"
)

// Rubric criteria count bounds.
const (
	MinCriteria = 2
	MaxCriteria = 3
)

// Achievement-rate thresholds, in percent of the total score.
const (
	HighThresholdPercent   = 80
	MediumThresholdPercent = 60
)

// Bands are the composite score ranges for a rubric with a given number of criteria.
// High covers [HighMin, Total], Medium [MediumMin, MediumMax], Low everything up to LowMax.
type Bands struct {
	Criteria  int
	Total     int
	HighMin   int
	MediumMin int
	MediumMax int
	LowMax    int
}

// ScoreBands derives the score bands from the fixed 3/2/1 level scores.
// Thresholds are rounded up to the next whole point: 80% of 9 is 7.2, so high starts at 8.
func ScoreBands(criteriaCount int) Bands {
	total := model.PointsPerCriterion * criteriaCount
	highMin := ceilPercent(total, HighThresholdPercent)
	mediumMin := ceilPercent(total, MediumThresholdPercent)
	return Bands{
		Criteria:  criteriaCount,
		Total:     total,
		HighMin:   highMin,
		MediumMin: mediumMin,
		MediumMax: highMin - 1,
		LowMax:    mediumMin - 1,
	}
}

func ceilPercent(total, percent int) int {
	return (total*percent + 99) / 100
}

// Summary renders the bands as the labels expected in a scoring summary.
func (b Bands) Summary() model.ScoringSummary {
	return model.ScoringSummary{
		High:   rangeLabel(b.HighMin, b.Total),
		Medium: rangeLabel(b.MediumMin, b.MediumMax),
		Low:    fmt.Sprintf("%d점 이하", b.LowMax),
	}
}

func rangeLabel(lo, hi int) string {
	if lo >= hi {
		return fmt.Sprintf("%d점", hi)
	}
	return fmt.Sprintf("%d-%d점", lo, hi)
}
