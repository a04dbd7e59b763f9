package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/prompt"
	"github.com/rs/zerolog/log"
)

// Reconcile enforces what must hold whatever the model produced. The plan's assessment
// elements always win; the scoring summary is checked against the rubric, never rewritten.
func Reconcile(plan model.AssessmentPlan, data *model.GeneratedData) error {
	data.Criteria.AssessmentElements = plan.AssessmentElements
	return checkScoringSummary(data)
}

// scoreRange is an inclusive range of whole composite scores.
type scoreRange struct {
	lo, hi int
}

func (r scoreRange) clamp(bounds scoreRange) scoreRange {
	return scoreRange{lo: max(r.lo, bounds.lo), hi: min(r.hi, bounds.hi)}
}

func (r scoreRange) String() string {
	return fmt.Sprintf("%d-%d", r.lo, r.hi)
}

// checkScoringSummary compares each band label with the bands the rubric implies. Labels are
// read as score ranges, so "8점 이상" and "8-9점" are the same band for a 9-point rubric.
// A label that cannot be read is logged and accepted; a label that reads as a different
// range fails the run.
func checkScoringSummary(data *model.GeneratedData) error {
	n := len(data.Rubric.Criteria)
	b := prompt.ScoreBands(n)
	// Every criterion scores at least one point.
	achievable := scoreRange{lo: n, hi: data.Rubric.TotalScore()}

	s := data.ScoringSummary
	checks := []struct {
		band  string
		label string
		want  scoreRange
	}{
		{"high", s.High, scoreRange{b.HighMin, b.Total}},
		{"medium", s.Medium, scoreRange{b.MediumMin, b.MediumMax}},
		{"low", s.Low, scoreRange{0, b.LowMax}},
	}
	for _, c := range checks {
		want := c.want.clamp(achievable)
		got := labelRanges(c.label, achievable)
		if len(got) == 0 {
			log.Warn().Str("band", c.band).Str("label", c.label).Msg("Scoring summary label is not a score range, accepted as written")
			continue
		}
		if !containsRange(got, want) {
			return fmt.Errorf("scoring summary %s band %q does not match %s of %d points", c.band, c.label, want, achievable.hi)
		}
	}
	return nil
}

func containsRange(ranges []scoreRange, want scoreRange) bool {
	for _, r := range ranges {
		if r == want {
			return true
		}
	}
	return false
}

var (
	boundPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*점?\s*(이상|초과|이하|미만)?`)
	labelSplit   = strings.NewReplacer("(", "\x00", ")", "\x00", "（", "\x00", "）", "\x00")
)

// labelRanges reads every parenthesised segment of a label as a score range, so
// "7.2점 이상(8-9점)" yields both readings. Segments in no recognisable form are skipped.
func labelRanges(label string, achievable scoreRange) []scoreRange {
	var out []scoreRange
	for _, seg := range strings.Split(labelSplit.Replace(label), "\x00") {
		if r, ok := parseRange(seg, achievable); ok {
			out = append(out, r.clamp(achievable))
		}
	}
	return out
}

// parseRange handles "N점", "N-M점", "N점 ~ M점", "N점 이상/초과/이하/미만" and
// "N점 이상 M점 미만". Fractional thresholds round to the whole scores they admit.
// Percentages are not score ranges.
func parseRange(seg string, achievable scoreRange) (scoreRange, bool) {
	var r scoreRange
	if strings.ContainsAny(seg, "%％") {
		return r, false
	}
	m := boundPattern.FindAllStringSubmatch(seg, -1)
	if len(m) == 0 {
		return r, false
	}
	vals := make([]float64, len(m))
	for i, sm := range m {
		v, err := strconv.ParseFloat(sm[1], 64)
		if err != nil {
			return r, false
		}
		vals[i] = v
	}

	switch len(m) {
	case 1:
		v := vals[0]
		switch m[0][2] {
		case "":
			if v != math.Trunc(v) {
				return r, false
			}
			return scoreRange{int(v), int(v)}, true
		case "이상", "초과":
			return scoreRange{lowerBound(v, m[0][2]), achievable.hi}, true
		default:
			return scoreRange{achievable.lo, upperBound(v, m[0][2])}, true
		}
	case 2:
		if m[0][2] == "이하" || m[0][2] == "미만" || m[1][2] == "이상" || m[1][2] == "초과" {
			return r, false
		}
		return scoreRange{lowerBound(vals[0], m[0][2]), upperBound(vals[1], m[1][2])}, true
	}
	return r, false
}

func lowerBound(v float64, qualifier string) int {
	if qualifier == "초과" {
		return int(math.Floor(v)) + 1
	}
	return int(math.Ceil(v))
}

func upperBound(v float64, qualifier string) int {
	if qualifier == "미만" {
		return int(math.Ceil(v)) - 1
	}
	return int(math.Floor(v))
}
