package schema

import (
	"fmt"
	"strings"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/prompt"
)

var levelOrder = []string{model.LevelHigh, model.LevelMedium, model.LevelLow}

// CheckMaterials enforces the rubric cardinality rules a JSON schema cannot express.
func CheckMaterials(data *model.GeneratedData) error {
	r := data.Rubric

	n := len(r.Criteria)
	if n < prompt.MinCriteria || n > prompt.MaxCriteria {
		return &ShapeError{Path: "$.rubric.criteria", Reason: fmt.Sprintf("expected %d to %d criteria, got %d", prompt.MinCriteria, prompt.MaxCriteria, n)}
	}
	seen := make(map[string]bool, n)
	for i, name := range r.Criteria {
		name = strings.TrimSpace(name)
		if name == "" {
			return &ShapeError{Path: fmt.Sprintf("$.rubric.criteria[%d]", i), Reason: "blank criterion name"}
		}
		if seen[name] {
			return &ShapeError{Path: fmt.Sprintf("$.rubric.criteria[%d]", i), Reason: fmt.Sprintf("duplicate criterion %q", name)}
		}
		seen[name] = true
	}

	if len(r.Levels) != len(levelOrder) {
		return &ShapeError{Path: "$.rubric.levels", Reason: fmt.Sprintf("expected %d levels, got %d", len(levelOrder), len(r.Levels))}
	}
	tags := make(map[string]bool, len(levelOrder))
	for i, lvl := range r.Levels {
		path := fmt.Sprintf("$.rubric.levels[%d]", i)
		want, known := model.LevelScores[lvl.Level]
		if !known {
			return &ShapeError{Path: path + ".level", Reason: fmt.Sprintf("unknown level %q", lvl.Level)}
		}
		if tags[lvl.Level] {
			return &ShapeError{Path: path + ".level", Reason: fmt.Sprintf("duplicate level %q", lvl.Level)}
		}
		tags[lvl.Level] = true
		if lvl.Score != want {
			return &ShapeError{Path: path + ".score", Reason: fmt.Sprintf("level %s must score %q, got %q", lvl.Level, want, lvl.Score)}
		}
		if len(lvl.Descriptions) != n {
			return &ShapeError{Path: path + ".descriptions", Reason: fmt.Sprintf("expected %d descriptions, got %d", n, len(lvl.Descriptions))}
		}
	}
	return nil
}
