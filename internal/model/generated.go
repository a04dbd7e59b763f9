package model

// Achievement level tags used by the rubric.
const (
	LevelHigh   = "상"
	LevelMedium = "중"
	LevelLow    = "하"
)

// Fixed per-criterion score labels.
const (
	ScoreHigh   = "3점"
	ScoreMedium = "2점"
	ScoreLow    = "1점"
)

// PointsPerCriterion is the score of the top level for a single rubric criterion.
const PointsPerCriterion = 3

// LevelScores maps each level tag to its fixed score label.
var LevelScores = map[string]string{
	LevelHigh:   ScoreHigh,
	LevelMedium: ScoreMedium,
	LevelLow:    ScoreLow,
}

type GeneratedCriteria struct {
	Unit                string   `json:"unit"`
	AssessmentArea      string   `json:"assessmentArea"`
	AssessmentPeriod    string   `json:"assessmentPeriod"`
	AssessmentMethod    string   `json:"assessmentMethod"`
	AchievementStandard string   `json:"achievementStandard"`
	SubjectCompetencies []string `json:"subjectCompetencies"`
	AssessmentElements  string   `json:"assessmentElements"`
}

type RubricLevel struct {
	Level        string   `json:"level"`
	Score        string   `json:"score"`
	Descriptions []string `json:"descriptions"`
}

// Rubric is an analytic scoring table; Levels[i].Descriptions is index-aligned with Criteria.
type Rubric struct {
	Criteria []string      `json:"criteria"`
	Levels   []RubricLevel `json:"levels"`
}

// TotalScore is the maximum achievable score for the rubric.
func (r Rubric) TotalScore() int {
	return PointsPerCriterion * len(r.Criteria)
}

type ScoringSummary struct {
	High   string `json:"high"`
	Medium string `json:"medium"`
	Low    string `json:"low"`
}

type ExampleAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedData is the full-materials result. It is replaced wholesale on every successful run.
type GeneratedData struct {
	Criteria       GeneratedCriteria `json:"criteria"`
	Rubric         Rubric            `json:"rubric"`
	ScoringSummary ScoringSummary    `json:"scoringSummary"`
	ExampleAnswers []ExampleAnswer   `json:"exampleAnswers"`
}
