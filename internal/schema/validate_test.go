package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMaterials = `{
  "criteria": {
    "unit": "2. 서로 다른 의견",
    "assessmentArea": "읽기",
    "assessmentPeriod": "4월",
    "assessmentMethod": "서·논술형",
    "achievementStandard": "[4국02-05] 글을 읽고 글쓴이의 주장을 파악한다.",
    "subjectCompetencies": ["비판적·창의적 사고 역량", "의사소통 역량"],
    "assessmentElements": "주장 파악하기"
  },
  "rubric": {
    "criteria": ["글쓴이 의견 파악", "자신의 의견과 비교", "근거 제시"],
    "levels": [
      {"level": "상", "score": "3점", "descriptions": ["a", "b", "c"]},
      {"level": "중", "score": "2점", "descriptions": ["a", "b", "c"]},
      {"level": "하", "score": "1점", "descriptions": ["a", "b", "c"]}
    ]
  },
  "scoringSummary": {"high": "8-9점", "medium": "6-7점", "low": "5점 이하"},
  "exampleAnswers": [{"question": "1번 문항", "answer": "글쓴이는 ..."}]
}`

func TestDecodeCriteriaLevels(t *testing.T) {
	got, err := Decode[model.LevelCriteria](`{"high":"h","medium":"m","low":"l"}`, CriteriaLevels)
	require.NoError(t, err)
	assert.Equal(t, model.LevelCriteria{High: "h", Medium: "m", Low: "l"}, got)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		path string
	}{
		{"empty", "   ", "$"},
		{"not json", "상: 잘함", ""},
		{"trailing garbage", `{"high":"h","medium":"m","low":"l"} extra`, ""},
		{"code fenced", "```json\n{\"high\":\"h\",\"medium\":\"m\",\"low\":\"l\"}\n```", ""},
		{"missing field", `{"high":"h","medium":"m"}`, "$.low"},
		{"wrong type", `{"high":"h","medium":2,"low":"l"}`, "$.medium"},
		{"null field", `{"high":"h","medium":null,"low":"l"}`, "$.medium"},
		{"array root", `[{"high":"h","medium":"m","low":"l"}]`, "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[model.LevelCriteria](tt.raw, CriteriaLevels)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.Equal(t, model.LevelCriteria{}, got)
			if tt.path != "" {
				var se *ShapeError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tt.path, se.Path)
			}
		})
	}
}

func TestDecodeKeyPointsToleratesExtraFields(t *testing.T) {
	got, err := Decode[model.KeyPoints](`{"teachingPoints":"t","assessmentPoints":"a","note":"x"}`, KeyPoints)
	require.NoError(t, err)
	assert.Equal(t, "t", got.TeachingPoints)
	assert.Equal(t, "a", got.AssessmentPoints)
}

func TestDecodeRejectsCaseFoldedDuplicateKeys(t *testing.T) {
	_, err := Decode[model.LevelCriteria](`{"high":"h","medium":"m","low":"l","LOW":"x"}`, CriteriaLevels)
	var se *ShapeError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, "$.LOW", se.Path)

	_, err = Decode[model.GeneratedData](strings.Replace(validMaterials, `"scoringSummary": {`, `"scoringSummary": {"High": "9점", `, 1), Materials)
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, "$.scoringSummary.High", se.Path)
}

func TestDecodeMaterials(t *testing.T) {
	got, err := Decode[model.GeneratedData](validMaterials, Materials)
	require.NoError(t, err)
	require.NoError(t, CheckMaterials(&got))
	assert.Len(t, got.Rubric.Criteria, 3)
	assert.Equal(t, []string{"비판적·창의적 사고 역량", "의사소통 역량"}, got.Criteria.SubjectCompetencies)
	assert.Equal(t, "8-9점", got.ScoringSummary.High)
}

func TestDecodeMaterialsNestedViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
		path   string
	}{
		{
			name:   "competencies not an array",
			mutate: func(s string) string { return strings.Replace(s, `["비판적·창의적 사고 역량", "의사소통 역량"]`, `"의사소통 역량"`, 1) },
			path:   "$.criteria.subjectCompetencies",
		},
		{
			name:   "level missing descriptions",
			mutate: func(s string) string { return strings.Replace(s, `{"level": "하", "score": "1점", "descriptions": ["a", "b", "c"]}`, `{"level": "하", "score": "1점"}`, 1) },
			path:   "$.rubric.levels[2].descriptions",
		},
		{
			name:   "unknown level tag",
			mutate: func(s string) string { return strings.Replace(s, `"level": "하"`, `"level": "최하"`, 1) },
			path:   "$.rubric.levels[2].level",
		},
		{
			name:   "example answers missing",
			mutate: func(s string) string { return strings.Replace(s, `"exampleAnswers"`, `"examples"`, 1) },
			path:   "$.exampleAnswers",
		},
		{
			name:   "answer not a string",
			mutate: func(s string) string { return strings.Replace(s, `"answer": "글쓴이는 ..."`, `"answer": ["글쓴이는 ..."]`, 1) },
			path:   "$.exampleAnswers[0].answer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[model.GeneratedData](tt.mutate(validMaterials), Materials)
			var se *ShapeError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tt.path, se.Path)
		})
	}
}

func TestDecodeMaterialsAllowsEmptyExampleAnswers(t *testing.T) {
	raw := strings.Replace(validMaterials, `[{"question": "1번 문항", "answer": "글쓴이는 ..."}]`, `[]`, 1)
	got, err := Decode[model.GeneratedData](raw, Materials)
	require.NoError(t, err)
	assert.Empty(t, got.ExampleAnswers)
	assert.NoError(t, CheckMaterials(&got))
}
