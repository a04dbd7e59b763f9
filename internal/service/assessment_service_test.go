package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const materialsResponse = `{
  "criteria": {
    "unit": "2. 서로 다른 의견",
    "assessmentArea": "읽기",
    "assessmentPeriod": "4월",
    "assessmentMethod": "서·논술형",
    "achievementStandard": "[4국02-05] 글을 읽고 글쓴이의 주장을 파악한다.",
    "subjectCompetencies": ["비판적·창의적 사고 역량"],
    "assessmentElements": "다른 값"
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

func samplePlan() model.AssessmentPlan {
	return model.AssessmentPlan{
		Subject:             "국어",
		Domain:              "읽기",
		Period:              "4월",
		AssessmentMethod:    "서·논술형",
		AssessmentElements:  "주장 파악하기",
		AchievementStandard: "[4국02-05] 글을 읽고 글쓴이의 주장을 파악한다.",
		KeyPoints:           "[수업 주안점]\n주장 찾기\n\n[평가 주안점]\n근거 평가",
		Criteria:            model.LevelCriteria{High: "h", Medium: "m", Low: "l"},
	}
}

func TestGenerateMaterialsOverridesAssessmentElements(t *testing.T) {
	client := &fakeClient{response: materialsResponse}
	svc := NewAssessmentService(client)

	got, err := svc.GenerateMaterials(context.Background(), "key", samplePlan(), model.TaskInput{Text: "주장을 찾아 쓰시오."})
	require.NoError(t, err)
	assert.Equal(t, "주장 파악하기", got.Criteria.AssessmentElements)
	assert.Equal(t, "서·논술형", got.Criteria.AssessmentMethod)
	assert.Len(t, got.Rubric.Levels, 3)

	require.Equal(t, 1, client.calls())
	assert.Equal(t, schema.Materials, client.requests[0].Contract)
	assert.Nil(t, client.requests[0].Attachment)
	assert.Equal(t, "key", client.credentials[0])
}

func TestGenerateMaterialsForwardsAttachment(t *testing.T) {
	client := &fakeClient{response: materialsResponse}
	svc := NewAssessmentService(client)
	att := &model.Attachment{Data: []byte("%PDF-1.4"), MIMEType: "application/pdf"}

	_, err := svc.GenerateMaterials(context.Background(), "key", samplePlan(), model.TaskInput{Attachment: att})
	require.NoError(t, err)
	require.Equal(t, 1, client.calls())
	assert.Same(t, att, client.requests[0].Attachment)
}

func TestGenerateMaterialsFailures(t *testing.T) {
	twoLevels := strings.Replace(materialsResponse, `,
      {"level": "하", "score": "1점", "descriptions": ["a", "b", "c"]}`, "", 1)
	wrongSummary := strings.Replace(materialsResponse, `"8-9점"`, `"7-9점"`, 1)

	tests := []struct {
		name     string
		response string
		err      error
		want     FailureKind
	}{
		{"empty body", "", nil, EmptyResponse},
		{"whitespace body", " \n ", nil, EmptyResponse},
		{"not json", "상: 잘함", nil, MalformedResponse},
		{"two levels", twoLevels, nil, MalformedResponse},
		{"scoring summary disagrees with rubric", wrongSummary, nil, MalformedResponse},
		{"rejected key", "", failure(InvalidCredential, errors.New("API key not valid")), InvalidCredential},
		{"transport", "", errors.New("connection reset"), BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssessmentService(&fakeClient{response: tt.response, err: tt.err})
			got, err := svc.GenerateMaterials(context.Background(), "key", samplePlan(), model.TaskInput{Text: "문항"})
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.want, FailureKindOf(err))

			var ge *GenerationError
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, OpMaterials, ge.Op)
			assert.Equal(t, tt.want == InvalidCredential, errors.Is(err, ErrInvalidCredential))
			assert.Equal(t, tt.want != InvalidCredential, errors.Is(err, ErrGenerationFailed))
		})
	}
}

func TestNoBackendCallWithoutCredentialOrInput(t *testing.T) {
	plan := samplePlan()
	blank := model.AssessmentPlan{}

	tests := []struct {
		name       string
		credential string
		call       func(AssessmentService, string) error
		want       FailureKind
	}{
		{"materials without key", "", func(s AssessmentService, key string) error {
			_, err := s.GenerateMaterials(context.Background(), key, plan, model.TaskInput{Text: "문항"})
			return err
		}, MissingCredential},
		{"blank key", "   ", func(s AssessmentService, key string) error {
			_, err := s.GenerateKeyPoints(context.Background(), key, plan)
			return err
		}, MissingCredential},
		{"materials without task", "key", func(s AssessmentService, key string) error {
			_, err := s.GenerateMaterials(context.Background(), key, plan, model.TaskInput{Text: "  "})
			return err
		}, InvalidInput},
		{"criteria levels with blank plan", "key", func(s AssessmentService, key string) error {
			_, err := s.GenerateCriteriaLevels(context.Background(), key, blank)
			return err
		}, InvalidInput},
		{"key points with blank plan", "key", func(s AssessmentService, key string) error {
			_, err := s.GenerateKeyPoints(context.Background(), key, blank)
			return err
		}, InvalidInput},
		{"missing key wins over blank input", "", func(s AssessmentService, key string) error {
			_, err := s.GenerateCriteriaLevels(context.Background(), key, blank)
			return err
		}, MissingCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: materialsResponse}
			err := tt.call(NewAssessmentService(client), tt.credential)
			require.Error(t, err)
			assert.Equal(t, tt.want, FailureKindOf(err))
			assert.Zero(t, client.calls())
		})
	}
}

func TestEachBlankRequiredFieldSkipsBackend(t *testing.T) {
	criteriaLevels := func(s AssessmentService, plan model.AssessmentPlan) error {
		_, err := s.GenerateCriteriaLevels(context.Background(), "key", plan)
		return err
	}
	keyPoints := func(s AssessmentService, plan model.AssessmentPlan) error {
		_, err := s.GenerateKeyPoints(context.Background(), "key", plan)
		return err
	}

	tests := []struct {
		name  string
		blank func(*model.AssessmentPlan)
		call  func(AssessmentService, model.AssessmentPlan) error
		field string
	}{
		{"criteria levels achievementStandard", func(p *model.AssessmentPlan) { p.AchievementStandard = "" }, criteriaLevels, "achievementStandard"},
		{"criteria levels keyPoints", func(p *model.AssessmentPlan) { p.KeyPoints = " \n " }, criteriaLevels, "keyPoints"},
		{"key points subject", func(p *model.AssessmentPlan) { p.Subject = "" }, keyPoints, "subject"},
		{"key points domain", func(p *model.AssessmentPlan) { p.Domain = "" }, keyPoints, "domain"},
		{"key points assessmentMethod", func(p *model.AssessmentPlan) { p.AssessmentMethod = "  " }, keyPoints, "assessmentMethod"},
		{"key points assessmentElements", func(p *model.AssessmentPlan) { p.AssessmentElements = "" }, keyPoints, "assessmentElements"},
		{"key points achievementStandard", func(p *model.AssessmentPlan) { p.AchievementStandard = "" }, keyPoints, "achievementStandard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := samplePlan()
			tt.blank(&plan)
			client := &fakeClient{response: `{"high":"h","medium":"m","low":"l","teachingPoints":"t","assessmentPoints":"a"}`}

			err := tt.call(NewAssessmentService(client), plan)
			require.Error(t, err)
			assert.Equal(t, InvalidInput, FailureKindOf(err))
			assert.Contains(t, err.Error(), tt.field)
			assert.Zero(t, client.calls())
		})
	}
}

func TestGenerateCriteriaLevels(t *testing.T) {
	client := &fakeClient{response: `{"high":"주장을 정확히 파악한다","medium":"주장을 대체로 파악한다","low":"도움을 받아 파악한다"}`}
	got, err := NewAssessmentService(client).GenerateCriteriaLevels(context.Background(), "key", samplePlan())
	require.NoError(t, err)
	assert.Equal(t, "주장을 대체로 파악한다", got.Medium)
	require.Equal(t, 1, client.calls())
	assert.Equal(t, schema.CriteriaLevels, client.requests[0].Contract)
	assert.Contains(t, client.requests[0].Prompt, samplePlan().AchievementStandard)
}

func TestGenerateKeyPoints(t *testing.T) {
	client := &fakeClient{response: `{"teachingPoints":"t","assessmentPoints":"a","extra":1}`}
	got, err := NewAssessmentService(client).GenerateKeyPoints(context.Background(), "key", samplePlan())
	require.NoError(t, err)
	assert.Equal(t, model.KeyPoints{TeachingPoints: "t", AssessmentPoints: "a"}, *got)
	assert.Equal(t, schema.KeyPoints, client.requests[0].Contract)

	_, err = NewAssessmentService(&fakeClient{response: `{"teachingPoints":"t"}`}).
		GenerateKeyPoints(context.Background(), "key", samplePlan())
	assert.Equal(t, MalformedResponse, FailureKindOf(err))
}

func TestRunObserverSeesLifecycle(t *testing.T) {
	obs := &recordingObserver{}
	ctx := WithRunObserver(context.Background(), obs)
	svc := NewAssessmentService(&fakeClient{response: `{"high":"h","medium":"m","low":"l"}`})

	_, err := svc.GenerateCriteriaLevels(ctx, "key", samplePlan())
	require.NoError(t, err)
	_, err = svc.GenerateCriteriaLevels(ctx, "", samplePlan())
	require.Error(t, err)

	require.Len(t, obs.runs, 4)
	assert.Equal(t, StatePending, obs.runs[0].State)
	assert.Equal(t, StateSucceeded, obs.runs[1].State)
	assert.Equal(t, obs.runs[0].ID, obs.runs[1].ID)
	assert.Equal(t, StatePending, obs.runs[2].State)
	assert.Equal(t, StateFailed, obs.runs[3].State)
	assert.Equal(t, MissingCredential, obs.runs[3].Failure)
	assert.NotEqual(t, obs.runs[1].ID, obs.runs[3].ID)
	assert.True(t, obs.runs[3].State.Terminal())
}

func TestRunTransitionsAreFinal(t *testing.T) {
	obs := &recordingObserver{}
	r := newRun(OpKeyPoints)
	r.finish(obs, nil)
	assert.Equal(t, StateIdle, r.State)

	r.start(obs)
	r.finish(obs, failure(BackendError, errors.New("boom")))
	r.finish(obs, nil)
	r.start(obs)
	assert.Equal(t, StateFailed, r.State)
	assert.Equal(t, BackendError, r.Failure)
	assert.Len(t, obs.runs, 2)
}
