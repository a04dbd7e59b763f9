package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/prompt"
	"github.com/lshigami/Assessly/internal/schema"
	"github.com/rs/zerolog/log"
)

// AssessmentService exposes the three generation operations. Each call is an independent run;
// nothing is retried, cached or shared between calls.
type AssessmentService interface {
	GenerateCriteriaLevels(ctx context.Context, credential string, plan model.AssessmentPlan) (*model.LevelCriteria, error)
	GenerateKeyPoints(ctx context.Context, credential string, plan model.AssessmentPlan) (*model.KeyPoints, error)
	GenerateMaterials(ctx context.Context, credential string, plan model.AssessmentPlan, task model.TaskInput) (*model.GeneratedData, error)
}

type assessmentService struct {
	client GenerationClient
}

func NewAssessmentService(client GenerationClient) AssessmentService {
	return &assessmentService{client: client}
}

type observerKey struct{}

// WithRunObserver attaches an observer that is told about every run started with ctx.
func WithRunObserver(ctx context.Context, obs RunObserver) context.Context {
	return context.WithValue(ctx, observerKey{}, obs)
}

func runObserverFrom(ctx context.Context) RunObserver {
	if obs, ok := ctx.Value(observerKey{}).(RunObserver); ok && obs != nil {
		return obs
	}
	return noopObserver{}
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var blank []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	if len(blank) > 0 {
		return fmt.Errorf("required fields are blank: %s", strings.Join(blank, ", "))
	}
	return nil
}

// operation describes one pipeline pass: input check, request, decode.
type operation[T any] struct {
	kind     OperationKind
	validate func() error
	request  func() GenerationRequest
	decode   func(raw string) (*T, error)
}

func run[T any](ctx context.Context, client GenerationClient, credential string, op operation[T]) (*T, error) {
	obs := runObserverFrom(ctx)
	r := newRun(op.kind)
	r.start(obs)

	out, err := func() (*T, error) {
		if strings.TrimSpace(credential) == "" {
			return nil, failure(MissingCredential, errors.New("no API key configured"))
		}
		if err := op.validate(); err != nil {
			return nil, failure(InvalidInput, err)
		}
		// A request is not cancelled once it has been issued.
		raw, err := client.Generate(context.WithoutCancel(ctx), credential, op.request())
		if err != nil {
			return nil, asGenerationError(err)
		}
		if strings.TrimSpace(raw) == "" {
			return nil, failure(EmptyResponse, errors.New("backend returned no text content"))
		}
		v, err := op.decode(raw)
		if err != nil {
			return nil, failure(MalformedResponse, err)
		}
		return v, nil
	}()
	if err != nil {
		ge := asGenerationError(err)
		ge.Op = op.kind
		event := log.Error()
		if ge.Kind == InvalidInput || ge.Kind == MissingCredential {
			event = log.Warn()
		}
		event.Err(ge.Err).Str("runID", r.ID).Str("operation", string(op.kind)).Str("failure", string(ge.Kind)).Msg("Generation operation failed")
		r.finish(obs, ge)
		return nil, ge
	}
	log.Info().Str("runID", r.ID).Str("operation", string(op.kind)).Msg("Generation operation succeeded")
	r.finish(obs, nil)
	return out, nil
}

func asGenerationError(err error) *GenerationError {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge
	}
	return failure(BackendError, err)
}

func (s *assessmentService) GenerateCriteriaLevels(ctx context.Context, credential string, plan model.AssessmentPlan) (*model.LevelCriteria, error) {
	return run(ctx, s.client, credential, operation[model.LevelCriteria]{
		kind: OpCriteriaLevels,
		validate: func() error {
			return requireFields(
				field{"achievementStandard", plan.AchievementStandard},
				field{"keyPoints", plan.KeyPoints},
			)
		},
		request: func() GenerationRequest {
			return GenerationRequest{
				Prompt:   prompt.CriteriaLevels(plan.AchievementStandard, plan.KeyPoints),
				Contract: schema.CriteriaLevels,
			}
		},
		decode: func(raw string) (*model.LevelCriteria, error) {
			v, err := schema.Decode[model.LevelCriteria](raw, schema.CriteriaLevels)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	})
}

func (s *assessmentService) GenerateKeyPoints(ctx context.Context, credential string, plan model.AssessmentPlan) (*model.KeyPoints, error) {
	return run(ctx, s.client, credential, operation[model.KeyPoints]{
		kind: OpKeyPoints,
		validate: func() error {
			return requireFields(
				field{"subject", plan.Subject},
				field{"domain", plan.Domain},
				field{"assessmentMethod", plan.AssessmentMethod},
				field{"assessmentElements", plan.AssessmentElements},
				field{"achievementStandard", plan.AchievementStandard},
			)
		},
		request: func() GenerationRequest {
			return GenerationRequest{Prompt: prompt.KeyPoints(plan), Contract: schema.KeyPoints}
		},
		decode: func(raw string) (*model.KeyPoints, error) {
			v, err := schema.Decode[model.KeyPoints](raw, schema.KeyPoints)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	})
}

func (s *assessmentService) GenerateMaterials(ctx context.Context, credential string, plan model.AssessmentPlan, task model.TaskInput) (*model.GeneratedData, error) {
	return run(ctx, s.client, credential, operation[model.GeneratedData]{
		kind: OpMaterials,
		validate: func() error {
			if task.IsEmpty() {
				return errors.New("task text or attachment is required")
			}
			return nil
		},
		request: func() GenerationRequest {
			req := GenerationRequest{Prompt: prompt.Materials(plan, task), Contract: schema.Materials}
			if task.HasAttachment() {
				req.Attachment = task.Attachment
			}
			return req
		},
		decode: func(raw string) (*model.GeneratedData, error) {
			v, err := schema.Decode[model.GeneratedData](raw, schema.Materials)
			if err != nil {
				return nil, err
			}
			if err := schema.CheckMaterials(&v); err != nil {
				return nil, err
			}
			if err := Reconcile(plan, &v); err != nil {
				return nil, err
			}
			return &v, nil
		},
	})
}
