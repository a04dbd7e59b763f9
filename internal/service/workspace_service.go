package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/lshigami/Assessly/internal/model"
	"github.com/rs/zerolog/log"
)

// WorkspaceService is the caller of the generation pipeline. Per user it resolves the stored
// credential, keeps the latest generated materials and the state of the latest run of each
// operation, and wipes the credential when the backend rejects it.
type WorkspaceService interface {
	GenerateCriteriaLevels(ctx context.Context, userID uint, plan model.AssessmentPlan) (*model.LevelCriteria, error)
	GenerateKeyPoints(ctx context.Context, userID uint, plan model.AssessmentPlan) (*model.KeyPoints, error)
	GenerateMaterials(ctx context.Context, userID uint, plan model.AssessmentPlan, task model.TaskInput) (*model.GeneratedData, error)
	LatestMaterials(userID uint) (*model.GeneratedData, bool)
	Reset(userID uint)
	Operations(userID uint) []Run
}

type workspace struct {
	materials    *model.GeneratedData
	materialsSeq uint64
	runs         map[OperationKind]Run
	runSeqs      map[OperationKind]uint64
}

type workspaceService struct {
	assessments AssessmentService
	credentials CredentialService

	seq        atomic.Uint64
	mu         sync.Mutex
	workspaces map[uint]*workspace
}

func NewWorkspaceService(assessments AssessmentService, credentials CredentialService) WorkspaceService {
	return &workspaceService{
		assessments: assessments,
		credentials: credentials,
		workspaces:  make(map[uint]*workspace),
	}
}

// get must be called with mu held.
func (s *workspaceService) get(userID uint) *workspace {
	ws, ok := s.workspaces[userID]
	if !ok {
		ws = &workspace{runs: make(map[OperationKind]Run), runSeqs: make(map[OperationKind]uint64)}
		s.workspaces[userID] = ws
	}
	return ws
}

// invocationObserver records run transitions unless a later invocation of the same
// operation has already been recorded.
type invocationObserver struct {
	s      *workspaceService
	userID uint
	seq    uint64
}

func (o invocationObserver) RunChanged(r Run) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	ws := o.s.get(o.userID)
	if ws.runSeqs[r.Op] > o.seq {
		return
	}
	ws.runSeqs[r.Op] = o.seq
	ws.runs[r.Op] = r
}

func (s *workspaceService) begin(ctx context.Context, userID uint) (context.Context, string, uint64, error) {
	seq := s.seq.Add(1)
	key, err := s.credentials.Resolve(userID)
	if err != nil {
		return ctx, "", seq, err
	}
	return WithRunObserver(ctx, invocationObserver{s: s, userID: userID, seq: seq}), key, seq, nil
}

// handleFailure performs the credential wipe the pipeline asks for; the error is returned unchanged.
func (s *workspaceService) handleFailure(userID uint, err error) error {
	if errors.Is(err, ErrInvalidCredential) {
		if wipeErr := s.credentials.Invalidate(userID); wipeErr != nil {
			log.Error().Err(wipeErr).Uint("userID", userID).Msg("Failed to invalidate rejected credential")
		}
	}
	return err
}

func (s *workspaceService) GenerateCriteriaLevels(ctx context.Context, userID uint, plan model.AssessmentPlan) (*model.LevelCriteria, error) {
	ctx, key, _, err := s.begin(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := s.assessments.GenerateCriteriaLevels(ctx, key, plan)
	if err != nil {
		return nil, s.handleFailure(userID, err)
	}
	return out, nil
}

func (s *workspaceService) GenerateKeyPoints(ctx context.Context, userID uint, plan model.AssessmentPlan) (*model.KeyPoints, error) {
	ctx, key, _, err := s.begin(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := s.assessments.GenerateKeyPoints(ctx, key, plan)
	if err != nil {
		return nil, s.handleFailure(userID, err)
	}
	return out, nil
}

func (s *workspaceService) GenerateMaterials(ctx context.Context, userID uint, plan model.AssessmentPlan, task model.TaskInput) (*model.GeneratedData, error) {
	ctx, key, seq, err := s.begin(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := s.assessments.GenerateMaterials(ctx, key, plan, task)
	if err != nil {
		return nil, s.handleFailure(userID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.get(userID)
	if seq > ws.materialsSeq {
		ws.materials = out
		ws.materialsSeq = seq
	} else {
		log.Info().Uint("userID", userID).Uint64("seq", seq).Msg("Discarding materials from a run superseded by a newer run or reset")
	}
	return out, nil
}

func (s *workspaceService) LatestMaterials(userID uint) (*model.GeneratedData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.get(userID)
	return ws.materials, ws.materials != nil
}

// Reset drops the held materials; runs started before the reset can no longer store theirs.
func (s *workspaceService) Reset(userID uint) {
	seq := s.seq.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.get(userID)
	ws.materials = nil
	ws.materialsSeq = seq
}

// Operations returns the latest run per operation kind; kinds never invoked are idle.
func (s *workspaceService) Operations(userID uint) []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.get(userID)
	out := make([]Run, 0, len(OperationKinds))
	for _, op := range OperationKinds {
		r, ok := ws.runs[op]
		if !ok {
			r = Run{Op: op, State: StateIdle}
		}
		out = append(out, r)
	}
	return out
}
