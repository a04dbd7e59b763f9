package service

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind names one of the three generation operations.
type OperationKind string

const (
	OpCriteriaLevels OperationKind = "criteria_levels"
	OpKeyPoints      OperationKind = "key_points"
	OpMaterials      OperationKind = "materials"
)

// OperationKinds lists every operation in display order.
var OperationKinds = []OperationKind{OpCriteriaLevels, OpKeyPoints, OpMaterials}

// OperationState is the lifecycle of a single invocation: idle -> pending -> succeeded|failed.
type OperationState string

const (
	StateIdle      OperationState = "idle"
	StatePending   OperationState = "pending"
	StateSucceeded OperationState = "succeeded"
	StateFailed    OperationState = "failed"
)

func (s OperationState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// Run is one invocation of an operation. Both terminal states are final; a new attempt is a new Run.
type Run struct {
	ID         string         `json:"id"`
	Op         OperationKind  `json:"operation"`
	State      OperationState `json:"state"`
	Failure    FailureKind    `json:"failure,omitempty"`
	StartedAt  time.Time      `json:"started_at,omitempty"`
	FinishedAt time.Time      `json:"finished_at,omitempty"`
}

// RunObserver receives every state transition of a run.
type RunObserver interface {
	RunChanged(run Run)
}

type noopObserver struct{}

func (noopObserver) RunChanged(Run) {}

func newRun(op OperationKind) *Run {
	return &Run{ID: uuid.NewString(), Op: op, State: StateIdle}
}

func (r *Run) start(obs RunObserver) {
	if r.State != StateIdle {
		return
	}
	r.State = StatePending
	r.StartedAt = time.Now()
	obs.RunChanged(*r)
}

func (r *Run) finish(obs RunObserver, err error) {
	if r.State != StatePending {
		return
	}
	r.FinishedAt = time.Now()
	if err != nil {
		r.State = StateFailed
		r.Failure = FailureKindOf(err)
	} else {
		r.State = StateSucceeded
	}
	obs.RunChanged(*r)
}
