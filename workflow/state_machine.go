package workflow

import (
	"context"

	"github.com/ONSdigital/log.go/v2/log"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/store"
)

// State represents a single state of the application status workflow.
// EnterFunc is invoked when an application transitions into the state, and is
// responsible for applying the state's side effects to the update document.
type State struct {
	Name      string
	EnterFunc func(w *StateMachineWorkflow, ctx context.Context,
		currentApplication *models.Application,
		applicationUpdate *models.Application,
		details ApplicationDetails) error
}

func (s State) String() string {
	return s.Name
}

// StateMachine enforces the fixed application status transition table
type StateMachine struct {
	states      map[string]State
	transitions map[string][]string
	DataStore   store.DataStore
}

// Transition describes the set of source statuses from which the target state may be entered
type Transition struct {
	Label               string
	TargetState         State
	AllowedSourceStates []string
}

func castStateToState(state string) *State {
	switch state {
	case "pending":
		return &Pending
	case "reviewed":
		return &Reviewed
	case "interview_scheduled":
		return &InterviewScheduled
	case "accepted":
		return &Accepted
	case "rejected":
		return &Rejected
	case "withdrawn":
		return &Withdrawn
	case "completed":
		return &Completed
	default:
		return nil
	}
}

// Transition checks the requested status change against the transition table and,
// if allowed, runs the target state's enter function. The document is left
// untouched when the transition is not allowed.
func (sm *StateMachine) Transition(ctx context.Context, w *StateMachineWorkflow,
	currentApplication *models.Application,
	applicationUpdate *models.Application,
	details ApplicationDetails) error {
	allowedSources, ok := sm.transitions[applicationUpdate.Status]
	if !ok {
		log.Warn(ctx, "unknown target status requested", log.Data{"target_status": applicationUpdate.Status})
		return errs.ErrApplicationStateInvalid
	}

	match := false
	for _, source := range allowedSources {
		if currentApplication.Status == source {
			match = true
			break
		}
	}

	if !match {
		log.Warn(ctx, "status not allowed to transition", log.Data{
			"current_status": currentApplication.Status,
			"target_status":  applicationUpdate.Status,
		})
		return errs.ErrApplicationStateInvalid
	}

	nextState := castStateToState(applicationUpdate.Status)
	if nextState == nil {
		return errs.ErrApplicationStateInvalid
	}

	return nextState.EnterFunc(w, ctx, currentApplication, applicationUpdate, details)
}

// NewStateMachine builds a state machine from the provided states and transition table
func NewStateMachine(states []State, transitions []Transition, dataStore store.DataStore) *StateMachine {
	statesMap := make(map[string]State)
	for _, state := range states {
		statesMap[state.String()] = state
	}

	transitionsMap := make(map[string][]string)
	for _, transition := range transitions {
		transitionsMap[transition.TargetState.String()] = transition.AllowedSourceStates
	}

	return &StateMachine{
		states:      statesMap,
		transitions: transitionsMap,
		DataStore:   dataStore,
	}
}
