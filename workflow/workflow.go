package workflow

import (
	"context"
	"fmt"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/mongo"
	"github.com/edulink/internship-api/notifications"
	"github.com/edulink/internship-api/store"
)

//go:generate moq -out mock/notifier.go -pkg mock . StatusChangeNotifier

// StatusChangeNotifier emits an event for every successful status transition,
// so the downstream notification service can email the interested parties
type StatusChangeNotifier interface {
	StatusChanged(ctx context.Context, event notifications.StatusChangedEvent) error
}

// ApplicationDetails contains the details that uniquely identify an application resource
type ApplicationDetails struct {
	applicationID string
}

func (a ApplicationDetails) baseLogData() log.Data {
	return log.Data{"application_id": a.applicationID}
}

// StateMachineWorkflow drives application updates through the status workflow
type StateMachineWorkflow struct {
	DataStore    store.DataStore
	StateMachine *StateMachine
	Notifier     StatusChangeNotifier
	Audit        AuditService
}

// Setup creates a new workflow instance over the provided state machine and collaborators
func Setup(dataStore store.DataStore, stateMachine *StateMachine, notifier StatusChangeNotifier, audit AuditService) *StateMachineWorkflow {
	return &StateMachineWorkflow{
		DataStore:    dataStore,
		StateMachine: stateMachine,
		Notifier:     notifier,
		Audit:        audit,
	}
}

// AmendApplication applies an update to an application under an exclusive document lock.
// A status change in the update is validated against the transition table before any
// write happens; an illegal transition leaves the stored document untouched. The
// eTagSelector is checked against the stored eTag inside the lock, so a caller sending
// a stale If-Match value cannot overwrite a concurrent update.
func (w *StateMachineWorkflow) AmendApplication(ctx context.Context, vars map[string]string, update *models.Application, requestedBy models.RequestedBy, eTagSelector string) (*models.Application, error) {
	details := ApplicationDetails{applicationID: vars["application_id"]}
	logData := details.baseLogData()

	lockID, err := w.DataStore.Backend.AcquireApplicationLock(ctx, details.applicationID)
	if err != nil {
		return nil, err
	}
	defer w.DataStore.Backend.UnlockApplication(ctx, lockID)

	currentApplication, err := w.DataStore.Backend.GetApplication(ctx, details.applicationID)
	if err != nil {
		log.Error(ctx, "amendApplication: failed to find application", err, logData)
		return nil, err
	}

	if eTagSelector != mongo.AnyETag && eTagSelector != currentApplication.ETag {
		log.Error(ctx, "amendApplication: eTag does not match the stored application", errs.ErrApplicationConflict, logData)
		return nil, errs.ErrApplicationConflict
	}

	applicationUpdate, err := populateApplicationUpdate(currentApplication, update)
	if err != nil {
		log.Error(ctx, "amendApplication: creating update model failed", err, logData)
		return nil, err
	}

	statusChanged := update.Status != "" && update.Status != currentApplication.Status
	if statusChanged {
		if err := models.ValidateApplicationStatus(update.Status); err != nil {
			log.Error(ctx, "amendApplication: invalid status requested", err, logData)
			return nil, err
		}

		if err := w.StateMachine.Transition(ctx, w, currentApplication, applicationUpdate, details); err != nil {
			log.Error(ctx, "amendApplication: state machine transition failed", err, logData)
			return nil, err
		}
	}

	newETag, err := w.DataStore.Backend.UpdateApplication(ctx, details.applicationID, applicationUpdate)
	if err != nil {
		log.Error(ctx, "amendApplication: failed to update application", err, logData)
		return nil, err
	}
	applicationUpdate.ETag = newETag

	action := models.ActionUpdate
	if statusChanged {
		action = models.ActionTransition
	}
	resource := fmt.Sprintf("/applications/%s", details.applicationID)
	if err := w.Audit.RecordApplicationAuditEvent(ctx, requestedBy, action, resource, applicationUpdate); err != nil {
		// the update has been carried out at this point, so the request is not failed
		log.Error(ctx, "amendApplication: failed to record audit event", err, logData)
	}

	if statusChanged {
		event := notifications.StatusChangedEvent{
			ApplicationID:  applicationUpdate.ID,
			InternshipID:   applicationUpdate.InternshipID,
			StudentID:      applicationUpdate.StudentID,
			PreviousStatus: currentApplication.Status,
			Status:         applicationUpdate.Status,
		}
		if err := w.Notifier.StatusChanged(ctx, event); err != nil {
			// notification delivery is best effort
			log.Error(ctx, "amendApplication: failed to send status changed event", err, logData)
		}
	}

	return applicationUpdate, nil
}

// populateApplicationUpdate builds the full updated document by copying the stored
// application and overlaying the fields the caller is allowed to change
func populateApplicationUpdate(current, update *models.Application) (*models.Application, error) {
	var amended models.Application
	if err := copier.Copy(&amended, current); err != nil {
		return nil, errors.Wrap(err, "unable to copy current application")
	}

	if update.Status != "" {
		amended.Status = update.Status
	}

	if update.CoverNote != "" {
		amended.CoverNote = update.CoverNote
	}

	if update.DecisionNote != "" {
		amended.DecisionNote = update.DecisionNote
	}

	if update.SupervisorID != "" {
		amended.SupervisorID = update.SupervisorID
	}

	if update.Interview != nil {
		amended.Interview = update.Interview
	}

	return &amended, nil
}

// ReviewApplication marks an application as reviewed by the employer
func ReviewApplication(_ *StateMachineWorkflow, _ context.Context,
	_ *models.Application, applicationUpdate *models.Application, _ ApplicationDetails) error {
	applicationUpdate.Status = models.ReviewedStatus
	return nil
}

// ScheduleInterview moves an application to interview_scheduled. The update must carry
// the interview details.
func ScheduleInterview(_ *StateMachineWorkflow, _ context.Context,
	_ *models.Application, applicationUpdate *models.Application, _ ApplicationDetails) error {
	if applicationUpdate.Interview == nil || applicationUpdate.Interview.ScheduledFor.IsZero() {
		return errs.ErrMissingParameters
	}

	applicationUpdate.Status = models.InterviewScheduledStatus
	return nil
}

// AcceptApplication accepts an application, taking one of the internship's slots.
// The slot is taken with a single guarded store operation, so two concurrent accepts
// racing for the last slot cannot both succeed. The posting is closed when the last
// slot is filled.
func AcceptApplication(w *StateMachineWorkflow, ctx context.Context,
	_ *models.Application, applicationUpdate *models.Application, details ApplicationDetails) error {
	if err := w.DataStore.Backend.AcquireInternshipSlot(ctx, applicationUpdate.InternshipID); err != nil {
		log.Error(ctx, "acceptApplication: failed to take an internship slot", err, details.baseLogData())
		return err
	}

	applicationUpdate.Status = models.AcceptedStatus
	return nil
}

// RejectApplication marks an application as rejected
func RejectApplication(_ *StateMachineWorkflow, _ context.Context,
	_ *models.Application, applicationUpdate *models.Application, _ ApplicationDetails) error {
	applicationUpdate.Status = models.RejectedStatus
	return nil
}

// WithdrawApplication withdraws an application. Withdrawing an accepted application
// releases its slot and reopens the posting if it had been closed as full.
func WithdrawApplication(w *StateMachineWorkflow, ctx context.Context,
	currentApplication *models.Application, applicationUpdate *models.Application, details ApplicationDetails) error {
	if currentApplication.Status == models.AcceptedStatus {
		if err := w.DataStore.Backend.ReleaseInternshipSlot(ctx, applicationUpdate.InternshipID); err != nil {
			log.Error(ctx, "withdrawApplication: failed to release internship slot", err, details.baseLogData())
			return err
		}
	}

	applicationUpdate.Status = models.WithdrawnStatus
	return nil
}

// CompleteApplication marks an accepted application as completed at the end of the placement
func CompleteApplication(_ *StateMachineWorkflow, _ context.Context,
	_ *models.Application, applicationUpdate *models.Application, _ ApplicationDetails) error {
	applicationUpdate.Status = models.CompletedStatus
	return nil
}
