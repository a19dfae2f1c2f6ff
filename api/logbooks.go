package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
)

func (api *InternshipAPI) getLogbookEntries(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logData := log.Data{"application_id": applicationID}

	if _, err := api.dataStore.Backend.GetApplication(ctx, applicationID); err != nil {
		log.Error(ctx, "getLogbookEntries endpoint: failed to find application", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	entries, totalCount, err := api.dataStore.Backend.GetLogbookEntries(ctx, applicationID, offset, limit)
	if err != nil {
		log.Error(ctx, "getLogbookEntries endpoint: failed to fetch logbook entries", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	log.Info(ctx, "getLogbookEntries endpoint: request successful", logData)
	return entries, totalCount, nil
}

func (api *InternshipAPI) addLogbookEntry(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logData := log.Data{"application_id": applicationID}

	entry, err := models.CreateLogbookEntry(r.Body)
	if err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := models.ValidateLogbookEntry(entry); err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: failed validation check on logbook entry", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	application, err := api.dataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: failed to find application", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	// logbook entries can only be recorded against a placement in progress or just finished
	if application.Status != models.AcceptedStatus && application.Status != models.CompletedStatus {
		log.Error(ctx, "addLogbookEntry endpoint: application is not an active placement", errs.ErrResourceState, logData)
		handleAPIErr(ctx, errs.ErrResourceState, w, logData)
		return
	}

	entry.ApplicationID = applicationID
	entry.StudentID = application.StudentID
	entry.Status = models.SubmittedLogbookStatus
	entry.SupervisorComment = ""
	entry.ReviewedAt = nil
	entry.SubmittedAt = time.Now().UTC()
	entry.Links = &models.LogbookLinks{
		Application: &models.LinkObject{
			HRef: api.urlBuilder.BuildApplicationURL(applicationID),
			ID:   applicationID,
		},
	}
	logData["week"] = entry.Week

	newEntry, err := api.dataStore.Backend.UpsertLogbookEntry(ctx, entry)
	if err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: failed to upsert logbook entry", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordLogbookAudit(r, models.ActionCreate, newEntry, logData)

	b, err := json.Marshal(newEntry)
	if err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: failed to marshal logbook entry into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "addLogbookEntry endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "addLogbookEntry endpoint: request completed successfully", logData)
}

// putLogbookEntry records a supervisor's review of a weekly logbook entry
func (api *InternshipAPI) putLogbookEntry(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	entryID := vars["entry_id"]
	logData := log.Data{"application_id": applicationID, "entry_id": entryID}

	review, err := models.CreateLogbookEntry(r.Body)
	if err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := models.ValidateLogbookReview(review); err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: failed validation check on review", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := api.dataStore.Backend.GetLogbookEntry(ctx, applicationID, entryID)
	if err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: failed to find logbook entry", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	reviewedAt := time.Now().UTC()
	entry.Status = review.Status
	entry.SupervisorComment = review.SupervisorComment
	entry.ReviewedAt = &reviewedAt

	if err := api.dataStore.Backend.UpdateLogbookEntry(ctx, entryID, entry); err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: failed to update logbook entry", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordLogbookAudit(r, models.ActionUpdate, entry, logData)

	b, err := json.Marshal(entry)
	if err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: failed to marshal logbook entry into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "putLogbookEntry endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "putLogbookEntry endpoint: request successful", logData)
}

func (api *InternshipAPI) recordLogbookAudit(r *http.Request, action models.Action, entry *models.LogbookEntry, logData log.Data) {
	ctx := r.Context()
	resource := fmt.Sprintf("/applications/%s/logbook/%s", entry.ApplicationID, entry.ID)
	if err := api.auditService.RecordLogbookAuditEvent(ctx, requestedBy(r), action, resource, entry); err != nil {
		// the action itself has succeeded, so only log the audit failure
		log.Error(ctx, "failed to record logbook audit event", err, logData)
	}
}
