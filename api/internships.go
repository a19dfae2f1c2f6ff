package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
)

func (api *InternshipAPI) getInternships(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	logData := log.Data{}

	state := r.URL.Query().Get("state")
	employerID := r.URL.Query().Get("employer_id")
	institutionID := r.URL.Query().Get("institution_id")

	if state != "" {
		logData["state"] = state
		if err := models.ValidateInternshipState(state); err != nil {
			log.Error(ctx, "getInternships endpoint: invalid state filter", err, logData)
			handleAPIErr(ctx, errs.ErrInvalidQueryParameter, w, logData)
			return nil, 0, errs.ErrInvalidQueryParameter
		}
	}

	internships, totalCount, err := api.dataStore.Backend.GetInternships(ctx, offset, limit, state, employerID, institutionID)
	if err != nil {
		log.Error(ctx, "getInternships endpoint: failed to fetch internships", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	log.Info(ctx, "getInternships endpoint: request successful", logData)
	return internships, totalCount, nil
}

func (api *InternshipAPI) getInternship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	internshipID := vars["internship_id"]
	logData := log.Data{"internship_id": internshipID}

	internship, err := api.dataStore.Backend.GetInternship(ctx, internshipID)
	if err != nil {
		log.Error(ctx, "getInternship endpoint: failed to find internship", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(internship)
	if err != nil {
		log.Error(ctx, "getInternship endpoint: failed to marshal internship resource into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "getInternship endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "getInternship endpoint: request successful", logData)
}

func (api *InternshipAPI) addInternship(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	logData := log.Data{}

	internship, err := models.CreateInternship(r.Body)
	if err != nil {
		log.Error(ctx, "addInternship endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := models.ValidateInternship(internship); err != nil {
		log.Error(ctx, "addInternship endpoint: failed validation check on internship", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if internship.State == "" {
		internship.State = models.DraftState
	}
	if err := models.ValidateInternshipState(internship.State); err != nil {
		log.Error(ctx, "addInternship endpoint: invalid internship state", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	internshipID, err := uuid.NewV4()
	if err != nil {
		log.Error(ctx, "addInternship endpoint: failed to generate internship id", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	internship.ID = internshipID.String()
	internship.SlotsFilled = 0
	internship.LastUpdated = time.Now().UTC()
	internship.Links = &models.InternshipLinks{
		Self: &models.LinkObject{
			HRef: api.urlBuilder.BuildInternshipURL(internship.ID),
			ID:   internship.ID,
		},
		Applications: &models.LinkObject{
			HRef: api.urlBuilder.BuildInternshipApplicationsURL(internship.ID),
		},
	}
	logData["internship_id"] = internship.ID

	if err := api.dataStore.Backend.UpsertInternship(ctx, internship.ID, internship); err != nil {
		log.Error(ctx, "addInternship endpoint: failed to insert internship resource", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordInternshipAudit(r, models.ActionCreate, internship, logData)

	b, err := json.Marshal(internship)
	if err != nil {
		log.Error(ctx, "addInternship endpoint: failed to marshal internship resource into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "addInternship endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "addInternship endpoint: request completed successfully", logData)
}

func (api *InternshipAPI) putInternship(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	vars := mux.Vars(r)
	internshipID := vars["internship_id"]
	logData := log.Data{"internship_id": internshipID}

	internshipUpdate, err := models.CreateInternship(r.Body)
	if err != nil {
		log.Error(ctx, "putInternship endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	currentInternship, err := api.dataStore.Backend.GetInternship(ctx, internshipID)
	if err != nil {
		log.Error(ctx, "putInternship endpoint: failed to find internship", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	updatedInternship := populateInternshipUpdate(currentInternship, internshipUpdate)

	if err := models.ValidateInternship(updatedInternship); err != nil {
		log.Error(ctx, "putInternship endpoint: failed validation check on internship", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := models.ValidateInternshipState(updatedInternship.State); err != nil {
		log.Error(ctx, "putInternship endpoint: invalid internship state", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if updatedInternship.Slots < currentInternship.SlotsFilled {
		log.Error(ctx, "putInternship endpoint: slots reduced below the number already filled", errs.ErrSlotsBelowFilled, logData)
		handleAPIErr(ctx, errs.ErrSlotsBelowFilled, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpsertInternship(ctx, internshipID, updatedInternship); err != nil {
		log.Error(ctx, "putInternship endpoint: failed to update internship resource", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordInternshipAudit(r, models.ActionUpdate, updatedInternship, logData)

	setJSONContentType(w)
	w.WriteHeader(http.StatusOK)
	log.Info(ctx, "putInternship endpoint: request successful", logData)
}

func (api *InternshipAPI) deleteInternship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	internshipID := vars["internship_id"]
	logData := log.Data{"internship_id": internshipID}

	internship, err := api.dataStore.Backend.GetInternship(ctx, internshipID)
	if err != nil {
		log.Error(ctx, "deleteInternship endpoint: failed to find internship", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	// postings that have been opened for applications cannot be removed
	if internship.State != models.DraftState {
		log.Error(ctx, "deleteInternship endpoint: unable to delete internship", errs.ErrDeleteOpenInternship, logData)
		handleAPIErr(ctx, errs.ErrDeleteOpenInternship, w, logData)
		return
	}

	if err := api.dataStore.Backend.DeleteInternship(ctx, internshipID); err != nil {
		log.Error(ctx, "deleteInternship endpoint: failed to delete internship resource", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordInternshipAudit(r, models.ActionDelete, internship, logData)

	w.WriteHeader(http.StatusNoContent)
	log.Info(ctx, "deleteInternship endpoint: request successful", logData)
}

// populateInternshipUpdate overlays the fields present in the update onto the stored internship.
// Slot accounting fields are never taken from the request body.
func populateInternshipUpdate(current, update *models.Internship) *models.Internship {
	updated := *current

	if update.EmployerID != "" {
		updated.EmployerID = update.EmployerID
	}
	if update.InstitutionID != "" {
		updated.InstitutionID = update.InstitutionID
	}
	if update.Title != "" {
		updated.Title = update.Title
	}
	if update.Description != "" {
		updated.Description = update.Description
	}
	if update.Department != "" {
		updated.Department = update.Department
	}
	if update.Location != "" {
		updated.Location = update.Location
	}
	if update.Slots > 0 {
		updated.Slots = update.Slots
	}
	if update.State != "" {
		updated.State = update.State
	}
	if update.StartDate != "" {
		updated.StartDate = update.StartDate
	}
	if update.EndDate != "" {
		updated.EndDate = update.EndDate
	}
	if !update.ApplicationDeadline.IsZero() {
		updated.ApplicationDeadline = update.ApplicationDeadline
	}
	updated.LastUpdated = time.Now().UTC()

	return &updated
}

func (api *InternshipAPI) recordInternshipAudit(r *http.Request, action models.Action, internship *models.Internship, logData log.Data) {
	ctx := r.Context()
	resource := fmt.Sprintf("/internships/%s", internship.ID)
	if err := api.auditService.RecordInternshipAuditEvent(ctx, requestedBy(r), action, resource, internship); err != nil {
		// the action itself has succeeded, so only log the audit failure
		log.Error(ctx, "failed to record internship audit event", err, logData)
	}
}
