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
	"github.com/edulink/internship-api/mongo"
	"github.com/edulink/internship-api/utils"
)

// maxStatusFilters is the maximum number of status values accepted in a list query
const maxStatusFilters = 7

func (api *InternshipAPI) addApplication(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	vars := mux.Vars(r)
	internshipID := vars["internship_id"]
	logData := log.Data{"internship_id": internshipID}

	application, err := models.CreateApplication(r.Body)
	if err != nil {
		log.Error(ctx, "addApplication endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := models.ValidateApplication(application); err != nil {
		log.Error(ctx, "addApplication endpoint: failed validation check on application", err, logData)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logData["student_id"] = application.StudentID

	internship, err := api.dataStore.Backend.GetInternship(ctx, internshipID)
	if err != nil {
		log.Error(ctx, "addApplication endpoint: failed to find internship", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := internship.AcceptingApplications(time.Now().UTC()); err != nil {
		log.Error(ctx, "addApplication endpoint: internship not accepting applications", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if _, err := api.dataStore.Backend.GetStudentApplication(ctx, internshipID, application.StudentID); err == nil {
		log.Error(ctx, "addApplication endpoint: student has already applied", errs.ErrApplicationAlreadyExists, logData)
		handleAPIErr(ctx, errs.ErrApplicationAlreadyExists, w, logData)
		return
	} else if err != errs.ErrApplicationNotFound {
		log.Error(ctx, "addApplication endpoint: failed to check for existing application", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	applicationID, err := uuid.NewV4()
	if err != nil {
		log.Error(ctx, "addApplication endpoint: failed to generate application id", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	// applications always start at the beginning of the status workflow
	application.ID = applicationID.String()
	application.InternshipID = internshipID
	application.Status = models.PendingStatus
	application.SubmittedAt = time.Now().UTC()
	application.Interview = nil
	application.DecisionNote = ""
	application.Links = &models.ApplicationLinks{
		Self: &models.LinkObject{
			HRef: api.urlBuilder.BuildApplicationURL(application.ID),
			ID:   application.ID,
		},
		Internship: &models.LinkObject{
			HRef: api.urlBuilder.BuildInternshipURL(internshipID),
			ID:   internshipID,
		},
		Logbook: &models.LinkObject{
			HRef: api.urlBuilder.BuildApplicationLogbookURL(application.ID),
		},
	}
	logData["application_id"] = application.ID

	newApplication, err := api.dataStore.Backend.AddApplication(ctx, application)
	if err != nil {
		log.Error(ctx, "addApplication endpoint: failed to insert application resource", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	api.recordApplicationAudit(r, models.ActionCreate, newApplication, logData)

	b, err := json.Marshal(newApplication)
	if err != nil {
		log.Error(ctx, "addApplication endpoint: failed to marshal application resource into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	setETag(w, newApplication.ETag)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "addApplication endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "addApplication endpoint: request completed successfully", logData)
}

// getApplications lists the applications made to a single internship posting
func (api *InternshipAPI) getApplications(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	vars := mux.Vars(r)
	return api.listApplications(w, r, limit, offset, vars["internship_id"])
}

// getAllApplications lists applications across all postings
func (api *InternshipAPI) getAllApplications(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	return api.listApplications(w, r, limit, offset, "")
}

func (api *InternshipAPI) listApplications(w http.ResponseWriter, r *http.Request, limit, offset int, internshipID string) (interface{}, int, error) {
	ctx := r.Context()
	logData := log.Data{"internship_id": internshipID}

	studentID := r.URL.Query().Get("student_id")

	statuses, err := utils.GetQueryParamListValues(r.URL.Query(), "status", maxStatusFilters)
	if err != nil {
		log.Error(ctx, "listApplications endpoint: invalid status filter", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	if len(statuses) > 0 {
		logData["status"] = statuses
		if err := models.ValidateStatusFilter(statuses); err != nil {
			log.Error(ctx, "listApplications endpoint: invalid status filter value", err, logData)
			handleAPIErr(ctx, errs.ErrInvalidQueryParameter, w, logData)
			return nil, 0, errs.ErrInvalidQueryParameter
		}
	}

	if internshipID != "" {
		if _, err := api.dataStore.Backend.GetInternship(ctx, internshipID); err != nil {
			log.Error(ctx, "listApplications endpoint: failed to find internship", err, logData)
			handleAPIErr(ctx, err, w, logData)
			return nil, 0, err
		}
	}

	applications, totalCount, err := api.dataStore.Backend.GetApplications(ctx, offset, limit, internshipID, studentID, statuses)
	if err != nil {
		log.Error(ctx, "listApplications endpoint: failed to fetch applications", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	log.Info(ctx, "listApplications endpoint: request successful", logData)
	return applications, totalCount, nil
}

func (api *InternshipAPI) getApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logData := log.Data{"application_id": applicationID}

	application, err := api.dataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		log.Error(ctx, "getApplication endpoint: failed to find application", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(application)
	if err != nil {
		log.Error(ctx, "getApplication endpoint: failed to marshal application resource into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	setETag(w, application.ETag)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "getApplication endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "getApplication endpoint: request successful", logData)
}

func (api *InternshipAPI) putApplication(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logData := log.Data{"application_id": applicationID}

	applicationUpdate, err := models.CreateApplication(r.Body)
	if err != nil {
		log.Error(ctx, "putApplication endpoint: failed to parse request body", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	updatedApplication, err := api.workflow.AmendApplication(ctx, vars, applicationUpdate, requestedBy(r), getIfMatch(r))
	if err != nil {
		log.Error(ctx, "putApplication endpoint: failed to amend application", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(updatedApplication)
	if err != nil {
		log.Error(ctx, "putApplication endpoint: failed to marshal application resource into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	setETag(w, updatedApplication.ETag)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "putApplication endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "putApplication endpoint: request successful", logData)
}

func (api *InternshipAPI) recordApplicationAudit(r *http.Request, action models.Action, application *models.Application, logData log.Data) {
	ctx := r.Context()
	resource := fmt.Sprintf("/applications/%s", application.ID)
	if err := api.auditService.RecordApplicationAuditEvent(ctx, requestedBy(r), action, resource, application); err != nil {
		// the action itself has succeeded, so only log the audit failure
		log.Error(ctx, "failed to record application audit event", err, logData)
	}
}

// setETag writes the entity tag header for the resource representation
func setETag(w http.ResponseWriter, eTag string) {
	if eTag != "" {
		w.Header().Set("ETag", eTag)
	}
}

// getIfMatch returns the If-Match header value, defaulting to the wildcard when the
// caller did not send a precondition
func getIfMatch(r *http.Request) string {
	ifMatch := r.Header.Get("If-Match")
	if ifMatch == "" {
		return mongo.AnyETag
	}
	return ifMatch
}
