package api

//go:generate moq -out ../mocks/certificate_issuer.go -pkg mocks . CertificateIssuer

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-authorisation/auth"
	dphandlers "github.com/ONSdigital/dp-net/v2/handlers"
	dprequest "github.com/ONSdigital/dp-net/v2/request"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/pagination"
	"github.com/edulink/internship-api/store"
	"github.com/edulink/internship-api/url"
	"github.com/edulink/internship-api/workflow"
)

var (
	createPermission = auth.Permissions{Create: true}
	readPermission   = auth.Permissions{Read: true}
	updatePermission = auth.Permissions{Update: true}
	deletePermission = auth.Permissions{Delete: true}
)

// CertificateIssuer issues and verifies completion certificates
type CertificateIssuer interface {
	Issue(ctx context.Context, applicationID string) (*models.Certificate, error)
	Verify(ctx context.Context, certificateID, token string) (*models.Certificate, error)
}

// AuthHandler provides authorisation checks on requests
type AuthHandler interface {
	Require(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc
}

// InternshipAPI manages internship postings, applications, logbooks and certificates
type InternshipAPI struct {
	Router                 *mux.Router
	dataStore              store.DataStore
	urlBuilder             *url.Builder
	host                   string
	workflow               *workflow.StateMachineWorkflow
	certificateIssuer      CertificateIssuer
	auditService           workflow.AuditService
	enablePrivateEndpoints bool
	internshipPermissions  AuthHandler
	permissions            AuthHandler
	defaultLimit           int
	defaultOffset          int
	maxLimit               int
}

// Setup creates a new Internship API instance and register the API routes based on the application configuration.
func Setup(ctx context.Context, cfg *config.Configuration, router *mux.Router, dataStore store.DataStore, urlBuilder *url.Builder, stateMachineWorkflow *workflow.StateMachineWorkflow, certificateIssuer CertificateIssuer, auditService workflow.AuditService, internshipPermissions, permissions AuthHandler) *InternshipAPI {
	api := &InternshipAPI{
		Router:                 router,
		dataStore:              dataStore,
		urlBuilder:             urlBuilder,
		host:                   cfg.InternshipAPIURL,
		workflow:               stateMachineWorkflow,
		certificateIssuer:      certificateIssuer,
		auditService:           auditService,
		enablePrivateEndpoints: cfg.EnablePrivateEndpoints,
		internshipPermissions:  internshipPermissions,
		permissions:            permissions,
		defaultLimit:           cfg.DefaultLimit,
		defaultOffset:          cfg.DefaultOffset,
		maxLimit:               cfg.DefaultMaxLimit,
	}

	paginator := pagination.NewPaginator(cfg.DefaultLimit, cfg.DefaultOffset, cfg.DefaultMaxLimit)

	if api.enablePrivateEndpoints {
		log.Info(ctx, "enabling private endpoints for internship api")
		api.enablePrivateEndpointRoutes(paginator)
	} else {
		log.Info(ctx, "enabling only public endpoints for internship api")
		api.enablePublicEndpoints(paginator)
	}
	return api
}

// enablePublicEndpoints register only the public endpoints.
func (api *InternshipAPI) enablePublicEndpoints(paginator *pagination.Paginator) {
	api.get("/internships", paginator.Paginate(api.getInternships))
	api.get("/internships/{internship_id}", api.getInternship)
	api.post("/internships/{internship_id}/applications", api.addApplication)
	api.get("/applications/{application_id}", api.getApplication)
	api.put("/applications/{application_id}", api.putApplication)
	api.get("/applications/{application_id}/logbook", paginator.Paginate(api.getLogbookEntries))
	api.post("/applications/{application_id}/logbook", api.addLogbookEntry)
	api.get("/certificates/{certificate_id}", api.getCertificate)
	api.get("/certificates/{certificate_id}/verify", api.verifyCertificate)
}

// enablePrivateEndpointRoutes register all endpoints with the appropriate authentication and
// authorisation checks required when running the internship API in private mode.
func (api *InternshipAPI) enablePrivateEndpointRoutes(paginator *pagination.Paginator) {
	api.get(
		"/internships",
		api.isAuthorisedForInternships(readPermission,
			paginator.Paginate(api.getInternships)),
	)

	api.get(
		"/internships/{internship_id}",
		api.isAuthorisedForInternships(readPermission,
			api.getInternship),
	)

	api.post(
		"/internships",
		api.isAuthenticated(
			api.isAuthorisedForInternships(createPermission,
				api.addInternship)),
	)

	api.put(
		"/internships/{internship_id}",
		api.isAuthenticated(
			api.isAuthorisedForInternships(updatePermission,
				api.putInternship)),
	)

	api.delete(
		"/internships/{internship_id}",
		api.isAuthenticated(
			api.isAuthorisedForInternships(deletePermission,
				api.deleteInternship)),
	)

	api.get(
		"/internships/{internship_id}/applications",
		api.isAuthenticated(
			api.isAuthorised(readPermission,
				paginator.Paginate(api.getApplications))),
	)

	api.post(
		"/internships/{internship_id}/applications",
		api.isAuthenticated(
			api.isAuthorised(createPermission,
				api.addApplication)),
	)

	api.get(
		"/applications",
		api.isAuthenticated(
			api.isAuthorised(readPermission,
				paginator.Paginate(api.getAllApplications))),
	)

	api.get(
		"/applications/{application_id}",
		api.isAuthenticated(
			api.isAuthorised(readPermission,
				api.getApplication)),
	)

	api.put(
		"/applications/{application_id}",
		api.isAuthenticated(
			api.isAuthorised(updatePermission,
				api.putApplication)),
	)

	api.get(
		"/applications/{application_id}/logbook",
		api.isAuthenticated(
			api.isAuthorised(readPermission,
				paginator.Paginate(api.getLogbookEntries))),
	)

	api.post(
		"/applications/{application_id}/logbook",
		api.isAuthenticated(
			api.isAuthorised(createPermission,
				api.addLogbookEntry)),
	)

	api.put(
		"/applications/{application_id}/logbook/{entry_id}",
		api.isAuthenticated(
			api.isAuthorised(updatePermission,
				api.putLogbookEntry)),
	)

	api.post(
		"/applications/{application_id}/certificate",
		api.isAuthenticated(
			api.isAuthorised(createPermission,
				api.addCertificate)),
	)

	api.get(
		"/certificates/{certificate_id}",
		api.isAuthorised(readPermission,
			api.getCertificate),
	)

	api.get(
		"/certificates/{certificate_id}/verify",
		api.isAuthorised(readPermission,
			api.verifyCertificate),
	)
}

// isAuthenticated wraps a http handler func in another http handler func that checks the caller is
// authenticated to perform the requested action. The wrapped handler is only called if the caller
// is authenticated.
func (api *InternshipAPI) isAuthenticated(handler http.HandlerFunc) http.HandlerFunc {
	return dphandlers.CheckIdentity(handler)
}

// isAuthorised wraps a http.HandlerFunc in another http.HandlerFunc that checks the caller is
// authorised to perform the requested action. The wrapped handler is only called if the caller
// has the required permissions.
func (api *InternshipAPI) isAuthorised(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc {
	return api.permissions.Require(required, handler)
}

// isAuthorisedForInternships wraps a http.HandlerFunc in another http.HandlerFunc that checks the
// caller is authorised to perform the requested internships action. The wrapped handler is only
// called if the caller has the required internship permissions.
func (api *InternshipAPI) isAuthorisedForInternships(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc {
	return api.internshipPermissions.Require(required, handler)
}

// get registers a GET http.HandlerFunc.
func (api *InternshipAPI) get(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodGet)
}

// put registers a PUT http.HandlerFunc.
func (api *InternshipAPI) put(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPut)
}

// post registers a POST http.HandlerFunc.
func (api *InternshipAPI) post(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPost)
}

// delete registers a DELETE http.HandlerFunc.
func (api *InternshipAPI) delete(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodDelete)
}

// requestedBy obtains the identity of the caller from the request context for audit purposes
func requestedBy(r *http.Request) models.RequestedBy {
	requested := models.RequestedBy{}
	if user := dprequest.User(r.Context()); user != "" {
		requested.ID = user
		return requested
	}
	requested.ID = dprequest.Caller(r.Context())
	return requested
}

// handleAPIErr maps the provided error to a http status code and writes it to the response
func handleAPIErr(ctx context.Context, err error, w http.ResponseWriter, logData log.Data) {
	var status int
	switch {
	case errs.NotFoundMap[err]:
		status = http.StatusNotFound
	case errs.BadRequestMap[err]:
		status = http.StatusBadRequest
	case errs.ForbiddenMap[err]:
		status = http.StatusForbidden
	case errs.ConflictRequestMap[err]:
		status = http.StatusConflict
	case err == errs.ErrCertificateTokenInvalid:
		status = http.StatusUnauthorized
	default:
		err = errs.ErrInternalServer
		status = http.StatusInternalServerError
	}

	if logData == nil {
		logData = log.Data{}
	}
	logData["response_status"] = status

	log.Error(ctx, "request unsuccessful", err, logData)
	http.Error(w, err.Error(), status)
}

func setJSONContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
