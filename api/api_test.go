package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"testing"

	dprequest "github.com/ONSdigital/dp-net/v2/request"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/mocks"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/notifications"
	"github.com/edulink/internship-api/store"
	"github.com/edulink/internship-api/url"
	"github.com/edulink/internship-api/workflow"
	workflowMock "github.com/edulink/internship-api/workflow/mock"
)

const (
	host              = "http://localhost:25700"
	websiteHost       = "http://localhost:20000"
	internalServerErr = "internal error\n"
	callerIdentity    = "someone@edulink.org"
)

var testContext = context.Background()

func testURLBuilder() *url.Builder {
	websiteURL, err := neturl.Parse(websiteHost)
	So(err, ShouldBeNil)
	apiURL, err := neturl.Parse(host)
	So(err, ShouldBeNil)
	return url.NewBuilder(websiteURL, apiURL)
}

func getAuthorisationHandlerMock() *mocks.AuthHandlerMock {
	return &mocks.AuthHandlerMock{
		Required: &mocks.PermissionCheckCalls{Calls: 0},
	}
}

func getAuditServiceMock() *workflowMock.AuditServiceMock {
	return &workflowMock.AuditServiceMock{
		RecordInternshipAuditEventFunc: func(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, internship *models.Internship) error {
			return nil
		},
		RecordApplicationAuditEventFunc: func(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, application *models.Application) error {
			return nil
		},
		RecordLogbookAuditEventFunc: func(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, entry *models.LogbookEntry) error {
			return nil
		},
		RecordCertificateAuditEventFunc: func(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, certificate *models.Certificate) error {
			return nil
		},
	}
}

// GetAPIWithMocks also used in other tests
func GetAPIWithMocks(mockedDataStore store.Storer, certificateIssuer CertificateIssuer, enablePrivateEndpoints bool, internshipPermissions, permissions AuthHandler) *InternshipAPI {
	cfg, err := config.Get()
	So(err, ShouldBeNil)
	cfg.InternshipAPIURL = host
	cfg.WebsiteURL = websiteHost
	cfg.EnablePrivateEndpoints = enablePrivateEndpoints

	dataStore := store.DataStore{Backend: mockedDataStore}
	auditService := getAuditServiceMock()
	notifier := &workflowMock.StatusChangeNotifierMock{
		StatusChangedFunc: func(ctx context.Context, event notifications.StatusChangedEvent) error {
			return nil
		},
	}
	stateMachine := workflow.NewStateMachine(workflow.States, workflow.Transitions, dataStore)
	stateMachineWorkflow := workflow.Setup(dataStore, stateMachine, notifier, auditService)

	return Setup(testContext, cfg, mux.NewRouter(), dataStore, testURLBuilder(), stateMachineWorkflow, certificateIssuer, auditService, internshipPermissions, permissions)
}

func createRequestWithAuth(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	ctx := dprequest.SetCaller(r.Context(), callerIdentity)
	return r.WithContext(ctx)
}

func assertInternalServerErr(w *httptest.ResponseRecorder) {
	So(w.Code, ShouldEqual, http.StatusInternalServerError)
	So(w.Body.String(), ShouldContainSubstring, internalServerErr)
}

func TestSetup(t *testing.T) {
	t.Parallel()
	Convey("Given an API instance in web mode", t, func() {
		api := GetAPIWithMocks(nil, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())

		Convey("Then only the public routes are registered", func() {
			So(hasRoute(api.Router, "/internships", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships/{internship_id}", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships/{internship_id}/applications", "POST"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}", "PUT"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}/logbook", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}/logbook", "POST"), ShouldBeTrue)
			So(hasRoute(api.Router, "/certificates/{certificate_id}", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/certificates/{certificate_id}/verify", "GET"), ShouldBeTrue)

			So(hasRoute(api.Router, "/internships", "POST"), ShouldBeFalse)
			So(hasRoute(api.Router, "/internships/{internship_id}", "PUT"), ShouldBeFalse)
			So(hasRoute(api.Router, "/internships/{internship_id}", "DELETE"), ShouldBeFalse)
			So(hasRoute(api.Router, "/applications", "GET"), ShouldBeFalse)
			So(hasRoute(api.Router, "/applications/{application_id}/certificate", "POST"), ShouldBeFalse)
		})
	})

	Convey("Given an API instance in publishing mode", t, func() {
		api := GetAPIWithMocks(nil, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())

		Convey("Then all the routes are registered", func() {
			So(hasRoute(api.Router, "/internships", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships", "POST"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships/{internship_id}", "PUT"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships/{internship_id}", "DELETE"), ShouldBeTrue)
			So(hasRoute(api.Router, "/internships/{internship_id}/applications", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications", "GET"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}/logbook/{entry_id}", "PUT"), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/{application_id}/certificate", "POST"), ShouldBeTrue)
		})
	})
}

func hasRoute(r *mux.Router, path, method string) bool {
	req := httptest.NewRequest(method, "http://localhost:25700"+path, nil)
	match := &mux.RouteMatch{}
	return r.Match(req, match)
}
