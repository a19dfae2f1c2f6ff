package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
	storetest "github.com/edulink/internship-api/store/datastoretest"
)

var logbookEntryPayload = `{"week":4,"activities":"Wrote integration tests for the payments service","hours":37.5}`

func dbLogbookEntry() *models.LogbookEntry {
	return &models.LogbookEntry{
		ID:            "entry-123",
		ApplicationID: "application-123",
		StudentID:     "student-456",
		Week:          4,
		Activities:    "Wrote integration tests for the payments service",
		Hours:         37.5,
		Status:        models.SubmittedLogbookStatus,
	}
}

func TestGetLogbookEntriesReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to list logbook entries returns 200 OK response", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/applications/application-123/logbook", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetApplicationFunc: func(ctx context.Context, id string) (*models.Application, error) {
				return dbApplication(models.AcceptedStatus), nil
			},
			GetLogbookEntriesFunc: func(ctx context.Context, applicationID string, offset, limit int) ([]*models.LogbookEntry, int, error) {
				return []*models.LogbookEntry{dbLogbookEntry()}, 1, nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetLogbookEntriesCalls()), ShouldEqual, 1)
		So(w.Body.String(), ShouldContainSubstring, `"total_count":1`)
	})

	Convey("When the application does not exist a 404 response is returned", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/applications/unknown/logbook", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetApplicationFunc: func(ctx context.Context, id string) (*models.Application, error) {
				return nil, errs.ErrApplicationNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(len(mockedDataStore.GetLogbookEntriesCalls()), ShouldEqual, 0)
	})
}

func TestAddLogbookEntryReturnsCreated(t *testing.T) {
	t.Parallel()
	Convey("A successful request to submit a logbook entry returns 201 created response", t, func() {
		r := httptest.NewRequest("POST", "http://localhost:25700/applications/application-123/logbook", bytes.NewBufferString(logbookEntryPayload))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetApplicationFunc: func(ctx context.Context, id string) (*models.Application, error) {
				return dbApplication(models.AcceptedStatus), nil
			},
			UpsertLogbookEntryFunc: func(ctx context.Context, entry *models.LogbookEntry) (*models.LogbookEntry, error) {
				entry.ID = "entry-123"
				return entry, nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(len(mockedDataStore.UpsertLogbookEntryCalls()), ShouldEqual, 1)

		returned := &models.LogbookEntry{}
		So(json.Unmarshal(w.Body.Bytes(), returned), ShouldBeNil)
		So(returned.ApplicationID, ShouldEqual, "application-123")
		So(returned.StudentID, ShouldEqual, "student-456")
		So(returned.Status, ShouldEqual, models.SubmittedLogbookStatus)
		So(returned.Links.Application.HRef, ShouldEqual, host+"/applications/application-123")
	})
}

func TestAddLogbookEntryReturnsError(t *testing.T) {
	t.Parallel()
	Convey("When the entry fails validation a 400 response is returned", t, func() {
		r := httptest.NewRequest("POST", "http://localhost:25700/applications/application-123/logbook", bytes.NewBufferString(`{"week":0,"activities":""}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(len(mockedDataStore.UpsertLogbookEntryCalls()), ShouldEqual, 0)
	})

	Convey("When the application is not an active placement a 403 response is returned", t, func() {
		r := httptest.NewRequest("POST", "http://localhost:25700/applications/application-123/logbook", bytes.NewBufferString(logbookEntryPayload))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetApplicationFunc: func(ctx context.Context, id string) (*models.Application, error) {
				return dbApplication(models.PendingStatus), nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(w.Body.String(), ShouldContainSubstring, errs.ErrResourceState.Error())
		So(len(mockedDataStore.UpsertLogbookEntryCalls()), ShouldEqual, 0)
	})

	Convey("When the application does not exist a 404 response is returned", t, func() {
		r := httptest.NewRequest("POST", "http://localhost:25700/applications/unknown/logbook", bytes.NewBufferString(logbookEntryPayload))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetApplicationFunc: func(ctx context.Context, id string) (*models.Application, error) {
				return nil, errs.ErrApplicationNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestPutLogbookEntryReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to review a logbook entry returns 200 OK response", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/applications/application-123/logbook/entry-123", bytes.NewBufferString(`{"status":"approved"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetLogbookEntryFunc: func(ctx context.Context, applicationID, entryID string) (*models.LogbookEntry, error) {
				return dbLogbookEntry(), nil
			},
			UpdateLogbookEntryFunc: func(ctx context.Context, id string, entry *models.LogbookEntry) error {
				return nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.UpdateLogbookEntryCalls()), ShouldEqual, 1)

		returned := &models.LogbookEntry{}
		So(json.Unmarshal(w.Body.Bytes(), returned), ShouldBeNil)
		So(returned.Status, ShouldEqual, models.ApprovedLogbookStatus)
		So(returned.ReviewedAt, ShouldNotBeNil)
	})

	Convey("A flagged review must carry a supervisor comment", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/applications/application-123/logbook/entry-123", bytes.NewBufferString(`{"status":"flagged"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "supervisor_comment")
		So(len(mockedDataStore.UpdateLogbookEntryCalls()), ShouldEqual, 0)
	})

	Convey("When the logbook entry does not exist a 404 response is returned", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/applications/application-123/logbook/unknown", bytes.NewBufferString(`{"status":"approved"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetLogbookEntryFunc: func(ctx context.Context, applicationID, entryID string) (*models.LogbookEntry, error) {
				return nil, errs.ErrLogbookEntryNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
