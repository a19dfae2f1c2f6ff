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

var internshipPayload = `{"employer_id":"employer-456","title":"Software Engineering Intern","description":"Twelve week placement on the platform team","location":"Cardiff","slots":3,"start_date":"2026-06-01","end_date":"2026-08-21"}`

func dbInternship(state string) *models.Internship {
	return &models.Internship{
		ID:          "internship-123",
		EmployerID:  "employer-456",
		Title:       "Software Engineering Intern",
		Description: "Twelve week placement on the platform team",
		Slots:       3,
		SlotsFilled: 1,
		State:       state,
	}
}

func TestGetInternshipsReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to get internships returns 200 OK response", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipsFunc: func(ctx context.Context, offset, limit int, state, employerID, institutionID string) ([]*models.Internship, int, error) {
				return []*models.Internship{dbInternship(models.OpenState)}, 1, nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetInternshipsCalls()), ShouldEqual, 1)
		So(w.Body.String(), ShouldContainSubstring, `"total_count":1`)
	})

	Convey("A request with a state filter passes the filter to the datastore", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships?state=open&employer_id=employer-456", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipsFunc: func(ctx context.Context, offset, limit int, state, employerID, institutionID string) ([]*models.Internship, int, error) {
				return []*models.Internship{}, 0, nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(mockedDataStore.GetInternshipsCalls()[0].State, ShouldEqual, "open")
		So(mockedDataStore.GetInternshipsCalls()[0].EmployerID, ShouldEqual, "employer-456")
	})
}

func TestGetInternshipsReturnsError(t *testing.T) {
	t.Parallel()
	Convey("When an invalid state filter is provided a 400 response is returned", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships?state=gobbly-gook", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(len(mockedDataStore.GetInternshipsCalls()), ShouldEqual, 0)
	})

	Convey("When the datastore returns an error a 500 response is returned", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipsFunc: func(ctx context.Context, offset, limit int, state, employerID, institutionID string) ([]*models.Internship, int, error) {
				return nil, 0, errs.ErrInternalServer
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		assertInternalServerErr(w)
	})
}

func TestGetInternshipReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to get an internship returns 200 OK response", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships/internship-123", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return dbInternship(models.OpenState), nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.GetInternshipCalls()), ShouldEqual, 1)

		returned := &models.Internship{}
		So(json.Unmarshal(w.Body.Bytes(), returned), ShouldBeNil)
		So(returned.ID, ShouldEqual, "internship-123")
	})
}

func TestGetInternshipReturnsError(t *testing.T) {
	t.Parallel()
	Convey("When the internship does not exist a 404 response is returned", t, func() {
		r := httptest.NewRequest("GET", "http://localhost:25700/internships/unknown", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return nil, errs.ErrInternshipNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, false, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Body.String(), ShouldContainSubstring, errs.ErrInternshipNotFound.Error())
	})
}

func TestAddInternshipReturnsCreated(t *testing.T) {
	t.Parallel()
	Convey("A successful request to add an internship returns 201 created response", t, func() {
		r := createRequestWithAuth("POST", "http://localhost:25700/internships", bytes.NewBufferString(internshipPayload))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			UpsertInternshipFunc: func(ctx context.Context, id string, internship *models.Internship) error {
				return nil
			},
		}

		permissions := getAuthorisationHandlerMock()
		api := GetAPIWithMocks(mockedDataStore, nil, true, permissions, getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(len(mockedDataStore.UpsertInternshipCalls()), ShouldEqual, 1)
		So(permissions.Required.Calls, ShouldEqual, 1)

		returned := &models.Internship{}
		So(json.Unmarshal(w.Body.Bytes(), returned), ShouldBeNil)
		So(returned.ID, ShouldNotBeEmpty)
		So(returned.State, ShouldEqual, models.DraftState)
		So(returned.SlotsFilled, ShouldEqual, 0)
		So(returned.Links.Self.HRef, ShouldEqual, host+"/internships/"+returned.ID)
		So(returned.Links.Applications.HRef, ShouldEqual, host+"/internships/"+returned.ID+"/applications")
	})
}

func TestAddInternshipReturnsError(t *testing.T) {
	t.Parallel()
	Convey("When the request body is invalid json a 400 response is returned", t, func() {
		r := createRequestWithAuth("POST", "http://localhost:25700/internships", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(len(mockedDataStore.UpsertInternshipCalls()), ShouldEqual, 0)
	})

	Convey("When mandatory fields are missing a 400 response is returned", t, func() {
		r := createRequestWithAuth("POST", "http://localhost:25700/internships", bytes.NewBufferString(`{"title":"Intern"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "missing mandatory fields")
	})

	Convey("When the datastore returns an error a 500 response is returned", t, func() {
		r := createRequestWithAuth("POST", "http://localhost:25700/internships", bytes.NewBufferString(internshipPayload))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			UpsertInternshipFunc: func(ctx context.Context, id string, internship *models.Internship) error {
				return errs.ErrInternalServer
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		assertInternalServerErr(w)
	})
}

func TestPutInternshipReturnsOK(t *testing.T) {
	t.Parallel()
	Convey("A successful request to update an internship returns 200 OK response", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/internships/internship-123", bytes.NewBufferString(`{"state":"open","slots":5}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return dbInternship(models.DraftState), nil
			},
			UpsertInternshipFunc: func(ctx context.Context, id string, internship *models.Internship) error {
				return nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(len(mockedDataStore.UpsertInternshipCalls()), ShouldEqual, 1)

		updated := mockedDataStore.UpsertInternshipCalls()[0].Internship
		So(updated.State, ShouldEqual, models.OpenState)
		So(updated.Slots, ShouldEqual, 5)
		// slot accounting is never taken from the request body
		So(updated.SlotsFilled, ShouldEqual, 1)
	})
}

func TestPutInternshipReturnsError(t *testing.T) {
	t.Parallel()
	Convey("When the internship does not exist a 404 response is returned", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/internships/unknown", bytes.NewBufferString(`{"state":"open"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return nil, errs.ErrInternshipNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("When the update reduces slots below the number already filled a 409 response is returned", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/internships/internship-123", bytes.NewBufferString(`{"slots":1}`))
		w := httptest.NewRecorder()
		internship := dbInternship(models.OpenState)
		internship.SlotsFilled = 2
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return internship, nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusConflict)
		So(w.Body.String(), ShouldContainSubstring, errs.ErrSlotsBelowFilled.Error())
		So(len(mockedDataStore.UpsertInternshipCalls()), ShouldEqual, 0)
	})

	Convey("When the update carries an invalid state a 400 response is returned", t, func() {
		r := createRequestWithAuth("PUT", "http://localhost:25700/internships/internship-123", bytes.NewBufferString(`{"state":"gobbly-gook"}`))
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return dbInternship(models.DraftState), nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(len(mockedDataStore.UpsertInternshipCalls()), ShouldEqual, 0)
	})
}

func TestDeleteInternship(t *testing.T) {
	t.Parallel()
	Convey("A successful request to delete a draft internship returns 204 response", t, func() {
		r := createRequestWithAuth("DELETE", "http://localhost:25700/internships/internship-123", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return dbInternship(models.DraftState), nil
			},
			DeleteInternshipFunc: func(ctx context.Context, id string) error {
				return nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNoContent)
		So(len(mockedDataStore.DeleteInternshipCalls()), ShouldEqual, 1)
	})

	Convey("When the internship has been opened for applications a 403 response is returned", t, func() {
		r := createRequestWithAuth("DELETE", "http://localhost:25700/internships/internship-123", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return dbInternship(models.OpenState), nil
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(len(mockedDataStore.DeleteInternshipCalls()), ShouldEqual, 0)
	})

	Convey("When the internship does not exist a 404 response is returned", t, func() {
		r := createRequestWithAuth("DELETE", "http://localhost:25700/internships/unknown", nil)
		w := httptest.NewRecorder()
		mockedDataStore := &storetest.StorerMock{
			GetInternshipFunc: func(ctx context.Context, id string) (*models.Internship, error) {
				return nil, errs.ErrInternshipNotFound
			},
		}

		api := GetAPIWithMocks(mockedDataStore, nil, true, getAuthorisationHandlerMock(), getAuthorisationHandlerMock())
		api.Router.ServeHTTP(w, r)

		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
