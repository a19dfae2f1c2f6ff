package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
)

func testApplication() *Application {
	return &Application{
		ID:            "application-123",
		InternshipID:  "internship-123",
		StudentID:     "student-456",
		InstitutionID: "institution-789",
		Status:        PendingStatus,
		CoverNote:     "I would like to apply",
	}
}

func TestCreateApplication(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the application has all fields", func() {
			b, err := json.Marshal(testApplication())
			So(err, ShouldBeNil)

			application, err := CreateApplication(bytes.NewReader(b))
			So(err, ShouldBeNil)
			So(application.ID, ShouldEqual, "application-123")
			So(application.InternshipID, ShouldEqual, "internship-123")
			So(application.StudentID, ShouldEqual, "student-456")
			So(application.InstitutionID, ShouldEqual, "institution-789")
			So(application.Status, ShouldEqual, PendingStatus)
			So(application.CoverNote, ShouldEqual, "I would like to apply")
		})
	})

	Convey("Return with error when the request body is not valid json", t, func() {
		application, err := CreateApplication(strings.NewReader("{"))
		So(application, ShouldBeNil)
		So(err, ShouldResemble, errs.ErrUnableToParseJSON)
	})
}

func TestValidateApplication(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the application has all mandatory fields", func() {
			So(ValidateApplication(testApplication()), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when mandatory fields are missing", func() {
			application := testApplication()
			application.StudentID = ""
			application.InstitutionID = ""

			err := ValidateApplication(application)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "missing mandatory fields: [student_id institution_id]")
		})
	})
}

func TestValidateApplicationStatus(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		for _, status := range []string{
			PendingStatus, ReviewedStatus, InterviewScheduledStatus,
			AcceptedStatus, RejectedStatus, WithdrawnStatus, CompletedStatus,
		} {
			Convey("when the application has status of "+status, func() {
				So(ValidateApplicationStatus(status), ShouldBeNil)
			})
		}
	})

	Convey("Return with errors", t, func() {
		Convey("when the application has a missing status", func() {
			So(ValidateApplicationStatus(""), ShouldEqual, errs.ErrApplicationStateInvalid)
		})

		Convey("when the application has an unknown status", func() {
			So(ValidateApplicationStatus("gobbly-gook"), ShouldEqual, errs.ErrApplicationStateInvalid)
		})
	})
}

func TestValidateStatusFilter(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when all filter values are valid workflow statuses", func() {
			So(ValidateStatusFilter([]string{PendingStatus, AcceptedStatus}), ShouldBeNil)
		})

		Convey("when the filter is empty", func() {
			So(ValidateStatusFilter(nil), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when a filter value is not a workflow status", func() {
			err := ValidateStatusFilter([]string{PendingStatus, "sleeping"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid filter status values: [sleeping]")
		})
	})
}

func TestApplicationHash(t *testing.T) {
	t.Parallel()
	Convey("Given an application with all fields set", t, func() {
		application := testApplication()

		Convey("Then hashing it twice returns the same value", func() {
			h1, err := application.Hash(nil)
			So(err, ShouldBeNil)
			h2, err := application.Hash(nil)
			So(err, ShouldBeNil)
			So(h1, ShouldEqual, h2)
		})

		Convey("Then the existing ETag value does not affect the hash", func() {
			h1, err := application.Hash(nil)
			So(err, ShouldBeNil)

			application.ETag = "someETag"
			h2, err := application.Hash(nil)
			So(err, ShouldBeNil)
			So(h1, ShouldEqual, h2)
		})

		Convey("Then mutating the application changes the hash", func() {
			h1, err := application.Hash(nil)
			So(err, ShouldBeNil)

			application.Status = AcceptedStatus
			h2, err := application.Hash(nil)
			So(err, ShouldBeNil)
			So(h1, ShouldNotEqual, h2)
		})

		Convey("Then providing extra bytes changes the hash", func() {
			h1, err := application.Hash(nil)
			So(err, ShouldBeNil)

			h2, err := application.Hash([]byte("update"))
			So(err, ShouldBeNil)
			So(h1, ShouldNotEqual, h2)
		})
	})
}
