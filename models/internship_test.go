package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
)

func testInternship() *Internship {
	return &Internship{
		ID:          "internship-123",
		EmployerID:  "employer-456",
		Title:       "Software Engineering Intern",
		Description: "Twelve week placement on the platform team",
		Location:    "Cardiff",
		Slots:       3,
		State:       OpenState,
		StartDate:   "2026-06-01",
		EndDate:     "2026-08-21",
	}
}

func TestCreateInternship(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the internship has all fields", func() {
			b, err := json.Marshal(testInternship())
			So(err, ShouldBeNil)

			internship, err := CreateInternship(bytes.NewReader(b))
			So(err, ShouldBeNil)
			So(internship.ID, ShouldEqual, "internship-123")
			So(internship.EmployerID, ShouldEqual, "employer-456")
			So(internship.Title, ShouldEqual, "Software Engineering Intern")
			So(internship.Description, ShouldEqual, "Twelve week placement on the platform team")
			So(internship.Location, ShouldEqual, "Cardiff")
			So(internship.Slots, ShouldEqual, 3)
			So(internship.State, ShouldEqual, OpenState)
		})
	})

	Convey("Return with error when the request body is not valid json", t, func() {
		internship, err := CreateInternship(strings.NewReader("{"))
		So(internship, ShouldBeNil)
		So(err, ShouldResemble, errs.ErrUnableToParseJSON)
	})

	Convey("Return with error when the request body contains fields of the wrong type", t, func() {
		internship, err := CreateInternship(strings.NewReader(`{"slots": "three"}`))
		So(internship, ShouldBeNil)
		So(err, ShouldResemble, errs.ErrUnableToParseJSON)
	})
}

func TestValidateInternship(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the internship has all mandatory fields", func() {
			So(ValidateInternship(testInternship()), ShouldBeNil)
		})

		Convey("when start and end dates are omitted", func() {
			internship := testInternship()
			internship.StartDate = ""
			internship.EndDate = ""
			So(ValidateInternship(internship), ShouldBeNil)
		})

		Convey("when the application deadline falls before the start date", func() {
			internship := testInternship()
			internship.ApplicationDeadline = time.Date(2026, time.May, 15, 23, 59, 0, 0, time.UTC)
			So(ValidateInternship(internship), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when mandatory fields are missing", func() {
			internship := testInternship()
			internship.EmployerID = ""
			internship.Title = ""

			err := ValidateInternship(internship)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "missing mandatory fields: [employer_id title]")
		})

		Convey("when slots is zero", func() {
			internship := testInternship()
			internship.Slots = 0

			err := ValidateInternship(internship)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid fields: [slots must be greater than 0]")
		})

		Convey("when the end date falls before the start date", func() {
			internship := testInternship()
			internship.StartDate = "2026-08-21"
			internship.EndDate = "2026-06-01"

			err := ValidateInternship(internship)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid fields: [end_date is before start_date]")
		})

		Convey("when the application deadline falls after the start date", func() {
			internship := testInternship()
			internship.ApplicationDeadline = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

			err := ValidateInternship(internship)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid fields: [application_deadline is after start_date]")
		})
	})
}

func TestValidateInternshipState(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the internship has state of draft", func() {
			So(ValidateInternshipState(DraftState), ShouldBeNil)
		})

		Convey("when the internship has state of open", func() {
			So(ValidateInternshipState(OpenState), ShouldBeNil)
		})

		Convey("when the internship has state of closed", func() {
			So(ValidateInternshipState(ClosedState), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when the internship has a missing state", func() {
			So(ValidateInternshipState(""), ShouldEqual, errs.ErrResourceState)
		})

		Convey("when the internship has an unknown state", func() {
			So(ValidateInternshipState("gobbly-gook"), ShouldEqual, errs.ErrResourceState)
		})
	})
}

func TestAcceptingApplications(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	Convey("Given an open internship with free slots", t, func() {
		internship := testInternship()

		Convey("Then a new application is accepted", func() {
			So(internship.AcceptingApplications(now), ShouldBeNil)
		})

		Convey("And a deadline in the future, then a new application is accepted", func() {
			internship.ApplicationDeadline = now.Add(24 * time.Hour)
			So(internship.AcceptingApplications(now), ShouldBeNil)
		})
	})

	Convey("Given an internship that is not open", t, func() {
		internship := testInternship()
		internship.State = DraftState

		Convey("Then a new application is refused", func() {
			So(internship.AcceptingApplications(now), ShouldEqual, errs.ErrInternshipClosed)
		})
	})

	Convey("Given an internship whose deadline has passed", t, func() {
		internship := testInternship()
		internship.ApplicationDeadline = now.Add(-time.Hour)

		Convey("Then a new application is refused", func() {
			So(internship.AcceptingApplications(now), ShouldEqual, errs.ErrApplicationDeadlinePassed)
		})
	})

	Convey("Given an internship with all slots filled", t, func() {
		internship := testInternship()
		internship.SlotsFilled = internship.Slots

		Convey("Then a new application is refused", func() {
			So(internship.AcceptingApplications(now), ShouldEqual, errs.ErrInternshipFull)
		})
	})
}
