package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
)

func testLogbookEntry() *LogbookEntry {
	return &LogbookEntry{
		ID:            "entry-123",
		ApplicationID: "application-123",
		StudentID:     "student-456",
		Week:          4,
		Activities:    "Wrote integration tests for the payments service",
		Hours:         37.5,
		Status:        SubmittedLogbookStatus,
	}
}

func TestCreateLogbookEntry(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the logbook entry has all fields", func() {
			b, err := json.Marshal(testLogbookEntry())
			So(err, ShouldBeNil)

			entry, err := CreateLogbookEntry(bytes.NewReader(b))
			So(err, ShouldBeNil)
			So(entry.ID, ShouldEqual, "entry-123")
			So(entry.ApplicationID, ShouldEqual, "application-123")
			So(entry.Week, ShouldEqual, 4)
			So(entry.Activities, ShouldEqual, "Wrote integration tests for the payments service")
			So(entry.Hours, ShouldEqual, 37.5)
			So(entry.Status, ShouldEqual, SubmittedLogbookStatus)
		})
	})

	Convey("Return with error when the request body is not valid json", t, func() {
		entry, err := CreateLogbookEntry(strings.NewReader("{"))
		So(entry, ShouldBeNil)
		So(err, ShouldResemble, errs.ErrUnableToParseJSON)
	})
}

func TestValidateLogbookEntry(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the entry has all mandatory fields", func() {
			So(ValidateLogbookEntry(testLogbookEntry()), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when activities is missing", func() {
			entry := testLogbookEntry()
			entry.Activities = ""

			err := ValidateLogbookEntry(entry)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "missing mandatory fields: [activities]")
		})

		Convey("when week is zero", func() {
			entry := testLogbookEntry()
			entry.Week = 0

			err := ValidateLogbookEntry(entry)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid fields: [week must be greater than 0]")
		})

		Convey("when hours is negative", func() {
			entry := testLogbookEntry()
			entry.Hours = -1

			err := ValidateLogbookEntry(entry)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "invalid fields: [hours must not be negative]")
		})
	})
}

func TestValidateLogbookReview(t *testing.T) {
	t.Parallel()
	Convey("Successfully return without any errors", t, func() {
		Convey("when the review approves the entry", func() {
			So(ValidateLogbookReview(&LogbookEntry{Status: ApprovedLogbookStatus}), ShouldBeNil)
		})

		Convey("when the review flags the entry with a comment", func() {
			review := &LogbookEntry{
				Status:            FlaggedLogbookStatus,
				SupervisorComment: "Hours do not match the rota",
			}
			So(ValidateLogbookReview(review), ShouldBeNil)
		})
	})

	Convey("Return with errors", t, func() {
		Convey("when the review flags the entry without a comment", func() {
			err := ValidateLogbookReview(&LogbookEntry{Status: FlaggedLogbookStatus})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "missing mandatory fields: [supervisor_comment]")
		})

		Convey("when the review status is not a review status", func() {
			So(ValidateLogbookReview(&LogbookEntry{Status: SubmittedLogbookStatus}), ShouldEqual, errs.ErrResourceState)
		})

		Convey("when the review status is missing", func() {
			So(ValidateLogbookReview(&LogbookEntry{}), ShouldEqual, errs.ErrResourceState)
		})
	})
}
