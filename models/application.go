package models

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	errs "github.com/edulink/internship-api/apierrors"
)

// ApplicationResults represents a structure for a list of applications
type ApplicationResults struct {
	Items []*Application `json:"items"`
}

// Application represents a student's application to an internship posting
type Application struct {
	ID            string            `bson:"_id"                      json:"id"`
	InternshipID  string            `bson:"internship_id"            json:"internship_id"`
	StudentID     string            `bson:"student_id"               json:"student_id"`
	InstitutionID string            `bson:"institution_id,omitempty" json:"institution_id,omitempty"`
	SupervisorID  string            `bson:"supervisor_id,omitempty"  json:"supervisor_id,omitempty"`
	Status        string            `bson:"status,omitempty"         json:"status,omitempty"`
	CoverNote     string            `bson:"cover_note,omitempty"     json:"cover_note,omitempty"`
	Interview     *Interview        `bson:"interview,omitempty"      json:"interview,omitempty"`
	DecisionNote  string            `bson:"decision_note,omitempty"  json:"decision_note,omitempty"`
	Links         *ApplicationLinks `bson:"links,omitempty"          json:"links,omitempty"`
	SubmittedAt   time.Time         `bson:"submitted_at,omitempty"   json:"submitted_at,omitempty"`
	LastUpdated   time.Time         `bson:"last_updated,omitempty"   json:"last_updated,omitempty"`
	ETag          string            `bson:"e_tag"                    json:"-"`
}

// Interview holds the details of a scheduled interview for an application
type Interview struct {
	ScheduledFor time.Time `bson:"scheduled_for"      json:"scheduled_for"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Notes        string    `bson:"notes,omitempty"    json:"notes,omitempty"`
}

// ApplicationLinks represents a list of link objects related to an application resource
type ApplicationLinks struct {
	Internship *LinkObject `bson:"internship,omitempty" json:"internship,omitempty"`
	Logbook    *LinkObject `bson:"logbook,omitempty"    json:"logbook,omitempty"`
	Self       *LinkObject `bson:"self,omitempty"       json:"self,omitempty"`
}

// Hash generates a SHA-1 hash of the application struct. SHA-1 is not cryptographically safe,
// but it has been selected for performance as we are only interested in uniqueness.
// The ETag field value is ignored when generating a hash.
// An optional byte array can be provided to append to the hash, which can be used to
// calculate a hash of this application and an update applied to it.
func (a *Application) Hash(extraBytes []byte) (string, error) {
	h := sha1.New()

	// copy by value to ignore ETag without affecting a
	a2 := *a
	a2.ETag = ""

	applicationBytes, err := bson.Marshal(a2)
	if err != nil {
		return "", err
	}

	if _, err := h.Write(append(applicationBytes, extraBytes...)); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// CreateApplication manages the creation of an application from a reader
func CreateApplication(reader io.Reader) (*Application, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errs.ErrUnableToReadMessage
	}

	var application Application
	err = json.Unmarshal(b, &application)
	if err != nil {
		return nil, errs.ErrUnableToParseJSON
	}

	return &application, nil
}

// ValidateApplication checks a new application has all mandatory fields
func ValidateApplication(application *Application) error {
	var missingFields []string

	if application.StudentID == "" {
		missingFields = append(missingFields, "student_id")
	}

	if application.InstitutionID == "" {
		missingFields = append(missingFields, "institution_id")
	}

	if missingFields != nil {
		return fmt.Errorf("missing mandatory fields: %v", missingFields)
	}

	return nil
}

// ValidateApplicationStatus checks the status is a member of the status workflow
func ValidateApplicationStatus(status string) error {
	switch status {
	case PendingStatus, ReviewedStatus, InterviewScheduledStatus,
		AcceptedStatus, RejectedStatus, WithdrawnStatus, CompletedStatus:
		return nil
	}
	return errs.ErrApplicationStateInvalid
}

// ValidateStatusFilter checks all statuses provided in a list query are valid workflow statuses
func ValidateStatusFilter(statuses []string) error {
	var invalidStatuses []string

	for _, status := range statuses {
		if err := ValidateApplicationStatus(status); err != nil {
			invalidStatuses = append(invalidStatuses, status)
		}
	}

	if invalidStatuses != nil {
		return fmt.Errorf("invalid filter status values: %v", invalidStatuses)
	}

	return nil
}
