package models

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	errs "github.com/edulink/internship-api/apierrors"
)

// LogbookEntryResults represents a structure for a list of logbook entries
type LogbookEntryResults struct {
	Items []*LogbookEntry `json:"items"`
}

// LogbookEntry represents a single weekly logbook entry recorded against an application
type LogbookEntry struct {
	ID                string        `bson:"_id"                           json:"id"`
	ApplicationID     string        `bson:"application_id"                json:"application_id"`
	StudentID         string        `bson:"student_id"                    json:"student_id"`
	Week              int           `bson:"week"                          json:"week"`
	Activities        string        `bson:"activities"                    json:"activities"`
	Hours             float64       `bson:"hours,omitempty"               json:"hours,omitempty"`
	Status            string        `bson:"status,omitempty"              json:"status,omitempty"`
	SupervisorComment string        `bson:"supervisor_comment,omitempty"  json:"supervisor_comment,omitempty"`
	Links             *LogbookLinks `bson:"links,omitempty"               json:"links,omitempty"`
	SubmittedAt       time.Time     `bson:"submitted_at,omitempty"        json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time    `bson:"reviewed_at,omitempty"         json:"reviewed_at,omitempty"`
	LastUpdated       time.Time     `bson:"last_updated,omitempty"        json:"last_updated,omitempty"`
}

// LogbookLinks represents a list of link objects related to a logbook entry
type LogbookLinks struct {
	Application *LinkObject `bson:"application,omitempty" json:"application,omitempty"`
	Self        *LinkObject `bson:"self,omitempty"        json:"self,omitempty"`
}

// CreateLogbookEntry manages the creation of a logbook entry from a reader
func CreateLogbookEntry(reader io.Reader) (*LogbookEntry, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errs.ErrUnableToReadMessage
	}

	var entry LogbookEntry
	err = json.Unmarshal(b, &entry)
	if err != nil {
		return nil, errs.ErrUnableToParseJSON
	}

	return &entry, nil
}

// ValidateLogbookEntry checks a submitted entry has all mandatory fields and sane values
func ValidateLogbookEntry(entry *LogbookEntry) error {
	var missingFields []string
	var invalidFields []string

	if entry.Activities == "" {
		missingFields = append(missingFields, "activities")
	}

	if entry.Week < 1 {
		invalidFields = append(invalidFields, "week must be greater than 0")
	}

	if entry.Hours < 0 {
		invalidFields = append(invalidFields, "hours must not be negative")
	}

	if missingFields != nil {
		return fmt.Errorf("missing mandatory fields: %v", missingFields)
	}

	if invalidFields != nil {
		return fmt.Errorf("invalid fields: %v", invalidFields)
	}

	return nil
}

// ValidateLogbookReview checks a supervisor review moves the entry to a reviewable status.
// Flagged entries must carry a supervisor comment telling the student what to fix.
func ValidateLogbookReview(entry *LogbookEntry) error {
	switch entry.Status {
	case ApprovedLogbookStatus:
	case FlaggedLogbookStatus:
		if entry.SupervisorComment == "" {
			return fmt.Errorf("missing mandatory fields: [supervisor_comment]")
		}
	default:
		return errs.ErrResourceState
	}

	return nil
}
