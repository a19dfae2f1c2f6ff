package models

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	errs "github.com/edulink/internship-api/apierrors"
)

// dateFormat is the layout of the start_date and end_date fields
const dateFormat = "2006-01-02"

// InternshipResults represents a structure for a list of internships
type InternshipResults struct {
	Items []*Internship `json:"items"`
}

// Internship represents information related to a single internship posting
type Internship struct {
	ID                  string           `bson:"_id"                            json:"id"`
	EmployerID          string           `bson:"employer_id"                    json:"employer_id"`
	InstitutionID       string           `bson:"institution_id,omitempty"       json:"institution_id,omitempty"`
	Title               string           `bson:"title"                          json:"title"`
	Description         string           `bson:"description"                    json:"description"`
	Department          string           `bson:"department,omitempty"           json:"department,omitempty"`
	Location            string           `bson:"location,omitempty"             json:"location,omitempty"`
	Slots               int              `bson:"slots"                          json:"slots"`
	SlotsFilled         int              `bson:"slots_filled"                   json:"slots_filled"`
	State               string           `bson:"state,omitempty"                json:"state,omitempty"`
	StartDate           string           `bson:"start_date,omitempty"           json:"start_date,omitempty"`
	EndDate             string           `bson:"end_date,omitempty"             json:"end_date,omitempty"`
	ApplicationDeadline time.Time        `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	Links               *InternshipLinks `bson:"links,omitempty"                json:"links,omitempty"`
	LastUpdated         time.Time        `bson:"last_updated,omitempty"         json:"last_updated,omitempty"`
}

// InternshipLinks represents a list of link objects related to an internship resource
type InternshipLinks struct {
	Applications *LinkObject `bson:"applications,omitempty" json:"applications,omitempty"`
	Employer     *LinkObject `bson:"employer,omitempty"     json:"employer,omitempty"`
	Self         *LinkObject `bson:"self,omitempty"         json:"self,omitempty"`
}

// LinkObject represents a generic structure for a link
type LinkObject struct {
	HRef string `bson:"href,omitempty" json:"href,omitempty"`
	ID   string `bson:"id,omitempty"   json:"id,omitempty"`
}

// CreateInternship manages the creation of an internship from a reader
func CreateInternship(reader io.Reader) (*Internship, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errs.ErrUnableToReadMessage
	}

	var internship Internship
	err = json.Unmarshal(b, &internship)
	if err != nil {
		return nil, errs.ErrUnableToParseJSON
	}

	return &internship, nil
}

// ValidateInternship checks the internship has all mandatory fields and sane values
func ValidateInternship(internship *Internship) error {
	var missingFields []string
	var invalidFields []string

	if internship.EmployerID == "" {
		missingFields = append(missingFields, "employer_id")
	}

	if internship.Title == "" {
		missingFields = append(missingFields, "title")
	}

	if internship.Description == "" {
		missingFields = append(missingFields, "description")
	}

	if internship.Slots < 1 {
		invalidFields = append(invalidFields, "slots must be greater than 0")
	}

	if internship.StartDate != "" && internship.EndDate != "" && internship.EndDate < internship.StartDate {
		invalidFields = append(invalidFields, "end_date is before start_date")
	}

	if !internship.ApplicationDeadline.IsZero() && internship.StartDate != "" {
		if startDate, err := time.Parse(dateFormat, internship.StartDate); err == nil && internship.ApplicationDeadline.After(startDate) {
			invalidFields = append(invalidFields, "application_deadline is after start_date")
		}
	}

	if missingFields != nil {
		return fmt.Errorf("missing mandatory fields: %v", missingFields)
	}

	if invalidFields != nil {
		return fmt.Errorf("invalid fields: %v", invalidFields)
	}

	return nil
}

// ValidateInternshipState checks the state is a valid internship state
func ValidateInternshipState(state string) error {
	switch state {
	case DraftState, OpenState, ClosedState:
		return nil
	}
	return errs.ErrResourceState
}

// AcceptingApplications returns whether the internship can take a new application at the given time
func (i *Internship) AcceptingApplications(now time.Time) error {
	if i.State != OpenState {
		return errs.ErrInternshipClosed
	}

	if !i.ApplicationDeadline.IsZero() && now.After(i.ApplicationDeadline) {
		return errs.ErrApplicationDeadlinePassed
	}

	if i.SlotsFilled >= i.Slots {
		return errs.ErrInternshipFull
	}

	return nil
}
