package models

import (
	"errors"
	"time"
)

// AuditEvent represents an audit log entry for actions performed on an internship,
// application, logbook entry or certificate
type AuditEvent struct {
	CreatedAt    time.Time     `bson:"created_at"              json:"created_at"`
	RequestedBy  RequestedBy   `bson:"requested_by"            json:"requested_by"`
	Action       Action        `bson:"action"                  json:"action"`
	Resource     string        `bson:"resource"                json:"resource"`
	Internship   *Internship   `bson:"internship,omitempty"    json:"internship,omitempty"`
	Application  *Application  `bson:"application,omitempty"   json:"application,omitempty"`
	LogbookEntry *LogbookEntry `bson:"logbook_entry,omitempty" json:"logbook_entry,omitempty"`
	Certificate  *Certificate  `bson:"certificate,omitempty"   json:"certificate,omitempty"`
}

// RequestedBy contains information about the user who initiated the action
type RequestedBy struct {
	ID    string `bson:"id"              json:"id"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Action represents the type of action performed
type Action string

const (
	ActionCreate     Action = "CREATE"
	ActionRead       Action = "READ"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionTransition Action = "TRANSITION"
)

// NewAuditEvent creates a new AuditEvent instance.
// It requires exactly one of internship, application, logbook entry or certificate to be provided.
func NewAuditEvent(requestedBy RequestedBy, action Action, resource string, internship *Internship, application *Application, entry *LogbookEntry, certificate *Certificate) (*AuditEvent, error) {
	provided := 0
	for _, set := range []bool{internship != nil, application != nil, entry != nil, certificate != nil} {
		if set {
			provided++
		}
	}
	if provided != 1 {
		return nil, errors.New("exactly one of internship, application, logbook entry or certificate must be provided")
	}

	return &AuditEvent{
		CreatedAt:    time.Now().UTC(),
		RequestedBy:  requestedBy,
		Action:       action,
		Resource:     resource,
		Internship:   internship,
		Application:  application,
		LogbookEntry: entry,
		Certificate:  certificate,
	}, nil
}
