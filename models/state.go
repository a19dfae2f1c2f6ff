package models

// A list of reusable internship states across the application
const (
	DraftState  = "draft"
	OpenState   = "open"
	ClosedState = "closed"
)

// A list of application statuses driven by the status workflow
const (
	PendingStatus            = "pending"
	ReviewedStatus           = "reviewed"
	InterviewScheduledStatus = "interview_scheduled"
	AcceptedStatus           = "accepted"
	RejectedStatus           = "rejected"
	WithdrawnStatus          = "withdrawn"
	CompletedStatus          = "completed"
)

// A list of logbook entry statuses
const (
	SubmittedLogbookStatus = "submitted"
	ApprovedLogbookStatus  = "approved"
	FlaggedLogbookStatus   = "flagged"
)
