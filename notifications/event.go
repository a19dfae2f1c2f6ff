package notifications

// StatusChangedEvent is produced whenever an application moves to a new status.
// It carries just enough to let the notification service look the parties up.
type StatusChangedEvent struct {
	ApplicationID  string `avro:"application_id"`
	InternshipID   string `avro:"internship_id"`
	StudentID      string `avro:"student_id"`
	PreviousStatus string `avro:"previous_status"`
	Status         string `avro:"status"`
}
