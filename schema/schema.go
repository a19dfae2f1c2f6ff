package schema

import "github.com/ONSdigital/dp-kafka/v4/avro"

var applicationStatusChanged = `{
  "type": "record",
  "name": "application-status-changed",
  "fields": [
    {"name": "application_id",  "type": "string", "default": ""},
    {"name": "internship_id",   "type": "string", "default": ""},
    {"name": "student_id",      "type": "string", "default": ""},
    {"name": "previous_status", "type": "string", "default": ""},
    {"name": "status",          "type": "string", "default": ""}
  ]
}`

// ApplicationStatusChangedEvent is the Avro schema for StatusChanged messages.
var ApplicationStatusChangedEvent = &avro.Schema{
	Definition: applicationStatusChanged,
}
