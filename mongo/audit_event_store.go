package mongo

import (
	"context"

	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
)

// CreateAuditEvent inserts a new audit event into the internship_events collection
func (m *Mongo) CreateAuditEvent(ctx context.Context, event *models.AuditEvent) error {
	_, err := m.Connection.Collection(m.ActualCollectionName(config.InternshipEventsCollection)).InsertOne(ctx, event)
	return err
}
