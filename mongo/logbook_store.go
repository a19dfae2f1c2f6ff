package mongo

import (
	"context"
	"errors"
	"time"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	uuid "github.com/satori/go.uuid"
	"go.mongodb.org/mongo-driver/bson"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
)

// UpsertLogbookEntry adds a logbook entry, or overrides the existing entry for the same
// application and week so a student can resubmit a flagged week
func (m *Mongo) UpsertLogbookEntry(ctx context.Context, entry *models.LogbookEntry) (*models.LogbookEntry, error) {
	if entry.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		entry.ID = id.String()
	}
	entry.LastUpdated = time.Now().UTC()

	selector := bson.M{
		"application_id": entry.ApplicationID,
		"week":           entry.Week,
	}

	update := bson.M{
		"$set": entry,
		"$setOnInsert": bson.M{
			"submitted_at": time.Now().UTC(),
		},
	}

	if _, err := m.Connection.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)).Upsert(ctx, selector, update); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetLogbookEntries retrieves a page of logbook entries for an application, ordered by week
func (m *Mongo) GetLogbookEntries(ctx context.Context, applicationID string, offset, limit int) ([]*models.LogbookEntry, int, error) {
	var results []*models.LogbookEntry
	totalCount, err := m.Connection.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)).
		Find(ctx, bson.M{"application_id": applicationID}, &results,
			mongodriver.Sort(bson.M{"week": 1}),
			mongodriver.Offset(offset),
			mongodriver.Limit(limit))
	if err != nil {
		return nil, 0, err
	}

	return results, totalCount, nil
}

// GetLogbookEntry retrieves a single logbook entry belonging to an application
func (m *Mongo) GetLogbookEntry(ctx context.Context, applicationID, entryID string) (*models.LogbookEntry, error) {
	selector := bson.M{
		"_id":            entryID,
		"application_id": applicationID,
	}

	var entry models.LogbookEntry
	err := m.Connection.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)).FindOne(ctx, selector, &entry)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrLogbookEntryNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// UpdateLogbookEntry overrides an existing logbook entry document
func (m *Mongo) UpdateLogbookEntry(ctx context.Context, id string, entry *models.LogbookEntry) error {
	entry.LastUpdated = time.Now().UTC()

	update := bson.M{"$set": entry}
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)).Must().UpdateById(ctx, id, update); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return errs.ErrLogbookEntryNotFound
		}
		return err
	}

	return nil
}

// CountUnapprovedLogbookEntries returns the number of logbook entries for an application
// that have not been approved by a supervisor
func (m *Mongo) CountUnapprovedLogbookEntries(ctx context.Context, applicationID string) (int, error) {
	selector := bson.M{
		"application_id": applicationID,
		"status":         bson.M{"$ne": models.ApprovedLogbookStatus},
	}

	return m.Connection.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)).Count(ctx, selector)
}
