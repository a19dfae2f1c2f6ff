package mongo

import (
	"context"
	"errors"
	"time"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	"go.mongodb.org/mongo-driver/bson"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
)

// GetInternships retrieves a page of internship documents matching the provided filters
func (m *Mongo) GetInternships(ctx context.Context, offset, limit int, state, employerID, institutionID string) ([]*models.Internship, int, error) {
	selector := buildInternshipsQuery(state, employerID, institutionID)

	var results []*models.Internship
	totalCount, err := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection)).
		Find(ctx, selector, &results,
			mongodriver.Sort(bson.M{"last_updated": -1}),
			mongodriver.Offset(offset),
			mongodriver.Limit(limit))
	if err != nil {
		return nil, 0, err
	}

	return results, totalCount, nil
}

func buildInternshipsQuery(state, employerID, institutionID string) bson.M {
	selector := bson.M{}

	if state != "" {
		selector["state"] = state
	}

	if employerID != "" {
		selector["employer_id"] = employerID
	}

	if institutionID != "" {
		selector["institution_id"] = institutionID
	}

	return selector
}

// GetInternship retrieves an internship document by its id
func (m *Mongo) GetInternship(ctx context.Context, id string) (*models.Internship, error) {
	var internship models.Internship
	err := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection)).FindOne(ctx, bson.M{"_id": id}, &internship)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrInternshipNotFound
		}
		return nil, err
	}

	return &internship, nil
}

// UpsertInternship adds or overrides an existing internship document
func (m *Mongo) UpsertInternship(ctx context.Context, id string, internship *models.Internship) error {
	update := bson.M{
		"$set": internship,
		"$setOnInsert": bson.M{
			"last_updated": time.Now(),
		},
	}

	_, err := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection)).UpsertById(ctx, id, update)

	return err
}

// AcquireInternshipSlot atomically takes one slot on an internship. The increment is
// guarded by the selector so concurrent accepts can never overshoot the slot count.
// Returns ErrInternshipFull when every slot is already taken.
func (m *Mongo) AcquireInternshipSlot(ctx context.Context, internshipID string) error {
	collection := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection))

	selector := bson.M{
		"_id":   internshipID,
		"$expr": bson.M{"$lt": bson.A{"$slots_filled", "$slots"}},
	}
	update := bson.M{
		"$inc": bson.M{"slots_filled": 1},
		"$set": bson.M{"last_updated": time.Now()},
	}

	if _, err := collection.Must().Update(ctx, selector, update); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			if _, err := m.GetInternship(ctx, internshipID); err != nil {
				return err
			}
			return errs.ErrInternshipFull
		}
		return err
	}

	// close the posting once the last slot has been taken
	closeSelector := bson.M{
		"_id":   internshipID,
		"state": models.OpenState,
		"$expr": bson.M{"$gte": bson.A{"$slots_filled", "$slots"}},
	}
	_, err := collection.Update(ctx, closeSelector, bson.M{"$set": bson.M{"state": models.ClosedState}})

	return err
}

// ReleaseInternshipSlot atomically returns a previously taken slot on an internship,
// reopening the posting if it had been closed as full. Releasing a slot on an
// internship with none filled is a no-op.
func (m *Mongo) ReleaseInternshipSlot(ctx context.Context, internshipID string) error {
	collection := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection))

	selector := bson.M{
		"_id":          internshipID,
		"slots_filled": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"slots_filled": -1},
		"$set": bson.M{"last_updated": time.Now()},
	}

	if _, err := collection.Update(ctx, selector, update); err != nil {
		return err
	}

	reopenSelector := bson.M{
		"_id":   internshipID,
		"state": models.ClosedState,
		"$expr": bson.M{"$lt": bson.A{"$slots_filled", "$slots"}},
	}
	_, err := collection.Update(ctx, reopenSelector, bson.M{"$set": bson.M{"state": models.OpenState}})

	return err
}

// DeleteInternship deletes an existing internship document
func (m *Mongo) DeleteInternship(ctx context.Context, id string) error {
	if _, err := m.Connection.Collection(m.ActualCollectionName(config.InternshipsCollection)).Must().DeleteById(ctx, id); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return errs.ErrInternshipNotFound
		}
		return err
	}

	return nil
}
