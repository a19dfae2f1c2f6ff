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

// AddApplication inserts a new application document, generating its id and eTag
func (m *Mongo) AddApplication(ctx context.Context, application *models.Application) (*models.Application, error) {
	if application.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		application.ID = id.String()
	}
	application.LastUpdated = time.Now().UTC()

	var err error
	application.ETag, err = application.Hash(nil)
	if err != nil {
		return nil, err
	}

	if _, err = m.Connection.Collection(m.ActualCollectionName(config.ApplicationsCollection)).Insert(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// GetApplications retrieves a page of application documents matching the provided filters
func (m *Mongo) GetApplications(ctx context.Context, offset, limit int, internshipID, studentID string, statuses []string) ([]*models.Application, int, error) {
	selector := buildApplicationsQuery(internshipID, studentID, statuses)

	var results []*models.Application
	totalCount, err := m.Connection.Collection(m.ActualCollectionName(config.ApplicationsCollection)).
		Find(ctx, selector, &results,
			mongodriver.Sort(bson.M{"submitted_at": -1}),
			mongodriver.Offset(offset),
			mongodriver.Limit(limit))
	if err != nil {
		return nil, 0, err
	}

	return results, totalCount, nil
}

func buildApplicationsQuery(internshipID, studentID string, statuses []string) bson.M {
	selector := bson.M{}

	if internshipID != "" {
		selector["internship_id"] = internshipID
	}

	if studentID != "" {
		selector["student_id"] = studentID
	}

	if len(statuses) > 0 {
		selector["status"] = bson.M{"$in": statuses}
	}

	return selector
}

// GetApplication retrieves an application document by its id
func (m *Mongo) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := m.Connection.Collection(m.ActualCollectionName(config.ApplicationsCollection)).FindOne(ctx, bson.M{"_id": id}, &application)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrApplicationNotFound
		}
		return nil, err
	}

	return &application, nil
}

// GetStudentApplication retrieves the application a student made to an internship, if any.
// Used to prevent duplicate applications.
func (m *Mongo) GetStudentApplication(ctx context.Context, internshipID, studentID string) (*models.Application, error) {
	selector := bson.M{
		"internship_id": internshipID,
		"student_id":    studentID,
	}

	var application models.Application
	err := m.Connection.Collection(m.ActualCollectionName(config.ApplicationsCollection)).FindOne(ctx, selector, &application)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrApplicationNotFound
		}
		return nil, err
	}

	return &application, nil
}

// UpdateApplication overrides an existing application document and returns the new eTag
func (m *Mongo) UpdateApplication(ctx context.Context, id string, application *models.Application) (string, error) {
	application.LastUpdated = time.Now().UTC()

	newETag, err := application.Hash(nil)
	if err != nil {
		return "", err
	}
	application.ETag = newETag

	update := bson.M{"$set": application}
	if _, err = m.Connection.Collection(m.ActualCollectionName(config.ApplicationsCollection)).Must().UpdateById(ctx, id, update); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return "", errs.ErrApplicationNotFound
		}
		return "", err
	}

	return newETag, nil
}
