package store

import (
	"context"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/edulink/internship-api/models"
)

// DataStore provides a datastore.Storer interface used to store, retrieve, remove or update internship resources
type DataStore struct {
	Backend Storer
}

//go:generate moq -out datastoretest/datastore.go -pkg storetest . Storer

type dataMongoDB interface {
	GetInternships(ctx context.Context, offset, limit int, state, employerID, institutionID string) ([]*models.Internship, int, error)
	GetInternship(ctx context.Context, id string) (*models.Internship, error)
	UpsertInternship(ctx context.Context, id string, internship *models.Internship) error
	DeleteInternship(ctx context.Context, id string) error
	AcquireInternshipSlot(ctx context.Context, internshipID string) error
	ReleaseInternshipSlot(ctx context.Context, internshipID string) error

	AddApplication(ctx context.Context, application *models.Application) (*models.Application, error)
	GetApplications(ctx context.Context, offset, limit int, internshipID, studentID string, statuses []string) ([]*models.Application, int, error)
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	GetStudentApplication(ctx context.Context, internshipID, studentID string) (*models.Application, error)
	UpdateApplication(ctx context.Context, id string, application *models.Application) (string, error)
	AcquireApplicationLock(ctx context.Context, applicationID string) (string, error)
	UnlockApplication(ctx context.Context, lockID string)

	UpsertLogbookEntry(ctx context.Context, entry *models.LogbookEntry) (*models.LogbookEntry, error)
	GetLogbookEntries(ctx context.Context, applicationID string, offset, limit int) ([]*models.LogbookEntry, int, error)
	GetLogbookEntry(ctx context.Context, applicationID, entryID string) (*models.LogbookEntry, error)
	UpdateLogbookEntry(ctx context.Context, id string, entry *models.LogbookEntry) error
	CountUnapprovedLogbookEntries(ctx context.Context, applicationID string) (int, error)

	AddCertificate(ctx context.Context, certificate *models.Certificate) error
	GetCertificate(ctx context.Context, id string) (*models.Certificate, error)
	GetCertificateByApplicationID(ctx context.Context, applicationID string) (*models.Certificate, error)

	CreateAuditEvent(ctx context.Context, event *models.AuditEvent) error
}

// MongoDB represents all the required methods from mongo DB
type MongoDB interface {
	dataMongoDB
	Close(context.Context) error
	Checker(context.Context, *healthcheck.CheckState) error
}

// Storer represents basic data access via Get, Remove and Upsert methods, abstracting it from mongoDB
type Storer interface {
	dataMongoDB
}
