package mongo

import (
	"context"
	"errors"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	"go.mongodb.org/mongo-driver/bson"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
)

// AddCertificate inserts a new certificate document
func (m *Mongo) AddCertificate(ctx context.Context, certificate *models.Certificate) error {
	_, err := m.Connection.Collection(m.ActualCollectionName(config.CertificatesCollection)).Insert(ctx, certificate)
	return err
}

// GetCertificate retrieves a certificate document by its id
func (m *Mongo) GetCertificate(ctx context.Context, id string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := m.Connection.Collection(m.ActualCollectionName(config.CertificatesCollection)).FindOne(ctx, bson.M{"_id": id}, &certificate)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrCertificateNotFound
		}
		return nil, err
	}

	return &certificate, nil
}

// GetCertificateByApplicationID retrieves the certificate issued for an application, if any
func (m *Mongo) GetCertificateByApplicationID(ctx context.Context, applicationID string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := m.Connection.Collection(m.ActualCollectionName(config.CertificatesCollection)).FindOne(ctx, bson.M{"application_id": applicationID}, &certificate)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, errs.ErrCertificateNotFound
		}
		return nil, err
	}

	return &certificate, nil
}
