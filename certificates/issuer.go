package certificates

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	uuid "github.com/satori/go.uuid"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/url"
)

//go:generate moq -out mock/store.go -pkg mock . Store

// Store is the subset of the datastore needed to issue and verify certificates
type Store interface {
	GetApplication(ctx context.Context, applicationID string) (*models.Application, error)
	CountUnapprovedLogbookEntries(ctx context.Context, applicationID string) (int, error)
	GetCertificate(ctx context.Context, certificateID string) (*models.Certificate, error)
	GetCertificateByApplicationID(ctx context.Context, applicationID string) (*models.Certificate, error)
	AddCertificate(ctx context.Context, certificate *models.Certificate) error
}

// Issuer issues completion certificates and verifies their signed tokens
type Issuer struct {
	Store      Store
	URLBuilder *url.Builder
	SigningKey []byte
	TokenTTL   time.Duration
}

// NewIssuer creates a new certificate issuer
func NewIssuer(store Store, urlBuilder *url.Builder, signingKey []byte, tokenTTL time.Duration) *Issuer {
	return &Issuer{
		Store:      store,
		URLBuilder: urlBuilder,
		SigningKey: signingKey,
		TokenTTL:   tokenTTL,
	}
}

// Issue creates a certificate for the given application. The application must be
// completed with every logbook entry approved, and must not already hold a certificate.
func (i *Issuer) Issue(ctx context.Context, applicationID string) (*models.Certificate, error) {
	application, err := i.Store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.Status != models.CompletedStatus {
		return nil, errs.ErrCertificateNotEarned
	}

	unapproved, err := i.Store.CountUnapprovedLogbookEntries(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if unapproved > 0 {
		return nil, errs.ErrCertificateNotEarned
	}

	if _, err := i.Store.GetCertificateByApplicationID(ctx, applicationID); err == nil {
		return nil, errs.ErrCertificateAlreadyIssued
	} else if err != errs.ErrCertificateNotFound {
		return nil, err
	}

	certificateUUID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	serialUUID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	certificateID := certificateUUID.String()
	serial := serialUUID.String()
	issuedAt := time.Now().UTC()

	token, err := i.signToken(serial, application, issuedAt)
	if err != nil {
		return nil, err
	}

	certificate := &models.Certificate{
		ID:                certificateID,
		Serial:            serial,
		ApplicationID:     application.ID,
		StudentID:         application.StudentID,
		InternshipID:      application.InternshipID,
		IssuedAt:          issuedAt,
		VerificationToken: token,
		Links: &models.CertificateLinks{
			Application: &models.LinkObject{
				HRef: i.URLBuilder.BuildApplicationURL(application.ID),
				ID:   application.ID,
			},
			Self: &models.LinkObject{
				HRef: i.URLBuilder.BuildCertificateURL(certificateID),
				ID:   certificateID,
			},
			Verify: &models.LinkObject{
				HRef: i.URLBuilder.BuildCertificateVerifyURL(certificateID, token),
			},
		},
	}

	if err := i.Store.AddCertificate(ctx, certificate); err != nil {
		return nil, err
	}

	return certificate, nil
}

// Verify checks the provided token against the stored certificate. The token must be
// correctly signed, unexpired, and issued for the certificate's serial.
func (i *Issuer) Verify(ctx context.Context, certificateID, tokenString string) (*models.Certificate, error) {
	certificate, err := i.Store.GetCertificate(ctx, certificateID)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return i.SigningKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errs.ErrCertificateTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.ErrCertificateTokenInvalid
	}

	serial, ok := claims["serial"].(string)
	if !ok || serial != certificate.Serial {
		return nil, errs.ErrCertificateTokenInvalid
	}

	return certificate, nil
}

func (i *Issuer) signToken(serial string, application *models.Application, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"serial":         serial,
		"application_id": application.ID,
		"student_id":     application.StudentID,
		"iat":            issuedAt.Unix(),
		"exp":            issuedAt.Add(i.TokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.SigningKey)
}
