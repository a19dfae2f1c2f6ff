package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"

	"github.com/edulink/internship-api/models"
)

//go:generate moq -out ./mocks/client.go -pkg mocks . Clienter

type Clienter interface {
	Checker(ctx context.Context, check *healthcheck.CheckState) error
	Health() *health.Client
	URL() string
	DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (resp *http.Response, err error)
	GetInternships(ctx context.Context, headers Headers, queryParams *QueryParams) (internshipsList InternshipsList, err error)
	GetInternship(ctx context.Context, headers Headers, internshipID string) (internship models.Internship, err error)
	GetApplications(ctx context.Context, headers Headers, internshipID string, queryParams *QueryParams) (applicationsList ApplicationsList, err error)
	GetApplication(ctx context.Context, headers Headers, applicationID string) (application models.Application, err error)
	PostApplication(ctx context.Context, headers Headers, internshipID string, application models.Application) (newApplication models.Application, err error)
	PutApplication(ctx context.Context, headers Headers, applicationID string, application models.Application) (eTag string, err error)
	GetCertificate(ctx context.Context, headers Headers, certificateID string) (certificate models.Certificate, err error)
	VerifyCertificate(ctx context.Context, headers Headers, certificateID, token string) (certificate models.Certificate, err error)
}
