package certificates_test

import (
	"context"
	neturl "net/url"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/certificates"
	"github.com/edulink/internship-api/certificates/mock"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/url"
)

var (
	testSigningKey = []byte("test-signing-key")
	testContext    = context.Background()
)

func testIssuer(store *mock.StoreMock) *certificates.Issuer {
	websiteURL, _ := neturl.Parse("http://localhost:20000")
	apiURL, _ := neturl.Parse("http://localhost:25700")
	return certificates.NewIssuer(store, url.NewBuilder(websiteURL, apiURL), testSigningKey, time.Hour)
}

func completedApplication() *models.Application {
	return &models.Application{
		ID:           "application-1",
		InternshipID: "internship-1",
		StudentID:    "student-1",
		Status:       models.CompletedStatus,
	}
}

func TestIssueCertificate(t *testing.T) {
	Convey("Given a completed application with a fully approved logbook", t, func() {
		mockedStore := &mock.StoreMock{
			GetApplicationFunc: func(ctx context.Context, applicationID string) (*models.Application, error) {
				return completedApplication(), nil
			},
			CountUnapprovedLogbookEntriesFunc: func(ctx context.Context, applicationID string) (int, error) {
				return 0, nil
			},
			GetCertificateByApplicationIDFunc: func(ctx context.Context, applicationID string) (*models.Certificate, error) {
				return nil, errs.ErrCertificateNotFound
			},
			AddCertificateFunc: func(ctx context.Context, certificate *models.Certificate) error {
				return nil
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When a certificate is issued", func() {
			certificate, err := issuer.Issue(testContext, "application-1")

			Convey("Then the certificate is created and stored", func() {
				So(err, ShouldBeNil)
				So(certificate.ID, ShouldNotBeEmpty)
				So(certificate.Serial, ShouldNotBeEmpty)
				So(certificate.ApplicationID, ShouldEqual, "application-1")
				So(certificate.StudentID, ShouldEqual, "student-1")
				So(certificate.VerificationToken, ShouldNotBeEmpty)
				So(certificate.Links.Self.HRef, ShouldEqual, "http://localhost:25700/certificates/"+certificate.ID)
				So(len(mockedStore.AddCertificateCalls()), ShouldEqual, 1)
			})

			Convey("Then the issued token verifies against the stored certificate", func() {
				mockedStore.GetCertificateFunc = func(ctx context.Context, certificateID string) (*models.Certificate, error) {
					return certificate, nil
				}

				verified, err := issuer.Verify(testContext, certificate.ID, certificate.VerificationToken)
				So(err, ShouldBeNil)
				So(verified.Serial, ShouldEqual, certificate.Serial)
			})
		})
	})
}

func TestIssueCertificateNotEarned(t *testing.T) {
	Convey("Given an application that is not completed", t, func() {
		mockedStore := &mock.StoreMock{
			GetApplicationFunc: func(ctx context.Context, applicationID string) (*models.Application, error) {
				application := completedApplication()
				application.Status = models.AcceptedStatus
				return application, nil
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When a certificate is issued", func() {
			_, err := issuer.Issue(testContext, "application-1")

			Convey("Then a certificate not earned error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateNotEarned)
			})
		})
	})

	Convey("Given a completed application with unapproved logbook entries", t, func() {
		mockedStore := &mock.StoreMock{
			GetApplicationFunc: func(ctx context.Context, applicationID string) (*models.Application, error) {
				return completedApplication(), nil
			},
			CountUnapprovedLogbookEntriesFunc: func(ctx context.Context, applicationID string) (int, error) {
				return 2, nil
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When a certificate is issued", func() {
			_, err := issuer.Issue(testContext, "application-1")

			Convey("Then a certificate not earned error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateNotEarned)
				So(len(mockedStore.AddCertificateCalls()), ShouldEqual, 0)
			})
		})
	})
}

func TestIssueCertificateAlreadyIssued(t *testing.T) {
	Convey("Given an application that already holds a certificate", t, func() {
		mockedStore := &mock.StoreMock{
			GetApplicationFunc: func(ctx context.Context, applicationID string) (*models.Application, error) {
				return completedApplication(), nil
			},
			CountUnapprovedLogbookEntriesFunc: func(ctx context.Context, applicationID string) (int, error) {
				return 0, nil
			},
			GetCertificateByApplicationIDFunc: func(ctx context.Context, applicationID string) (*models.Certificate, error) {
				return &models.Certificate{ID: "certificate-1"}, nil
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When a certificate is issued", func() {
			_, err := issuer.Issue(testContext, "application-1")

			Convey("Then an already issued error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateAlreadyIssued)
				So(len(mockedStore.AddCertificateCalls()), ShouldEqual, 0)
			})
		})
	})
}

func TestVerifyCertificate(t *testing.T) {
	Convey("Given a stored certificate", t, func() {
		mockedStore := &mock.StoreMock{
			GetCertificateFunc: func(ctx context.Context, certificateID string) (*models.Certificate, error) {
				return &models.Certificate{ID: "certificate-1", Serial: "serial-1"}, nil
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When verification is attempted with a malformed token", func() {
			_, err := issuer.Verify(testContext, "certificate-1", "not-a-token")

			Convey("Then an invalid token error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateTokenInvalid)
			})
		})

		Convey("When verification is attempted with a token for a different serial", func() {
			token, signErr := issuer.SignToken("some-other-serial", completedApplication(), time.Now().UTC())
			So(signErr, ShouldBeNil)

			_, err := issuer.Verify(testContext, "certificate-1", token)

			Convey("Then an invalid token error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateTokenInvalid)
			})
		})

		Convey("When verification is attempted with an expired token", func() {
			expiredIssuer := testIssuer(mockedStore)
			expiredIssuer.TokenTTL = -time.Hour

			token, signErr := expiredIssuer.SignToken("serial-1", completedApplication(), time.Now().UTC().Add(-2*time.Hour))
			So(signErr, ShouldBeNil)

			_, err := expiredIssuer.Verify(testContext, "certificate-1", token)

			Convey("Then an invalid token error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateTokenInvalid)
			})
		})
	})

	Convey("Given the certificate does not exist", t, func() {
		mockedStore := &mock.StoreMock{
			GetCertificateFunc: func(ctx context.Context, certificateID string) (*models.Certificate, error) {
				return nil, errs.ErrCertificateNotFound
			},
		}
		issuer := testIssuer(mockedStore)

		Convey("When verification is attempted", func() {
			_, err := issuer.Verify(testContext, "certificate-1", "any-token")

			Convey("Then a not found error is returned", func() {
				So(err, ShouldEqual, errs.ErrCertificateNotFound)
			})
		})
	})
}
