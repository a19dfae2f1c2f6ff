package url_test

import (
	"fmt"
	neturl "net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/edulink/internship-api/url"
)

const (
	websiteURL    = "http://localhost:20000"
	apiURL        = "http://localhost:25700"
	internshipID  = "internship-123"
	applicationID = "application-456"
	certificateID = "certificate-789"
)

func TestBuilder_BuildInternshipURL(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		urlBuilder := newBuilder()

		Convey("When BuildInternshipURL is called", func() {
			builtURL := urlBuilder.BuildInternshipURL(internshipID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/internships/%s", apiURL, internshipID))
			})
		})

		Convey("When BuildInternshipApplicationsURL is called", func() {
			builtURL := urlBuilder.BuildInternshipApplicationsURL(internshipID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/internships/%s/applications", apiURL, internshipID))
			})
		})
	})
}

func TestBuilder_BuildApplicationURL(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		urlBuilder := newBuilder()

		Convey("When BuildApplicationURL is called", func() {
			builtURL := urlBuilder.BuildApplicationURL(applicationID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/applications/%s", apiURL, applicationID))
			})
		})

		Convey("When BuildApplicationLogbookURL is called", func() {
			builtURL := urlBuilder.BuildApplicationLogbookURL(applicationID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/applications/%s/logbook", apiURL, applicationID))
			})
		})
	})
}

func TestBuilder_BuildCertificateURLs(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		urlBuilder := newBuilder()

		Convey("When BuildCertificateURL is called", func() {
			builtURL := urlBuilder.BuildCertificateURL(certificateID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/certificates/%s", apiURL, certificateID))
			})
		})

		Convey("When BuildCertificateVerifyURL is called", func() {
			builtURL := urlBuilder.BuildCertificateVerifyURL(certificateID, "a token")

			Convey("Then the token is query escaped in the returned URL", func() {
				So(builtURL, ShouldEqual, fmt.Sprintf("%s/certificates/%s/verify?token=a+token", websiteURL, certificateID))
			})
		})
	})
}

func newBuilder() *url.Builder {
	parsedWebsiteURL, _ := neturl.Parse(websiteURL)
	parsedAPIURL, _ := neturl.Parse(apiURL)
	return url.NewBuilder(parsedWebsiteURL, parsedAPIURL)
}
