package url

import (
	"fmt"
	"net/url"
)

// Builder encapsulates the building of urls in a central place, with knowledge of the url structures and base host names.
type Builder struct {
	websiteURL       *url.URL
	internshipAPIURL *url.URL
}

// NewBuilder returns a new instance of url.Builder
func NewBuilder(websiteURL, internshipAPIURL *url.URL) *Builder {
	return &Builder{
		websiteURL:       websiteURL,
		internshipAPIURL: internshipAPIURL,
	}
}

func (builder *Builder) GetWebsiteURL() *url.URL {
	return builder.websiteURL
}

func (builder *Builder) GetInternshipAPIURL() *url.URL {
	return builder.internshipAPIURL
}

// BuildInternshipURL returns the API URL for a specific internship posting
func (builder *Builder) BuildInternshipURL(internshipID string) string {
	return fmt.Sprintf("%s/internships/%s", builder.internshipAPIURL.String(), internshipID)
}

// BuildInternshipApplicationsURL returns the API URL for the applications of an internship posting
func (builder *Builder) BuildInternshipApplicationsURL(internshipID string) string {
	return fmt.Sprintf("%s/internships/%s/applications", builder.internshipAPIURL.String(), internshipID)
}

// BuildApplicationURL returns the API URL for a specific application
func (builder *Builder) BuildApplicationURL(applicationID string) string {
	return fmt.Sprintf("%s/applications/%s", builder.internshipAPIURL.String(), applicationID)
}

// BuildApplicationLogbookURL returns the API URL for an application's logbook
func (builder *Builder) BuildApplicationLogbookURL(applicationID string) string {
	return fmt.Sprintf("%s/applications/%s/logbook", builder.internshipAPIURL.String(), applicationID)
}

// BuildCertificateURL returns the API URL for a specific certificate
func (builder *Builder) BuildCertificateURL(certificateID string) string {
	return fmt.Sprintf("%s/certificates/%s", builder.internshipAPIURL.String(), certificateID)
}

// BuildCertificateVerifyURL returns the public website URL at which a certificate
// can be verified with its token
func (builder *Builder) BuildCertificateVerifyURL(certificateID, token string) string {
	return fmt.Sprintf("%s/certificates/%s/verify?token=%s", builder.websiteURL.String(), certificateID, url.QueryEscape(token))
}
