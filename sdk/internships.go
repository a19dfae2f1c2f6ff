package sdk

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/edulink/internship-api/models"
)

// QueryParams represents the list query parameters accepted by the API
type QueryParams struct {
	Offset        int
	Limit         int
	State         string
	EmployerID    string
	InstitutionID string
	StudentID     string
	Status        string
}

// Validate checks that the paging parameters are sane
func (q *QueryParams) Validate() error {
	if q.Offset < 0 || q.Limit < 0 {
		return errors.New("negative offsets or limits are not allowed")
	}
	return nil
}

// InternshipsList represents an object containing a list of paginated internships. This struct is based
// on the `pagination.page` struct which is returned when we call the `api.getInternships` endpoint
type InternshipsList struct {
	Items      []models.Internship `json:"items"`
	Count      int                 `json:"count"`
	Offset     int                 `json:"offset"`
	Limit      int                 `json:"limit"`
	TotalCount int                 `json:"total_count"`
}

// GetInternships returns all internships matching the provided filters
func (c *Client) GetInternships(ctx context.Context, headers Headers, queryParams *QueryParams) (internshipsList InternshipsList, err error) {
	internshipsList = InternshipsList{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "internships")
	if err != nil {
		return internshipsList, err
	}

	// Add query params to request if valid
	if queryParams != nil {
		if err := queryParams.Validate(); err != nil {
			return internshipsList, err
		}
		// Add query parameters
		query := uri.Query()
		query.Set("limit", strconv.Itoa(queryParams.Limit))
		query.Set("offset", strconv.Itoa(queryParams.Offset))
		if queryParams.State != "" {
			query.Set("state", queryParams.State)
		}
		if queryParams.EmployerID != "" {
			query.Set("employer_id", queryParams.EmployerID)
		}
		if queryParams.InstitutionID != "" {
			query.Set("institution_id", queryParams.InstitutionID)
		}
		uri.RawQuery = query.Encode()
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return internshipsList, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &internshipsList)

	return internshipsList, err
}

// GetInternship retrieves a single internship document for the given id
func (c *Client) GetInternship(ctx context.Context, headers Headers, internshipID string) (internship models.Internship, err error) {
	internship = models.Internship{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "internships", internshipID)
	if err != nil {
		return internship, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return internship, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &internship)

	return internship, err
}
