package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/edulink/internship-api/models"
)

// ApplicationsList represents an object containing a list of paginated applications. This struct is based
// on the `pagination.page` struct which is returned when we call the `api.getApplications` endpoint
type ApplicationsList struct {
	Items      []models.Application `json:"items"`
	Count      int                  `json:"count"`
	Offset     int                  `json:"offset"`
	Limit      int                  `json:"limit"`
	TotalCount int                  `json:"total_count"`
}

// GetApplications returns all applications for an internship
func (c *Client) GetApplications(ctx context.Context, headers Headers, internshipID string, queryParams *QueryParams) (applicationsList ApplicationsList, err error) {
	applicationsList = ApplicationsList{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "internships", internshipID, "applications")
	if err != nil {
		return applicationsList, err
	}

	// Add query params to request if valid
	if queryParams != nil {
		if err := queryParams.Validate(); err != nil {
			return applicationsList, err
		}
		// Add query parameters
		query := uri.Query()
		query.Set("limit", strconv.Itoa(queryParams.Limit))
		query.Set("offset", strconv.Itoa(queryParams.Offset))
		if queryParams.Status != "" {
			query.Set("status", queryParams.Status)
		}
		if queryParams.StudentID != "" {
			query.Set("student_id", queryParams.StudentID)
		}
		uri.RawQuery = query.Encode()
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return applicationsList, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &applicationsList)

	return applicationsList, err
}

// GetApplication retrieves a single application document for the given id
func (c *Client) GetApplication(ctx context.Context, headers Headers, applicationID string) (application models.Application, err error) {
	application = models.Application{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications", applicationID)
	if err != nil {
		return application, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return application, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &application)

	return application, err
}

// PostApplication submits a new application against an internship
func (c *Client) PostApplication(ctx context.Context, headers Headers, internshipID string, application models.Application) (newApplication models.Application, err error) {
	newApplication = models.Application{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "internships", internshipID, "applications")
	if err != nil {
		return newApplication, err
	}

	payload, err := json.Marshal(application)
	if err != nil {
		return newApplication, errors.Wrap(err, "error while attempting to marshal application")
	}

	resp, err := c.DoAuthenticatedPostRequest(ctx, headers, uri, payload)
	if err != nil {
		return newApplication, errors.Wrap(err, "http client returned error while attempting to make request")
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusCreated {
		responseBody, err := getStringResponseBody(resp)
		if err != nil {
			return newApplication, fmt.Errorf("did not receive success response. received status %d", resp.StatusCode)
		}
		return newApplication, fmt.Errorf("did not receive success response. received status %d, response body: %s", resp.StatusCode, *responseBody)
	}

	b, err := getStringResponseBody(resp)
	if err != nil {
		return newApplication, err
	}
	err = json.Unmarshal([]byte(*b), &newApplication)

	return newApplication, err
}

// PutApplication updates an application, amending its status when one is provided
func (c *Client) PutApplication(ctx context.Context, headers Headers, applicationID string, application models.Application) (eTag string, err error) {
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications", applicationID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(application)
	if err != nil {
		return "", errors.Wrap(err, "error while attempting to marshal application")
	}

	resp, err := c.DoAuthenticatedPutRequest(ctx, headers, uri, payload)
	if err != nil {
		return "", errors.Wrap(err, "http client returned error while attempting to make request")
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusMultipleChoices {
		responseBody, err := getStringResponseBody(resp)
		if err != nil {
			return "", fmt.Errorf("did not receive success response. received status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("did not receive success response. received status %d, response body: %s", resp.StatusCode, *responseBody)
	}

	eTag, err = getResponseETag(resp)
	if err != nil && err != ErrHeaderNotFound {
		return "", err
	}

	return eTag, nil
}
