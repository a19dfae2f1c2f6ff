package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	service = "internship-api"
)

// Client is an internship API client with a healthcheck client embedded
type Client struct {
	hcCli *health.Client
}

// New creates a new instance of Client for the service
func New(internshipAPIURL string) *Client {
	return &Client{
		hcCli: health.NewClient(service, internshipAPIURL),
	}
}

// NewWithHealthClient creates a new instance of service API Client, reusing the URL and Clienter
// from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// Checker calls the internship api health endpoint and returns a check object to the caller
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// Health returns the underlying Healthcheck Client for this API client
func (c *Client) Health() *health.Client {
	return c.hcCli
}

// URL returns the URL used by this client
func (c *Client) URL() string {
	return c.hcCli.URL
}

// DoAuthenticatedGetRequest sends a GET request to the provided uri with the
// provided headers attached
func (c *Client) DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	headers.add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// DoAuthenticatedPutRequest sends a PUT request with the provided payload to the
// provided uri with the provided headers attached
func (c *Client) DoAuthenticatedPutRequest(ctx context.Context, headers Headers, uri *url.URL, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uri.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	headers.add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// DoAuthenticatedPostRequest sends a POST request with the provided payload to the
// provided uri with the provided headers attached
func (c *Client) DoAuthenticatedPostRequest(ctx context.Context, headers Headers, uri *url.URL, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	headers.add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}

// Takes the input http response and unmarshalls the body to the input target
func unmarshalResponseBody(response *http.Response, target interface{}) (err error) {
	if response.StatusCode != http.StatusOK {
		var errString string
		errResponseReadErr := json.NewDecoder(response.Body).Decode(&errString)
		if errResponseReadErr != nil {
			errString = "client failed to read InternshipAPI body"
		}
		return errors.New(errString)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, &target)
}

// getStringResponseBody reads the response body into a string
func getStringResponseBody(response *http.Response) (*string, error) {
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	body := string(bytes.TrimSpace(b))
	if body == "" {
		body = "client failed to read InternshipAPI body"
	}

	return &body, nil
}
