package sdk

import (
	"context"
	"net/url"

	"github.com/edulink/internship-api/models"
)

// GetCertificate retrieves a single certificate document for the given id
func (c *Client) GetCertificate(ctx context.Context, headers Headers, certificateID string) (certificate models.Certificate, err error) {
	certificate = models.Certificate{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "certificates", certificateID)
	if err != nil {
		return certificate, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return certificate, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &certificate)

	return certificate, err
}

// VerifyCertificate checks that the provided token belongs to the certificate,
// returning the certificate on success
func (c *Client) VerifyCertificate(ctx context.Context, headers Headers, certificateID, token string) (certificate models.Certificate, err error) {
	certificate = models.Certificate{}
	// Build uri
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "certificates", certificateID, "verify")
	if err != nil {
		return certificate, err
	}
	query := uri.Query()
	query.Set("token", token)
	uri.RawQuery = query.Encode()

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return certificate, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &certificate)

	return certificate, err
}
