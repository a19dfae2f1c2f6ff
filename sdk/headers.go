package sdk

import (
	"errors"
	"net/http"

	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
)

// ResponseHeaders represents headers that are available in the HTTP response
type ResponseHeaders struct {
	ETag string
}

const (
	ifMatchHeader = "If-Match"
	eTagHeader    = "ETag"
)

var (
	// ErrHeaderNotFound returned if the requested header is not present in the provided response
	ErrHeaderNotFound = errors.New("header not found")

	// ErrResponseNil returned if a GetResponseX header function is called with a nil response
	ErrResponseNil = errors.New("error getting response header, response was nil")
)

// Headers contains the headers to be added to any request
type Headers struct {
	ServiceToken    string
	UserAccessToken string
	IfMatch         string
}

// add attaches the configured headers to the input request
func (h *Headers) add(request *http.Request) {
	dpNetRequest.AddFlorenceHeader(request, h.UserAccessToken)
	dpNetRequest.AddServiceTokenHeader(request, h.ServiceToken)

	if h.IfMatch != "" {
		request.Header.Add(ifMatchHeader, h.IfMatch)
	}
}

// getResponseETag returns the value of the "ETag" response header if it exists, returns
// ErrHeaderNotFound if the header is not present
func getResponseETag(resp *http.Response) (string, error) {
	return getResponseHeader(resp, eTagHeader)
}

func getResponseHeader(resp *http.Response, headerName string) (string, error) {
	if resp == nil {
		return "", ErrResponseNil
	}

	headerValue := resp.Header.Get(headerName)
	if headerValue == "" {
		return "", ErrHeaderNotFound
	}

	return headerValue, nil
}
