// Package rest implements the authenticated transport client shared by all
// Basispoort service clients.
//
// A [Client] owns an HTTP client configured for mutual-TLS authentication
// and the fixed base URL of one [Environment]. The four verb operations
// ([Get], [Post], [Put], [Delete]) resolve a relative path against that base
// URL, perform exactly one request, classify the response by status code and
// decode the body as JSON into the caller's result type. There is no retry,
// caching or other reinterpretation of transport semantics; every error is
// returned to the caller.
//
// The client is immutable after construction and safe for concurrent use.
// Cancelling the context of an in-flight call abandons the request; for
// mutating calls (POST, PUT, DELETE) callers must not assume whether the
// server-side effect did or did not occur.
package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client performs authenticated REST calls against one Basispoort
// environment. Construct it with [ClientBuilder.Build]; pass the same client
// to every service façade in the process.
type Client struct {
	http    *resty.Client
	baseURL *url.URL
	log     zerolog.Logger
}

// NewClient wraps an already configured HTTP client. Most callers should go
// through [ClientBuilder], which sets up mutual TLS for one of the fixed
// environments; NewClient exists for tests and for deployments that
// terminate TLS elsewhere.
func NewClient(httpClient *http.Client, baseURL string, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &URLError{Path: baseURL, Err: err}
	}
	return &Client{
		http:    resty.NewWithClient(httpClient).SetDoNotParseResponse(true),
		baseURL: u,
		log:     log,
	}, nil
}

// BaseURL returns a copy of the client's base URL, for diagnostics and
// testing.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Resolve joins a request path against the client's base URL using standard
// URL reference resolution. A rooted path ("/a/b") replaces everything after
// the host; a relative path ("a/b") is joined beneath the base path. Callers
// must be consistent about leading slashes, since the two forms produce
// different URLs.
func (c *Client) Resolve(path string) (*url.URL, error) {
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, &URLError{Path: path, Err: err}
	}
	return u, nil
}

// Get requests path and decodes the 2xx response body into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return call[T](ctx, c, http.MethodGet, path, nil)
}

// Post sends payload as a JSON body to path and decodes the 2xx response
// body into T. Use T = struct{} for endpoints that return no content.
func Post[P, T any](ctx context.Context, c *Client, path string, payload P) (T, error) {
	return callWithPayload[T](ctx, c, http.MethodPost, path, payload)
}

// Put sends payload as a JSON body to path and decodes the 2xx response body
// into T.
func Put[P, T any](ctx context.Context, c *Client, path string, payload P) (T, error) {
	return callWithPayload[T](ctx, c, http.MethodPut, path, payload)
}

// Delete requests path with the DELETE method and decodes the 2xx response
// body into T. Endpoints answering 204 with an empty body decode into
// T = struct{}.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return call[T](ctx, c, http.MethodDelete, path, nil)
}

func callWithPayload[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		var zero T
		return zero, &EncodeError{Err: err}
	}
	return call[T](ctx, c, method, path, body)
}

// call runs one full request cycle: resolve, send, classify, decode.
func call[T any](ctx context.Context, c *Client, method, path string, body []byte) (T, error) {
	var result T

	u, err := c.Resolve(path)
	if err != nil {
		return result, err
	}

	raw, err := c.exchange(ctx, method, u, body)
	if err != nil {
		return result, err
	}

	// An empty body is decodable JSON for any T: treat it as the literal
	// null, so no-content endpoints work without caller special-casing.
	if len(raw) == 0 {
		raw = []byte("null")
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, &DecodeError{URL: u.String(), Err: err}
	}

	c.log.Trace().Str("method", method).Str("url", u.String()).Msg("decoded response")
	return result, nil
}

// exchange sends the request and returns the raw bytes of a 2xx response
// body. Non-2xx responses become a [*StatusError] carrying the best-effort
// decoded error body; the body is consumed exactly once either way.
func (c *Client) exchange(ctx context.Context, method string, u *url.URL, body []byte) ([]byte, error) {
	c.log.Trace().Str("method", method).Str("url", u.String()).Msg("sending request")

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, u.String())
	if err != nil {
		return nil, &RequestError{Method: method, URL: u.String(), Err: err}
	}

	raw, err := receiveBody(resp)
	if err != nil {
		return nil, &BodyError{URL: u.String(), Err: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("url", u.String()).
		Int("status", resp.StatusCode()).
		Msg("received response")

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{
			URL:        u.String(),
			StatusCode: resp.StatusCode(),
			Response:   decodeErrorBody(raw),
		}
	}

	return raw, nil
}

func receiveBody(resp *resty.Response) ([]byte, error) {
	reader := resp.RawBody()
	if reader == nil {
		return nil, nil
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func decodeErrorBody(raw []byte) ErrorResponse {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ErrorResponse{Plain: string(raw)}
	}
	return ErrorResponse{JSON: value, isJSON: true}
}
