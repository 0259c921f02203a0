// Package client is an HTTP client for the address API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/qdm12/ipconvert/internal/service"
)

const DefaultBaseURL = "http://127.0.0.1:5050"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// APIError is returned when the API answers with a non 2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message + " (" + strconv.Itoa(e.StatusCode) + " " +
		http.StatusText(e.StatusCode) + ")"
}

// Ping checks the API is reachable and returns its status message.
func (c *Client) Ping(ctx context.Context) (message string, err error) {
	var response struct {
		Message string `json:"message"`
	}
	err = c.do(ctx, http.MethodGet, "/", nil, &response)
	if err != nil {
		return "", err
	}
	return response.Message, nil
}

type ipRequest struct {
	IP string `json:"ip"`
}

func (c *Client) Validate(ctx context.Context, ip string) (
	result service.ValidateResult, err error) {
	err = c.do(ctx, http.MethodPost, "/validate", ipRequest{IP: ip}, &result)
	return result, err
}

func (c *Client) Convert(ctx context.Context, ip string) (
	result service.ConvertResult, err error) {
	err = c.do(ctx, http.MethodPost, "/convert", ipRequest{IP: ip}, &result)
	return result, err
}

func (c *Client) Geolocate(ctx context.Context, ip string) (
	result service.GeoResult, err error) {
	err = c.do(ctx, http.MethodPost, "/geolocate", ipRequest{IP: ip}, &result)
	return result, err
}

func (c *Client) do(ctx context.Context, method, path string,
	requestData, responseData any) (err error) {
	var body io.Reader
	if requestData != nil {
		b, err := json.Marshal(requestData)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	const maxBodySize = 1 << 20
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return makeAPIError(response.StatusCode, b)
	}

	err = json.Unmarshal(b, responseData)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func makeAPIError(statusCode int, body []byte) *APIError {
	var errData struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &errData)
	message := errData.Error
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
