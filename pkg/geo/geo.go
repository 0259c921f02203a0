package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"time"
)

// Geolocator looks up the geolocation of IP addresses using
// a single provider.
type Geolocator struct {
	client   *http.Client
	provider Provider
	timeout  time.Duration
}

func New(client *http.Client, options ...Option) (geolocator *Geolocator, err error) {
	var settings settings
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	settings.setDefaults()

	return &Geolocator{
		client:   client,
		provider: settings.provider,
		timeout:  settings.timeout,
	}, nil
}

func (g *Geolocator) Provider() Provider { return g.provider }

// Lookup geolocates the IP address given. It returns the normalized
// record together with the raw provider response.
// A *LookupError is returned if the provider reports a failure, and
// any other failure wraps ErrProviderUnavailable.
func (g *Geolocator) Lookup(ctx context.Context, ip netip.Addr) (
	record Record, raw Raw, err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, g.provider.url(ip), nil)
	if err != nil {
		return record, nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "ipconvert")

	response, err := g.client.Do(request)
	if err != nil {
		return record, nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	body, err := readBody(response.Body)
	_ = response.Body.Close()
	if err != nil {
		return record, nil, fmt.Errorf("%w: reading response body: %w",
			ErrProviderUnavailable, err)
	}

	switch {
	case response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices:
	case response.StatusCode == http.StatusForbidden,
		response.StatusCode == http.StatusTooManyRequests:
		return record, nil, fmt.Errorf("%w: %w (%s)", ErrProviderUnavailable,
			ErrTooManyRequests, toSingleLine(string(body)))
	default:
		// Providers may describe the failure in an error status response.
		raw, _ = decode(body)
		if message, failed := failureMessage(g.provider, raw); failed {
			return record, raw, &LookupError{Provider: g.provider, Message: message}
		}
		return record, nil, fmt.Errorf("%w: %w: %s (%s)", ErrProviderUnavailable,
			ErrBadHTTPStatus, response.Status, toSingleLine(string(body)))
	}

	raw, err = decode(body)
	if err != nil {
		return record, nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if message, failed := failureMessage(g.provider, raw); failed {
		return record, raw, &LookupError{Provider: g.provider, Message: message}
	}

	record = normalize(g.provider, raw)
	if record.IP == "" {
		record.IP = ip.String()
	}
	return record, raw, nil
}

func decode(body []byte) (raw Raw, err error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	err = decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON response: %w", err)
	}
	return raw, nil
}
