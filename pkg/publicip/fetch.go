package publicip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/qdm12/ipconvert/pkg/address"
)

var (
	ErrNoIPFound         = errors.New("no IP address found")
	ErrIPMalformed       = errors.New("IP address malformed")
	ErrIPVersionMismatch = errors.New("IP address version mismatch")
	ErrBadHTTPStatus     = errors.New("bad HTTP status received")
)

func fetch(ctx context.Context, client *http.Client, url string,
	version address.Version) (publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return publicIP, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return publicIP, err
	}
	defer response.Body.Close()

	const maxBodySize = 1 << 16
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return publicIP, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return publicIP, fmt.Errorf("%w: %d from %q (%s)", ErrBadHTTPStatus,
			response.StatusCode, url, toSingleLine(string(b)))
	}

	var data struct {
		IP string `json:"ip"`
	}
	err = json.Unmarshal(b, &data)
	if err != nil {
		return publicIP, fmt.Errorf("decoding JSON response from %q: %w", url, err)
	}

	ipString := strings.TrimSpace(data.IP)
	if ipString == "" {
		return publicIP, fmt.Errorf("%w: from %q", ErrNoIPFound, url)
	}

	publicIP, err = netip.ParseAddr(ipString)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPMalformed, err)
	}
	publicIP = publicIP.Unmap()

	switch {
	case version == address.V4 && !publicIP.Is4(),
		version == address.V6 && !publicIP.Is6():
		return netip.Addr{}, fmt.Errorf("%w: %s is not an %s address",
			ErrIPVersionMismatch, publicIP, version)
	}

	return publicIP, nil
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	return line
}
