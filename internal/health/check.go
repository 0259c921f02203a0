package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// MakeIsHealthy returns a health check function querying the
// root route of the API server listening on listeningAddress.
func MakeIsHealthy(client *http.Client, listeningAddress string,
	warner Warner) func() error {
	url := LocalURL(listeningAddress)
	return func() (err error) {
		const timeout = 3 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err = isHealthy(ctx, client, url)
		if err != nil {
			warner.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

var ErrAPINotOK = errors.New("API root route status is not OK")

func isHealthy(ctx context.Context, client *http.Client, url string) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("querying API: %w", err)
	}
	_ = response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrAPINotOK, response.Status)
	}
	return nil
}

// LocalURL returns the loopback URL to reach a server listening
// on the listening address given.
func LocalURL(listeningAddress string) (url string) {
	host, port, err := net.SplitHostPort(listeningAddress)
	if err != nil {
		return "http://" + listeningAddress + "/"
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
