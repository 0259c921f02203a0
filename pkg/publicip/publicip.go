// Package publicip finds the public IPv4 and IPv6 addresses of the
// machine running the program, using HTTP echo services.
package publicip

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"sync"
	"time"

	"github.com/qdm12/ipconvert/pkg/address"
)

type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	ip4     *urlsRing
	ip6     *urlsRing
}

type urlsRing struct {
	index int
	urls  []string
	mutex sync.Mutex
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		ip4:     newRing(settings.providers, address.V4),
		ip6:     newRing(settings.providers, address.V6),
	}, nil
}

func newRing(providers []Provider, version address.Version) (ring *urlsRing) {
	ring = &urlsRing{
		urls: make([]string, len(providers)),
	}
	for i, provider := range providers {
		ring.urls[i] = provider.url(version)
	}
	return ring
}

func (u *urlsRing) next() (url string) {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	url = u.urls[u.index]
	u.index = (u.index + 1) % len(u.urls)
	return url
}

// IP4 returns the public IPv4 address.
func (f *Fetcher) IP4(ctx context.Context) (ipv4 netip.Addr, err error) {
	return f.ip(ctx, f.ip4, address.V4)
}

// IP6 returns the public IPv6 address. It fails with ErrIPVersionMismatch
// if the machine has no IPv6 connectivity and the echo service answered
// over IPv4.
func (f *Fetcher) IP6(ctx context.Context) (ipv6 netip.Addr, err error) {
	return f.ip(ctx, f.ip6, address.V6)
}

func (f *Fetcher) ip(ctx context.Context, ring *urlsRing, version address.Version) (
	publicIP netip.Addr, err error) {
	url := ring.next()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return fetch(ctx, f.client, url, version)
}
