package publicip

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	client := &http.Client{Timeout: time.Second}

	testCases := map[string]struct {
		options    []Option
		fetcher    *Fetcher
		errWrapped error
	}{
		"no options": {
			fetcher: &Fetcher{
				client:  client,
				timeout: 6 * time.Second,
				ip4: &urlsRing{
					urls: []string{"https://api.ipify.org?format=json"},
				},
				ip6: &urlsRing{
					urls: []string{"https://api6.ipify.org?format=json"},
				},
			},
		},
		"with options": {
			options: []Option{
				SetProviders(Seeip, Ipify),
				SetTimeout(time.Second),
			},
			fetcher: &Fetcher{
				client:  client,
				timeout: time.Second,
				ip4: &urlsRing{
					urls: []string{
						"https://ipv4.seeip.org/jsonip",
						"https://api.ipify.org?format=json",
					},
				},
				ip6: &urlsRing{
					urls: []string{
						"https://ipv6.seeip.org/jsonip",
						"https://api6.ipify.org?format=json",
					},
				},
			},
		},
		"unknown provider": {
			options:    []Option{SetProviders("google")},
			errWrapped: ErrUnknownProvider,
		},
		"zero timeout": {
			options:    []Option{SetTimeout(0)},
			errWrapped: ErrTimeoutNotPositive,
		},
		"negative timeout": {
			options:    []Option{SetTimeout(-time.Second)},
			errWrapped: ErrTimeoutNotPositive,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := New(client, testCase.options...)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.fetcher, fetcher)
		})
	}
}

func Test_Fetcher_rotation(t *testing.T) {
	t.Parallel()

	var mutex sync.Mutex
	var urls []string
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			mutex.Lock()
			urls = append(urls, r.URL.String())
			mutex.Unlock()
			body := `{"ip":"2001:db8::1"}`
			if r.URL.Host == "api.ipify.org" || r.URL.Host == "ipv4.seeip.org" {
				body = `{"ip":"203.0.113.7"}`
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			}, nil
		}),
	}

	fetcher, err := New(client, SetProviders(Ipify, Seeip))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ipv4, err := fetcher.IP4(ctx)
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("203.0.113.7"), ipv4)
	}
	ipv6, err := fetcher.IP6(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("2001:db8::1"), ipv6)

	expectedURLs := []string{
		"https://api.ipify.org?format=json",
		"https://ipv4.seeip.org/jsonip",
		"https://api.ipify.org?format=json",
		"https://api6.ipify.org?format=json",
	}
	assert.Equal(t, expectedURLs, urls)
}

func Test_ParseProvider(t *testing.T) {
	t.Parallel()

	provider, err := ParseProvider(" SeeIP ")
	require.NoError(t, err)
	assert.Equal(t, Seeip, provider)

	provider, err = ParseProvider("ipify")
	require.NoError(t, err)
	assert.Equal(t, Ipify, provider)

	_, err = ParseProvider("icanhazip")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
