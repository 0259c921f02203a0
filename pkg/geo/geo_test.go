package geo

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options    []Option
		geolocator *Geolocator
		errWrapped error
		errMessage string
	}{
		"defaults": {
			geolocator: &Geolocator{
				client:   http.DefaultClient,
				provider: IPAPI,
				timeout:  5 * time.Second,
			},
		},
		"ipapi provider": {
			options: []Option{SetProvider(IPAPICo), SetTimeout(time.Second)},
			geolocator: &Geolocator{
				client:   http.DefaultClient,
				provider: IPAPICo,
				timeout:  time.Second,
			},
		},
		"unknown provider": {
			options:    []Option{SetProvider("ipinfo")},
			errWrapped: ErrUnknownProvider,
			errMessage: "applying option: unknown provider: ipinfo",
		},
		"negative timeout": {
			options:    []Option{SetTimeout(-time.Second)},
			errWrapped: ErrTimeoutNotPositive,
			errMessage: "applying option: timeout is not positive: -1s",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			geolocator, err := New(http.DefaultClient, testCase.options...)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.geolocator, geolocator)
		})
	}
}

func Test_ParseProvider(t *testing.T) {
	t.Parallel()

	provider, err := ParseProvider(" IP-API ")
	require.NoError(t, err)
	assert.Equal(t, IPAPI, provider)

	provider, err = ParseProvider("ipapi")
	require.NoError(t, err)
	assert.Equal(t, IPAPICo, provider)

	_, err = ParseProvider("maxmind")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func Test_Geolocator_Lookup(t *testing.T) {
	t.Parallel()

	errDial := errors.New("dial failed")

	const ipAPIURL = "http://ip-api.com/json/8.8.8.8?fields=status,message," +
		"query,country,countryCode,regionName,city,isp,as,timezone,lat,lon"
	const ipapiCoURL = "https://ipapi.co/8.8.8.8/json/"

	testCases := map[string]struct {
		provider   Provider
		url        string
		responder  httpmock.Responder
		record     Record
		rawKeys    []string
		errWrapped error
		errMessage string
	}{
		"ip-api success": {
			provider: IPAPI,
			url:      ipAPIURL,
			responder: httpmock.NewStringResponder(http.StatusOK,
				`{"status":"success","country":"United States","countryCode":"US",`+
					`"regionName":"Virginia","city":"Ashburn","isp":"Google LLC",`+
					`"as":"AS15169 Google LLC","timezone":"America/New_York",`+
					`"lat":39.03,"lon":-77.5,"query":"8.8.8.8"}`),
			record: Record{
				IP:          "8.8.8.8",
				Country:     "United States",
				CountryCode: "US",
				Region:      "Virginia",
				City:        "Ashburn",
				ISP:         "Google LLC",
				ASN:         "AS15169 Google LLC",
				Timezone:    "America/New_York",
				Latitude:    ptrTo(39.03),
				Longitude:   ptrTo(-77.5),
				Provider:    "ip-api",
			},
			rawKeys: []string{"as", "city", "country", "countryCode", "isp",
				"lat", "lon", "query", "regionName", "status", "timezone"},
		},
		"ip-api reported failure": {
			provider: IPAPI,
			url:      ipAPIURL,
			responder: httpmock.NewStringResponder(http.StatusOK,
				`{"status":"fail","message":"private range","query":"8.8.8.8"}`),
			rawKeys:    []string{"message", "query", "status"},
			errWrapped: ErrLookupFailed,
			errMessage: "ip-api: private range",
		},
		"ip-api failure without message": {
			provider: IPAPI,
			url:      ipAPIURL,
			responder: httpmock.NewStringResponder(http.StatusOK,
				`{"status":"fail"}`),
			rawKeys:    []string{"status"},
			errWrapped: ErrLookupFailed,
			errMessage: "ip-api: Lookup failed",
		},
		"ipapi.co success with string coordinates": {
			provider: IPAPICo,
			url:      ipapiCoURL,
			responder: httpmock.NewStringResponder(http.StatusOK,
				`{"ip":"8.8.8.8","city":"Mountain View","region":"California",`+
					`"country":"US","country_name":"United States",`+
					`"country_code":"US","latitude":"37.42","longitude":-122.08,`+
					`"timezone":"America/Los_Angeles","asn":"AS15169","org":"GOOGLE"}`),
			record: Record{
				IP:          "8.8.8.8",
				Country:     "United States",
				CountryCode: "US",
				Region:      "California",
				City:        "Mountain View",
				ISP:         "GOOGLE",
				ASN:         "AS15169",
				Timezone:    "America/Los_Angeles",
				Latitude:    ptrTo(37.42),
				Longitude:   ptrTo(-122.08),
				Provider:    "ipapi",
			},
			rawKeys: []string{"asn", "city", "country", "country_code",
				"country_name", "ip", "latitude", "longitude", "org",
				"region", "timezone"},
		},
		"ipapi.co reported failure": {
			provider: IPAPICo,
			url:      ipapiCoURL,
			responder: httpmock.NewStringResponder(http.StatusOK,
				`{"ip":"8.8.8.8","error":true,"reason":"Reserved IP Address"}`),
			rawKeys:    []string{"error", "ip", "reason"},
			errWrapped: ErrLookupFailed,
			errMessage: "ipapi: Reserved IP Address",
		},
		"ipapi.co failure in error status": {
			provider: IPAPICo,
			url:      ipapiCoURL,
			responder: httpmock.NewStringResponder(http.StatusBadRequest,
				`{"error":true,"reason":"Invalid IP Address"}`),
			rawKeys:    []string{"error", "reason"},
			errWrapped: ErrLookupFailed,
			errMessage: "ipapi: Invalid IP Address",
		},
		"too many requests": {
			provider: IPAPICo,
			url:      ipapiCoURL,
			responder: httpmock.NewStringResponder(http.StatusTooManyRequests,
				"Too many\nrequests"),
			errWrapped: ErrTooManyRequests,
			errMessage: "geolocation provider unavailable: " +
				"too many requests sent (Too manyrequests)",
		},
		"bad status": {
			provider:   IPAPI,
			url:        ipAPIURL,
			responder:  httpmock.NewStringResponder(http.StatusBadGateway, "oops"),
			errWrapped: ErrBadHTTPStatus,
		},
		"malformed body": {
			provider:   IPAPI,
			url:        ipAPIURL,
			responder:  httpmock.NewStringResponder(http.StatusOK, "{"),
			errWrapped: ErrProviderUnavailable,
			errMessage: "geolocation provider unavailable: " +
				"decoding JSON response: unexpected EOF",
		},
		"network error": {
			provider:   IPAPI,
			url:        ipAPIURL,
			responder:  httpmock.NewErrorResponder(errDial),
			errWrapped: ErrProviderUnavailable,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			transport := httpmock.NewMockTransport()
			transport.RegisterResponder(http.MethodGet, testCase.url, testCase.responder)
			client := &http.Client{Transport: transport}

			geolocator, err := New(client, SetProvider(testCase.provider))
			require.NoError(t, err)

			ip := netip.MustParseAddr("8.8.8.8")
			record, raw, err := geolocator.Lookup(context.Background(), ip)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.record, record)
			assert.ElementsMatch(t, testCase.rawKeys, keysOf(raw))
			assert.Equal(t, 1, transport.GetTotalCallCount())
		})
	}
}

func Test_Geolocator_Lookup_fallbackIP(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://ipapi.co/2001:db8::1/json/",
		httpmock.NewStringResponder(http.StatusOK, `{"city":"Paris"}`))
	client := &http.Client{Transport: transport}

	geolocator, err := New(client, SetProvider(IPAPICo))
	require.NoError(t, err)

	record, _, err := geolocator.Lookup(context.Background(),
		netip.MustParseAddr("2001:db8::1"))
	require.NoError(t, err)

	expected := Record{
		IP:       "2001:db8::1",
		City:     "Paris",
		Provider: "ipapi",
	}
	assert.Equal(t, expected, record)
}

func Test_LookupError(t *testing.T) {
	t.Parallel()

	var err error = &LookupError{Provider: IPAPI, Message: "invalid query"}

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "invalid query", lookupErr.Message)
}

func keysOf(raw Raw) (keys []string) {
	for key := range raw {
		keys = append(keys, key)
	}
	return keys
}
