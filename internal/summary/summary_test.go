package summary

import (
	"bytes"
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/ipconvert/internal/summary/mock_summary"
	"github.com/qdm12/ipconvert/pkg/geo"
	"github.com/stretchr/testify/assert"
)

const summaryHeader = "\n=== Public IP Address Summary ===\n\n"

func tableString(rows ...row) string {
	buffer := bytes.NewBuffer(nil)
	writeTable(buffer, rows)
	return buffer.String()
}

func Test_Summary_Run(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	ipv4 := netip.MustParseAddr("1.2.3.4")
	ipv6 := netip.MustParseAddr("2001:db8::1")
	recordV4 := geo.Record{
		IP:          "1.2.3.4",
		Country:     "France",
		CountryCode: "FR",
		Region:      "Ile-de-France",
		City:        "Paris",
		ISP:         "Orange",
		ASN:         "AS3215 Orange S.A.",
		Timezone:    "Europe/Paris",
	}
	recordV6 := geo.Record{
		IP:          "2001:db8::1",
		Country:     "Germany",
		CountryCode: "DE",
		City:        "Berlin",
	}

	testCases := map[string]struct {
		skipIPv6        bool
		showRaw         bool
		setupFetcher    func(fetcher *mock_summary.MockFetcher)
		setupGeolocator func(geolocator *mock_summary.MockGeolocator)
		stdout          string
		stderr          string
		errWrapped      error
	}{
		"ipv4 only": {
			skipIPv6: true,
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(ipv4, nil)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {
				geolocator.EXPECT().Lookup(gomock.Any(), ipv4).
					Return(recordV4, geo.Raw{"status": "success"}, nil)
			},
			stdout: summaryHeader + tableString(newRow(recordV4)),
		},
		"ipv4 and ipv6": {
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(ipv4, nil)
				fetcher.EXPECT().IP6(gomock.Any()).Return(ipv6, nil)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {
				geolocator.EXPECT().Lookup(gomock.Any(), ipv4).Return(recordV4, nil, nil)
				geolocator.EXPECT().Lookup(gomock.Any(), ipv6).Return(recordV6, nil, nil)
			},
			stdout: summaryHeader + tableString(newRow(recordV4), newRow(recordV6)),
		},
		"ipv6 not found": {
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(ipv4, nil)
				fetcher.EXPECT().IP6(gomock.Any()).Return(netip.Addr{}, errTest)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {
				geolocator.EXPECT().Lookup(gomock.Any(), ipv4).Return(recordV4, nil, nil)
			},
			stdout: summaryHeader + tableString(newRow(recordV4)),
			stderr: "[WARN] failed to fetch IPv6: test error\n" +
				"[INFO] IPv6 address not found (system or network may not have IPv6).\n",
		},
		"no address found": {
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(netip.Addr{}, errTest)
				fetcher.EXPECT().IP6(gomock.Any()).Return(netip.Addr{}, errTest)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {},
			stderr: "[WARN] failed to fetch IPv4: test error\n" +
				"[INFO] IPv4 address not found.\n" +
				"[WARN] failed to fetch IPv6: test error\n" +
				"[INFO] IPv6 address not found (system or network may not have IPv6).\n" +
				"No public IP information available.\n",
			errWrapped: ErrNoInformation,
		},
		"provider failure with raw response": {
			skipIPv6: true,
			showRaw:  true,
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(ipv4, nil)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {
				raw := geo.Raw{"status": "fail", "message": "private range"}
				err := &geo.LookupError{Provider: geo.IPAPI, Message: "private range"}
				geolocator.EXPECT().Lookup(gomock.Any(), ipv4).Return(geo.Record{}, raw, err)
			},
			stdout: "\n[RAW IPv4 RESPONSE]\n" +
				"{\n  \"message\": \"private range\",\n  \"status\": \"fail\"\n}\n" +
				summaryHeader +
				tableString(row{ip: "1.2.3.4", errMessage: "private range"}),
		},
		"provider unavailable": {
			skipIPv6: true,
			setupFetcher: func(fetcher *mock_summary.MockFetcher) {
				fetcher.EXPECT().IP4(gomock.Any()).Return(ipv4, nil)
			},
			setupGeolocator: func(geolocator *mock_summary.MockGeolocator) {
				geolocator.EXPECT().Lookup(gomock.Any(), ipv4).Return(geo.Record{}, nil, errTest)
			},
			stdout: summaryHeader +
				tableString(row{ip: "1.2.3.4", errMessage: "test error"}),
			stderr: "[WARN] geolocation query for IPv4 failed: test error\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			fetcher := mock_summary.NewMockFetcher(ctrl)
			testCase.setupFetcher(fetcher)
			geolocator := mock_summary.NewMockGeolocator(ctrl)
			testCase.setupGeolocator(geolocator)
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)

			summary := New(Settings{
				Fetcher:    fetcher,
				Geolocator: geolocator,
				SkipIPv6:   testCase.skipIPv6,
				ShowRaw:    testCase.showRaw,
				Stdout:     stdout,
				Stderr:     stderr,
			})

			err := summary.Run(context.Background())

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.stdout, stdout.String())
			assert.Equal(t, testCase.stderr, stderr.String())
		})
	}
}
