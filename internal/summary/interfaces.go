package summary

import (
	"context"
	"net/netip"

	"github.com/qdm12/ipconvert/pkg/geo"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Geolocator

type Fetcher interface {
	IP4(ctx context.Context) (ipv4 netip.Addr, err error)
	IP6(ctx context.Context) (ipv6 netip.Addr, err error)
}

type Geolocator interface {
	Lookup(ctx context.Context, ip netip.Addr) (record geo.Record, raw geo.Raw, err error)
}
