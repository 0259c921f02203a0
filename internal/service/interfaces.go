package service

import (
	"context"
	"net/netip"

	"github.com/qdm12/ipconvert/pkg/geo"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Geolocator,Logger

type Geolocator interface {
	Lookup(ctx context.Context, ip netip.Addr) (record geo.Record, raw geo.Raw, err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
