package menu

import (
	"context"

	"github.com/qdm12/ipconvert/internal/service"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . API

type API interface {
	Ping(ctx context.Context) (message string, err error)
	Validate(ctx context.Context, ip string) (result service.ValidateResult, err error)
	Convert(ctx context.Context, ip string) (result service.ConvertResult, err error)
	Geolocate(ctx context.Context, ip string) (result service.GeoResult, err error)
}
