package server

import (
	"context"

	"github.com/qdm12/ipconvert/internal/service"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Service,Logger

type Service interface {
	Validate(ip string) (result service.ValidateResult)
	Convert(ip string) (result service.ConvertResult, err error)
	Geolocate(ctx context.Context, ip string) (result service.GeoResult, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
