// Package service implements the validate, convert and geolocate
// operations exposed by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/ipconvert/pkg/address"
	"github.com/qdm12/ipconvert/pkg/geo"
)

var ErrInvalidAddress = errors.New("invalid IP address")

const (
	TypeIPv4          = "IPv4"
	TypeIPv6Mapped    = "IPv6-mapped"
	TypeIPv6NonMapped = "IPv6 (non-mapped)"

	NotConvertibleMessage = "This IPv6 address cannot be converted to IPv4"
)

type Service struct {
	geolocator Geolocator
	logger     Logger
}

func New(geolocator Geolocator, logger Logger) *Service {
	return &Service{
		geolocator: geolocator,
		logger:     logger,
	}
}

type ValidateResult struct {
	Input   string          `json:"input"`
	Valid   bool            `json:"valid"`
	Version address.Version `json:"version"`
}

func (s *Service) Validate(ip string) (result ValidateResult) {
	classification := address.Classify(ip)
	return ValidateResult{
		Input:   ip,
		Valid:   classification.Valid,
		Version: classification.Version,
	}
}

type ConvertResult struct {
	Input       string `json:"input"`
	Type        string `json:"type"`
	ConvertedTo string `json:"converted_to,omitempty"`
	Result      string `json:"result,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Convert converts an IPv4 address to its IPv4-mapped IPv6 form, or an
// IPv4-mapped IPv6 address to its IPv4 form. A non-mapped IPv6 address
// is not an error and gives a result with an explanation message.
func (s *Service) Convert(ip string) (result ConvertResult, err error) {
	conversion, err := address.Convert(ip)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	result.Input = ip
	switch conversion.Direction {
	case address.Mapped:
		result.Type = TypeIPv4
		result.ConvertedTo = TypeIPv6Mapped
		result.Result = conversion.Result
	case address.Extracted:
		result.Type = TypeIPv6Mapped
		result.ConvertedTo = TypeIPv4
		result.Result = conversion.Result
	case address.NotConvertible:
		result.Type = TypeIPv6NonMapped
		result.Message = NotConvertibleMessage
	}
	return result, nil
}

type GeoResult struct {
	IP        string   `json:"ip"`
	Country   string   `json:"country"`
	Region    string   `json:"region"`
	City      string   `json:"city"`
	ISP       string   `json:"isp"`
	Timezone  string   `json:"timezone"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
}

// Geolocate trims and validates the address given and looks up its
// geolocation. Errors from the geolocator are returned as is.
func (s *Service) Geolocate(ctx context.Context, ip string) (result GeoResult, err error) {
	ip = strings.TrimSpace(ip)
	addr, err := address.Parse(ip)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	record, _, err := s.geolocator.Lookup(ctx, addr)
	if err != nil {
		if errors.Is(err, geo.ErrLookupFailed) {
			s.logger.Debug("geolocating " + ip + ": " + err.Error())
		} else {
			s.logger.Warn("geolocating " + ip + ": " + err.Error())
		}
		return result, err
	}

	return GeoResult{
		IP:        record.IP,
		Country:   record.Country,
		Region:    record.Region,
		City:      record.City,
		ISP:       record.ISP,
		Timezone:  record.Timezone,
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
	}, nil
}
