package geo

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

type Provider string

const (
	IPAPI   Provider = "ip-api"
	IPAPICo Provider = "ipapi"
)

func ListProviders() []Provider {
	return []Provider{
		IPAPI,
		IPAPICo,
	}
}

var ErrUnknownProvider = errors.New("unknown provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

// ParseProvider parses a provider name case insensitively.
func ParseProvider(s string) (provider Provider, err error) {
	provider = Provider(strings.ToLower(strings.TrimSpace(s)))
	err = ValidateProvider(provider)
	if err != nil {
		return "", err
	}
	return provider, nil
}

const ipAPIFields = "status,message,query,country,countryCode," +
	"regionName,city,isp,as,timezone,lat,lon"

func (p Provider) url(ip netip.Addr) string {
	switch p {
	case IPAPI:
		return "http://ip-api.com/json/" + ip.String() + "?fields=" + ipAPIFields
	case IPAPICo:
		return "https://ipapi.co/" + ip.String() + "/json/"
	default:
		panic(fmt.Sprintf("provider %s not implemented", p))
	}
}

// HomeURL returns the home page URL of the provider.
func (p Provider) HomeURL() string {
	switch p {
	case IPAPI:
		return "http://ip-api.com/"
	case IPAPICo:
		return "https://ipapi.co/"
	default:
		panic(fmt.Sprintf("provider %s not implemented", p))
	}
}
