package publicip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/ipconvert/pkg/address"
)

type Provider string

const (
	Ipify Provider = "ipify"
	Seeip Provider = "seeip"
)

func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Seeip,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

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

func (provider Provider) url(version address.Version) (url string) {
	switch version {
	case address.V4:
		switch provider {
		case Ipify:
			return "https://api.ipify.org?format=json"
		case Seeip:
			return "https://ipv4.seeip.org/jsonip"
		}
	case address.V6:
		switch provider {
		case Ipify:
			return "https://api6.ipify.org?format=json"
		case Seeip:
			return "https://ipv6.seeip.org/jsonip"
		}
	}
	panic(fmt.Sprintf("provider %s not implemented for %s", provider, version))
}
