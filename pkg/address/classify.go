package address

import (
	"fmt"
	"net/netip"
)

// Classification is the result of parsing an address string.
type Classification struct {
	Valid   bool
	Version Version
}

// Classify parses input as an IPv4 or IPv6 literal. Any parse failure,
// including IPv4 octets with leading zeros and IPv6 zone identifiers,
// results in an invalid classification. An IPv4-mapped IPv6 literal
// such as ::ffff:1.2.3.4 is classified as IPv6.
func Classify(input string) Classification {
	addr, err := Parse(input)
	if err != nil {
		return Classification{}
	}
	return Classification{
		Valid:   true,
		Version: versionOf(addr),
	}
}

// Parse parses s as an IP address literal, rejecting zone identifiers.
func Parse(s string) (addr netip.Addr, err error) {
	addr, err = netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if zone := addr.Zone(); zone != "" {
		return netip.Addr{}, fmt.Errorf("%w: zone identifier %q is not supported",
			ErrInvalid, zone)
	}

	return addr, nil
}

func versionOf(addr netip.Addr) Version {
	if addr.Is4() {
		return V4
	}
	return V6
}
