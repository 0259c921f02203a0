package address

import (
	"fmt"
	"net/netip"
)

// Direction describes which way a conversion went.
type Direction uint8

const (
	// NotConvertible is for a valid IPv6 address which is not
	// an IPv4-mapped IPv6 address.
	NotConvertible Direction = iota
	// Mapped is for an IPv4 address converted to its IPv4-mapped
	// IPv6 form.
	Mapped
	// Extracted is for an IPv4-mapped IPv6 address converted
	// to the IPv4 address it embeds.
	Extracted
)

func (d Direction) String() string {
	switch d {
	case Mapped:
		return "mapped"
	case Extracted:
		return "extracted"
	default:
		return "not convertible"
	}
}

// Conversion is the outcome of converting an address.
// Result is empty when Direction is NotConvertible.
type Conversion struct {
	Direction Direction
	Result    string
}

// OK returns true if the conversion produced a result.
func (c Conversion) OK() bool {
	return c.Direction != NotConvertible
}

// ToMappedIPv6 returns the IPv4-mapped IPv6 form ::ffff:a.b.c.d of
// the IPv4 literal given. It returns an error if ipv4 is not a valid
// IPv4 literal.
func ToMappedIPv6(ipv4 string) (mapped string, err error) {
	addr, err := Parse(ipv4)
	if err != nil {
		return "", err
	}
	if !addr.Is4() {
		return "", fmt.Errorf("%w: %s", ErrNotIPv4, addr)
	}
	return mapAddr(addr).String(), nil
}

// ToIPv4 extracts the IPv4 address embedded in an IPv4-mapped IPv6
// literal, that is an address with its upper 80 bits set to zero and
// bits 80 to 95 set to one. Any other valid IPv6 address, including the
// deprecated IPv4-compatible form ::a.b.c.d, gives a NotConvertible
// conversion. It returns an error if ipv6 is not a valid IPv6 literal.
func ToIPv4(ipv6 string) (conversion Conversion, err error) {
	addr, err := Parse(ipv6)
	if err != nil {
		return conversion, err
	}
	if addr.Is4() {
		return conversion, fmt.Errorf("%w: %s", ErrNotIPv6, addr)
	}
	return unmapAddr(addr), nil
}

// Convert classifies the input and converts it in the direction
// matching its IP version.
func Convert(input string) (conversion Conversion, err error) {
	addr, err := Parse(input)
	if err != nil {
		return conversion, err
	}

	if addr.Is4() {
		return Conversion{
			Direction: Mapped,
			Result:    mapAddr(addr).String(),
		}, nil
	}
	return unmapAddr(addr), nil
}

func mapAddr(ipv4 netip.Addr) (mapped netip.Addr) {
	return netip.AddrFrom16(ipv4.As16())
}

func unmapAddr(ipv6 netip.Addr) (conversion Conversion) {
	if !ipv6.Is4In6() {
		return Conversion{Direction: NotConvertible}
	}
	return Conversion{
		Direction: Extracted,
		Result:    ipv6.Unmap().String(),
	}
}
