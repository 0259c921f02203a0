package address

import "errors"

var (
	ErrInvalid = errors.New("invalid IP address")
	ErrNotIPv4 = errors.New("not an IPv4 address")
	ErrNotIPv6 = errors.New("not an IPv6 address")
)
