// Package address classifies IP address literals and converts between
// IPv4 addresses and IPv4-mapped IPv6 addresses (RFC 4291 section 2.5.5.2).
package address
