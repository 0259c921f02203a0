// Package summary finds the public IP addresses of the machine,
// geolocates them and prints them as a table.
package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/netip"

	"github.com/qdm12/ipconvert/pkg/address"
	"github.com/qdm12/ipconvert/pkg/geo"
	"golang.org/x/sync/errgroup"
)

var ErrNoInformation = errors.New("no public IP information available")

type Settings struct {
	Fetcher    Fetcher
	Geolocator Geolocator
	// SkipIPv6 disables the IPv6 lookup.
	SkipIPv6 bool
	// ShowRaw prints the raw provider responses.
	ShowRaw bool
	Stdout  io.Writer
	Stderr  io.Writer
}

type Summary struct {
	fetcher    Fetcher
	geolocator Geolocator
	skipIPv6   bool
	showRaw    bool
	stdout     io.Writer
	stderr     io.Writer
}

func New(settings Settings) *Summary {
	return &Summary{
		fetcher:    settings.Fetcher,
		geolocator: settings.Geolocator,
		skipIPv6:   settings.SkipIPv6,
		showRaw:    settings.ShowRaw,
		stdout:     settings.Stdout,
		stderr:     settings.Stderr,
	}
}

type lookup struct {
	version   address.Version
	ip        netip.Addr
	fetchErr  error
	record    geo.Record
	raw       geo.Raw
	lookupErr error
}

// Run looks up the public IPv4 and IPv6 addresses concurrently and
// prints the summary table, with the IPv4 row first.
// It returns ErrNoInformation if no public address could be found.
func (s *Summary) Run(ctx context.Context) error {
	versions := []address.Version{address.V4}
	if !s.skipIPv6 {
		versions = append(versions, address.V6)
	}

	lookups := make([]lookup, len(versions))
	var group errgroup.Group
	for i, version := range versions {
		group.Go(func() error {
			lookups[i] = s.lookup(ctx, version)
			return nil
		})
	}
	_ = group.Wait() // lookup failures are reported per row

	rows := make([]row, 0, len(lookups))
	for _, lookup := range lookups {
		row, ok := s.report(lookup)
		if ok {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		fmt.Fprintln(s.stderr, "No public IP information available.")
		return ErrNoInformation
	}

	fmt.Fprint(s.stdout, "\n=== Public IP Address Summary ===\n\n")
	writeTable(s.stdout, rows)
	return nil
}

func (s *Summary) lookup(ctx context.Context, version address.Version) (result lookup) {
	result.version = version
	fetch := s.fetcher.IP4
	if version == address.V6 {
		fetch = s.fetcher.IP6
	}

	result.ip, result.fetchErr = fetch(ctx)
	if result.fetchErr != nil {
		return result
	}

	result.record, result.raw, result.lookupErr = s.geolocator.Lookup(ctx, result.ip)
	return result
}

// report prints the diagnostic lines for the lookup given and returns
// its table row, if any.
func (s *Summary) report(result lookup) (r row, ok bool) {
	if result.fetchErr != nil {
		fmt.Fprintf(s.stderr, "[WARN] failed to fetch %s: %s\n", result.version, result.fetchErr)
	}

	if !result.ip.IsValid() {
		switch result.version {
		case address.V6:
			fmt.Fprintln(s.stderr, "[INFO] IPv6 address not found (system or network may not have IPv6).")
		default:
			fmt.Fprintf(s.stderr, "[INFO] %s address not found.\n", result.version)
		}
		return r, false
	}

	if s.showRaw && result.raw != nil {
		s.printRaw(result.version, result.raw)
	}

	if result.lookupErr != nil {
		var lookupErr *geo.LookupError
		if errors.As(result.lookupErr, &lookupErr) {
			return row{ip: result.ip.String(), errMessage: lookupErr.Message}, true
		}
		fmt.Fprintf(s.stderr, "[WARN] geolocation query for %s failed: %s\n",
			result.version, result.lookupErr)
		return row{ip: result.ip.String(), errMessage: result.lookupErr.Error()}, true
	}

	return newRow(result.record), true
}

func (s *Summary) printRaw(version address.Version, raw geo.Raw) {
	b, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		fmt.Fprintf(s.stderr, "[WARN] encoding raw %s response: %s\n", version, err)
		return
	}
	fmt.Fprintf(s.stdout, "\n[RAW %s RESPONSE]\n%s\n", version, b)
}
