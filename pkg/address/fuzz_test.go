package address

import (
	"net/netip"
	"testing"
)

func FuzzClassify(f *testing.F) {
	f.Add("8.8.8.8")
	f.Add("2606:4700:4700::1111")
	f.Add("::ffff:139.130.4.5")
	f.Add("999.999.999.999")
	f.Add("fe80::1%eth0")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		classification := Classify(s)
		if !classification.Valid {
			if classification.Version != None {
				t.Fatalf("invalid %q has version %s", s, classification.Version)
			}
			return
		}

		if classification.Version != V4 {
			return
		}

		mapped, err := ToMappedIPv6(s)
		if err != nil {
			t.Fatalf("mapping %q: %s", s, err)
		}
		conversion, err := ToIPv4(mapped)
		if err != nil {
			t.Fatalf("extracting %q: %s", mapped, err)
		}
		// netip normalizes the literal, so compare parsed addresses.
		if netip.MustParseAddr(conversion.Result) != netip.MustParseAddr(s) {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", s, mapped, conversion.Result)
		}
	})
}
