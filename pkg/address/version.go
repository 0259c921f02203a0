package address

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the IP version of a classified address.
type Version uint8

const (
	None Version = iota
	V4
	V6
)

func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "none"
	}
}

// MarshalJSON encodes the version label, or null for no version.
func (v Version) MarshalJSON() ([]byte, error) {
	if v == None {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

var ErrVersionUnknown = errors.New("IP version label is unknown")

func (v *Version) UnmarshalJSON(b []byte) (err error) {
	var label *string
	err = json.Unmarshal(b, &label)
	if err != nil {
		return fmt.Errorf("decoding IP version: %w", err)
	}

	switch {
	case label == nil:
		*v = None
	case *label == V4.String():
		*v = V4
	case *label == V6.String():
		*v = V6
	default:
		return fmt.Errorf("%w: %q", ErrVersionUnknown, *label)
	}
	return nil
}
