package publicip

import "time"

type settings struct {
	providers []Provider
	timeout   time.Duration
}

func newDefaultSettings() settings {
	const defaultTimeout = 6 * time.Second
	return settings{
		providers: []Provider{Ipify},
		timeout:   defaultTimeout,
	}
}
