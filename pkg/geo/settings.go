package geo

import "time"

type settings struct {
	provider Provider
	timeout  time.Duration
}

func (s *settings) setDefaults() {
	if s.provider == "" {
		s.provider = IPAPI
	}
	if s.timeout == 0 {
		const defaultTimeout = 5 * time.Second
		s.timeout = defaultTimeout
	}
}
