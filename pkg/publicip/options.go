package publicip

import (
	"errors"
	"fmt"
	"time"
)

type Option func(s *settings) error

// SetProviders sets the echo services to use, each call
// using the next provider in turn.
func SetProviders(first Provider, providers ...Provider) Option {
	providers = append([]Provider{first}, providers...)
	return func(s *settings) (err error) {
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
		}
		s.providers = providers
		return nil
	}
}

var ErrTimeoutNotPositive = errors.New("timeout is not positive")

// SetTimeout sets the timeout of each public IP request.
func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		if timeout <= 0 {
			return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, timeout)
		}
		s.timeout = timeout
		return nil
	}
}
