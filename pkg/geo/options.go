package geo

import (
	"errors"
	"fmt"
	"time"
)

type Option func(s *settings) error

func SetProvider(provider Provider) Option {
	return func(s *settings) (err error) {
		err = ValidateProvider(provider)
		if err != nil {
			return err
		}
		s.provider = provider
		return nil
	}
}

var ErrTimeoutNotPositive = errors.New("timeout is not positive")

func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		if timeout <= 0 {
			return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, timeout)
		}
		s.timeout = timeout
		return nil
	}
}
