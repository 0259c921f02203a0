// Package noop provides a service doing nothing, used in place
// of a disabled service.
package noop

import "context"

type Service struct {
	name string
}

func New(name string) *Service {
	return &Service{
		name: name,
	}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

func (s *Service) Start(_ context.Context) (runError <-chan error, err error) {
	return nil, nil
}

func (s *Service) Stop() (err error) {
	return nil
}
