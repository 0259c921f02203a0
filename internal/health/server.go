package health

import (
	"github.com/qdm12/goservices/httpserver"
)

// NewServer returns the healthcheck server answering on address
// with the result of isHealthy.
func NewServer(address string, logger Logger, isHealthy func() error) (
	server *httpserver.Server, err error) {
	name := "healthcheck"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(isHealthy),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
