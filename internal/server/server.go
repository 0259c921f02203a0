// Package server exposes the address operations over HTTP.
package server

import (
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address     string
	CORSEnabled bool
	Service     Service
	Logger      Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	name := "http"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(settings.Service, settings.Logger, settings.CORSEnabled),
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
