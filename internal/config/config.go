// Package config reads, defaults and validates the settings
// of the address API server.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Server Server
	Geo    Geo
	Health Health
	Logger Logger
}

func (c *Config) SetDefaults() {
	c.Server.setDefaults()
	c.Geo.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"server":      &c.Server,
		"geolocation": &c.Geo,
		"health":      &c.Health,
		"logger":      &c.Logger,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Geo.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	err = c.Geo.read(reader)
	if err != nil {
		return fmt.Errorf("reading geolocation settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
