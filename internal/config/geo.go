package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ipconvert/pkg/geo"
)

type Geo struct {
	Provider string
	Timeout  time.Duration
}

func (g *Geo) setDefaults() {
	const defaultTimeout = 5 * time.Second
	g.Provider = gosettings.DefaultComparable(g.Provider, string(geo.IPAPI))
	g.Timeout = gosettings.DefaultComparable(g.Timeout, defaultTimeout)
}

func (g Geo) Validate() (err error) {
	err = geo.ValidateProvider(geo.Provider(g.Provider))
	if err != nil {
		return fmt.Errorf("provider: %w", err)
	}

	if g.Timeout <= 0 {
		return fmt.Errorf("%w: %s", geo.ErrTimeoutNotPositive, g.Timeout)
	}

	return nil
}

func (g Geo) String() string {
	return g.toLinesNode().String()
}

func (g Geo) toLinesNode() *gotree.Node {
	node := gotree.New("Geolocation")
	node.Appendf("Provider: %s", g.Provider)
	node.Appendf("HTTP timeout: %s", g.Timeout)
	return node
}

func (g *Geo) read(reader *reader.Reader) (err error) {
	provider := reader.String("GEO_PROVIDER")
	if provider != "" {
		parsed, err := geo.ParseProvider(provider)
		if err != nil {
			return fmt.Errorf("environment variable GEO_PROVIDER: %w", err)
		}
		g.Provider = string(parsed)
	}

	g.Timeout, err = reader.Duration("HTTP_TIMEOUT")
	if err != nil {
		return err
	}

	return nil
}
