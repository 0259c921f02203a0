package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/ipconvert/internal/summary"
	"github.com/qdm12/ipconvert/pkg/geo"
	"github.com/qdm12/ipconvert/pkg/publicip"
	"github.com/urfave/cli/v3"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
)

const exitCodeNoInformation = 2

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	command := &cli.Command{
		Name:    "mypublicip",
		Usage:   "show the public IPv4 and IPv6 addresses of this machine and their geolocation",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-ipv6",
				Usage: "skip IPv6 lookup",
			},
			&cli.StringFlag{
				Name:  "provider",
				Value: string(geo.IPAPI),
				Usage: "geolocation provider to use, one of ip-api or ipapi",
				Validator: func(s string) error {
					_, err := geo.ParseProvider(s)
					return err
				},
			},
			&cli.StringSliceFlag{
				Name:  "ip-provider",
				Value: []string{string(publicip.Ipify), string(publicip.Seeip)},
				Usage: "public IP echo services to use in turn, among ipify and seeip",
				Validator: func(names []string) error {
					_, err := parseIPProviders(names)
					return err
				},
			},
			&cli.BoolFlag{
				Name:  "show-raw",
				Usage: "print raw JSON responses",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 6 * time.Second,
				Usage: "timeout for each HTTP request",
			},
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Action:    run,
	}

	err := command.Run(ctx, os.Args)
	switch {
	case err == nil:
	case errors.Is(err, summary.ErrNoInformation):
		os.Exit(exitCodeNoInformation)
	default:
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	timeout := cmd.Duration("timeout")
	httpClient := &http.Client{Timeout: timeout}
	defer httpClient.CloseIdleConnections()

	ipProviders, err := parseIPProviders(cmd.StringSlice("ip-provider"))
	if err != nil {
		return err
	}
	fetcher, err := publicip.New(httpClient,
		publicip.SetProviders(ipProviders[0], ipProviders[1:]...),
		publicip.SetTimeout(timeout))
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	provider, err := geo.ParseProvider(cmd.String("provider"))
	if err != nil {
		return err
	}
	geolocator, err := geo.New(httpClient,
		geo.SetProvider(provider),
		geo.SetTimeout(timeout))
	if err != nil {
		return fmt.Errorf("creating geolocator: %w", err)
	}

	s := summary.New(summary.Settings{
		Fetcher:    fetcher,
		Geolocator: geolocator,
		SkipIPv6:   cmd.Bool("no-ipv6"),
		ShowRaw:    cmd.Bool("show-raw"),
		Stdout:     cmd.Writer,
		Stderr:     cmd.ErrWriter,
	})
	return s.Run(ctx)
}

var errNoIPProvider = errors.New("no public IP provider specified")

func parseIPProviders(names []string) (providers []publicip.Provider, err error) {
	if len(names) == 0 {
		return nil, errNoIPProvider
	}
	providers = make([]publicip.Provider, len(names))
	for i, name := range names {
		providers[i], err = publicip.ParseProvider(name)
		if err != nil {
			return nil, err
		}
	}
	return providers, nil
}
