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

	"github.com/fatih/color"
	"github.com/qdm12/ipconvert/internal/client"
	"github.com/qdm12/ipconvert/internal/menu"
	"github.com/urfave/cli/v3"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	command := &cli.Command{
		Name:    "ipmenu",
		Usage:   "interactive menu to validate, convert and geolocate IP addresses",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Value:   client.DefaultBaseURL,
				Usage:   "base URL of the address API",
				Sources: cli.EnvVars("IPCONVERT_API_URL"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "timeout for each API request",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Writer:    color.Output,
		ErrWriter: color.Error,
		Action:    run,
	}

	err := command.Run(ctx, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	timeout := cmd.Duration("timeout")
	httpClient := &http.Client{Timeout: timeout}
	defer httpClient.CloseIdleConnections()

	apiURL := cmd.String("api-url")
	api := client.New(httpClient, apiURL)

	m := menu.New(menu.Settings{
		API:    api,
		Input:  os.Stdin,
		Output: cmd.Writer,
		Color:  !color.NoColor && !cmd.Bool("no-color"),
	})

	err := m.Run(ctx)
	if errors.Is(err, menu.ErrAPIUnreachable) {
		return fmt.Errorf("%w at %s, make sure the server is running", err, apiURL)
	}
	return err
}
