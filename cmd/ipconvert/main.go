package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/ipconvert/internal/config"
	"github.com/qdm12/ipconvert/internal/health"
	"github.com/qdm12/ipconvert/internal/logclient"
	"github.com/qdm12/ipconvert/internal/models"
	"github.com/qdm12/ipconvert/internal/noop"
	"github.com/qdm12/ipconvert/internal/server"
	"github.com/qdm12/ipconvert/internal/service"
	"github.com/qdm12/ipconvert/pkg/geo"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	exitCode := 1
	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
		exitCode = 0
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
			exitCode = 1
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
		exitCode = 1
	}

	os.Exit(exitCode)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: config.Geo.Timeout}
	defer client.CloseIdleConnections()

	provider := geo.Provider(config.Geo.Provider)
	err = health.CheckHTTP(ctx, client, provider.HomeURL())
	if err != nil {
		logger.Warn("geolocation provider " + string(provider) + " may be unreachable: " + err.Error())
	}

	geoClient := client
	if *config.Logger.Level == log.LevelDebug {
		geoClient = logclient.New(client, logger.New(log.SetComponent("geolocation client")))
	}

	geolocator, err := geo.New(geoClient,
		geo.SetProvider(provider),
		geo.SetTimeout(config.Geo.Timeout))
	if err != nil {
		return fmt.Errorf("creating geolocator: %w", err)
	}

	addressService := service.New(geolocator, logger.New(log.SetComponent("service")))

	server, err := server.New(server.Settings{
		Address:     *config.Server.ListeningAddress,
		CORSEnabled: *config.Server.CORSEnabled,
		Service:     addressService,
		Logger:      logger.New(log.SetComponent("http server")),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	healthServer, err := createHealthServer(client, config, logger)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{server, healthServer},
		ServicesStop:  []goservices.Service{healthServer, server},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	select {
	case <-ctx.Done():
	case err = <-runError:
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "ipconvert",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createHealthServer(client *http.Client, config config.Config,
	logger log.LoggerInterface) (healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	isHealthy := health.MakeIsHealthy(client, *config.Server.ListeningAddress, healthLogger)
	return health.NewServer(*config.Health.ServerAddress, healthLogger, isHealthy)
}
