package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/backedfi/fiat-bridge/internal/api"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/config"
	"github.com/backedfi/fiat-bridge/internal/db"
	dbmodel "github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/observability/tracing"
	"github.com/backedfi/fiat-bridge/internal/queue"
	"github.com/backedfi/fiat-bridge/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the fiat bridge server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	queueManager := queue.NewQueueManager(&cfg.Queue)
	if err := queueManager.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start queue manager")
	}
	defer func() {
		if err := queueManager.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop queue manager")
		}
	}()

	var ledgerClient ledgerclient.LedgerInterface
	ledgerClient = ledgerclient.NewClient(&cfg.Ledger)
	ledgerClient = ledgerclient.NewLedgerClientWithMetrics(ledgerClient)

	service := services.NewService(cfg, dbClient, ledgerClient, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	server := api.New(ctx, cfg, service)
	return server.Start()
}
