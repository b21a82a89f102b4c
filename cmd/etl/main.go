// Command etl carga el CSV de ventas en la tabla sales_data (Extract → Transform → Load).
//
// Uso: etl [ruta.csv]. Sin argumento usa ETL_SOURCE (por defecto sales_data.csv).
// Termina con código 1 si la ejecución falla.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/ventas-bi/internal/application/etl"
	"github.com/jhoicas/ventas-bi/internal/infrastructure/metrics"
	"github.com/jhoicas/ventas-bi/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-bi/pkg/config"
	"github.com/jhoicas/ventas-bi/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	source := cfg.ETL.Source
	if len(os.Args) > 1 && os.Args[1] != "" {
		source = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return 1
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Error().Err(err).Msg("aplicar esquema")
		return 1
	}

	m := metrics.New(false)
	pipeline := etl.NewPipeline(etl.PipelineDeps{
		Extractor:   etl.NewExtractor(log.Component("extractor"), cfg.ETL.Encoding),
		Transformer: etl.NewTransformer(log.Component("transformer")),
		Loader:      etl.NewLoader(postgres.NewTxRunner(pool), log.Component("loader"), cfg.ETL.LoadMode),
		Runs:        postgres.NewETLRunRepository(pool),
		Recorder:    m,
		Log:         log.Component("pipeline"),
	})

	result := pipeline.Run(ctx, source)

	if cfg.ETL.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := m.Push(pushCtx, cfg.ETL.PushgatewayURL, "ventas_bi_etl"); err != nil {
			log.Warn().Err(err).Msg("no se pudieron publicar las métricas")
		}
		cancel()
	}

	if result.Failed() {
		return 1
	}
	return 0
}
