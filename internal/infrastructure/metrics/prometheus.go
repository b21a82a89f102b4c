// Package metrics expone las métricas del ETL y del dashboard en formato Prometheus.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/etl"
)

const namespace = "ventas_bi"

var (
	_ etl.Recorder            = (*Metrics)(nil)
	_ analytics.QueryRecorder = (*Metrics)(nil)
)

// Metrics agrupa los colectores en un registro propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	stageRecords *prometheus.CounterVec
	runs         *prometheus.CounterVec
	runDuration  prometheus.Histogram
	queries      *prometheus.CounterVec
	queryRows    prometheus.Gauge
}

// New registra los colectores. withRuntime agrega los de proceso y Go runtime.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stageRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "etl",
			Name:      "stage_records_total",
			Help:      "Registros procesados por etapa del ETL.",
		}, []string{"stage"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "etl",
			Name:      "runs_total",
			Help:      "Ejecuciones del ETL por estado final.",
		}, []string{"status"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "etl",
			Name:      "run_duration_seconds",
			Help:      "Duración de cada ejecución del ETL.",
			Buckets:   prometheus.DefBuckets,
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "queries_total",
			Help:      "Consultas del dashboard a sales_data por resultado.",
		}, []string{"result"}),
		queryRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "last_query_rows",
			Help:      "Filas devueltas por la última consulta exitosa.",
		}),
	}
	m.registry.MustRegister(m.stageRecords, m.runs, m.runDuration, m.queries, m.queryRows)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// ObserveStage suma los registros que produjo una etapa.
func (m *Metrics) ObserveStage(stage string, records int) {
	m.stageRecords.WithLabelValues(stage).Add(float64(records))
}

// ObserveRun cuenta la ejecución y registra su duración.
func (m *Metrics) ObserveRun(status string, elapsed time.Duration) {
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(elapsed.Seconds())
}

// ObserveQuery cuenta la consulta; si fue exitosa actualiza las filas devueltas.
func (m *Metrics) ObserveQuery(ok bool, rows int) {
	if !ok {
		m.queries.WithLabelValues("error").Inc()
		return
	}
	m.queries.WithLabelValues("ok").Inc()
	m.queryRows.Set(float64(rows))
}

// Registry devuelve el registro para pruebas o para exponerlo por otro medio.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve el registro en formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Push publica el registro en un Pushgateway bajo el job indicado (procesos batch como el ETL).
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push de métricas a %s: %w", url, err)
	}
	return nil
}
