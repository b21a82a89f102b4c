package etl_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/internal/application/etl"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testLogger devuelve un logger JSON que escribe en buf para poder inspeccionar los mensajes.
func testLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// writeCSV escribe content en un archivo temporal y devuelve su ruta.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// extract carga content con el Extractor real (utf-8).
func extract(t *testing.T, content string) *dataframe.DataFrame {
	t.Helper()
	var buf bytes.Buffer
	df, err := etl.NewExtractor(testLogger(&buf), "utf-8").Extract(context.Background(), writeCSV(t, content))
	require.NoError(t, err)
	require.NotNil(t, df)
	return df
}

// fakeSalesRepo repositorio en memoria que registra las llamadas.
type fakeSalesRepo struct {
	records   []entity.SalesRecord
	truncated bool
	insertErr error
}

func (f *fakeSalesRepo) InsertBatch(_ context.Context, records []entity.SalesRecord) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.records = append(f.records, records...)
	return len(records), nil
}

func (f *fakeSalesRepo) Truncate(context.Context) error {
	f.truncated = true
	f.records = nil
	return nil
}

func (f *fakeSalesRepo) FetchSales(context.Context) ([]entity.SalesRow, error) {
	rows := make([]entity.SalesRow, 0, len(f.records))
	for _, r := range f.records {
		rows = append(rows, entity.SalesRow{Region: r.Region, Amount: r.Amount, Quantity: r.Quantity})
	}
	return rows, nil
}

// fakeTxRunner ejecuta fn directamente sobre el repositorio en memoria.
type fakeTxRunner struct {
	repo  *fakeSalesRepo
	calls int
}

func (f *fakeTxRunner) RunSales(_ context.Context, fn func(repo repository.SalesRepository) error) error {
	f.calls++
	return fn(f.repo)
}

// fakeRunRepo guarda las ejecuciones recibidas.
type fakeRunRepo struct {
	saved []*entity.ETLRun
}

func (f *fakeRunRepo) Save(_ context.Context, run *entity.ETLRun) error {
	f.saved = append(f.saved, run)
	return nil
}

// fakeRecorder acumula las métricas observadas.
type fakeRecorder struct {
	stages map[string]int
	runs   []string
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{stages: map[string]int{}}
}

func (f *fakeRecorder) ObserveStage(stage string, records int) { f.stages[stage] += records }
func (f *fakeRecorder) ObserveRun(status string, _ time.Duration) {
	f.runs = append(f.runs, status)
}
