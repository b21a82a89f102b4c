package etl_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/internal/application/etl"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
	"github.com/jhoicas/ventas-bi/pkg/config"
)

type pipelineFixture struct {
	pipeline *etl.Pipeline
	sales    *fakeSalesRepo
	runs     *fakeRunRepo
	recorder *fakeRecorder
	logs     *bytes.Buffer
}

func newPipelineFixture() *pipelineFixture {
	f := &pipelineFixture{
		sales:    &fakeSalesRepo{},
		runs:     &fakeRunRepo{},
		recorder: newFakeRecorder(),
		logs:     &bytes.Buffer{},
	}
	log := testLogger(f.logs)
	f.pipeline = etl.NewPipeline(etl.PipelineDeps{
		Extractor:   etl.NewExtractor(log, "utf-8"),
		Transformer: etl.NewTransformer(log),
		Loader:      etl.NewLoader(&fakeTxRunner{repo: f.sales}, log, config.LoadModeAppend),
		Runs:        f.runs,
		Recorder:    f.recorder,
		Log:         log,
	})
	return f
}

func TestPipeline_EjecucionCompleta(t *testing.T) {
	f := newPipelineFixture()
	src := writeCSV(t, "product,region,amount,quantity\n"+
		"A,North,10,2\n"+
		"A,North,10,2\n"+
		"B,South,x,1\n")

	run := f.pipeline.Run(context.Background(), src)

	require.NotNil(t, run)
	assert.Equal(t, entity.ETLRunSucceeded, run.Status)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 3, run.Extracted)
	assert.Equal(t, 2, run.Transformed)
	assert.Equal(t, 2, run.Loaded)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))

	require.Len(t, f.sales.records, 2)
	assert.Equal(t, "20", f.sales.records[0].TotalValue.String())
	assert.True(t, f.sales.records[1].Amount.IsZero())

	require.Len(t, f.runs.saved, 1)
	assert.Equal(t, map[string]int{etl.StageExtract: 3, etl.StageTransform: 2, etl.StageLoad: 2}, f.recorder.stages)
	assert.Equal(t, []string{entity.ETLRunSucceeded}, f.recorder.runs)
}

func TestPipeline_ArchivoInexistente_FallaSinPanico(t *testing.T) {
	f := newPipelineFixture()

	var run *entity.ETLRun
	assert.NotPanics(t, func() {
		run = f.pipeline.Run(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	})

	require.NotNil(t, run)
	assert.True(t, run.Failed())
	assert.Contains(t, run.Error, "no encontrado")
	assert.Zero(t, run.Loaded)
	assert.Empty(t, f.sales.records)
	require.Len(t, f.runs.saved, 1)
	assert.Equal(t, []string{entity.ETLRunFailed}, f.recorder.runs)
	assert.Contains(t, f.logs.String(), "archivo no encontrado")
}

func TestPipeline_FallaEnTransformacion(t *testing.T) {
	f := newPipelineFixture()

	run := f.pipeline.Run(context.Background(), writeCSV(t, "product,region\nA,North\n"))

	assert.True(t, run.Failed())
	assert.Equal(t, 1, run.Extracted)
	assert.Zero(t, run.Transformed)
	assert.Empty(t, f.sales.records)
}

func TestPipeline_SoloCabecera_CargaCeroRegistros(t *testing.T) {
	f := newPipelineFixture()

	run := f.pipeline.Run(context.Background(), writeCSV(t, "product,region,amount,quantity,date\n"))

	require.NotNil(t, run)
	assert.Equal(t, entity.ETLRunSucceeded, run.Status)
	assert.Zero(t, run.Extracted)
	assert.Zero(t, run.Transformed)
	assert.Zero(t, run.Loaded)
	assert.Empty(t, f.sales.records)
	assert.Equal(t, []string{entity.ETLRunSucceeded}, f.recorder.runs)
}
