package etl_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/internal/application/etl"
	"github.com/jhoicas/ventas-bi/internal/domain"
)

func transform(t *testing.T, df *dataframe.DataFrame) *dataframe.DataFrame {
	t.Helper()
	var buf bytes.Buffer
	out, err := etl.NewTransformer(testLogger(&buf)).Transform(context.Background(), df)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func TestTransform_DuplicadosSobreviveUno(t *testing.T) {
	in := extract(t, "product,region,amount,quantity\n"+
		"A,North,10,2\n"+
		"A,North,10,2\n"+
		"A,North,10,2\n"+
		"B,South,5,1\n")

	out := transform(t, in)

	require.Equal(t, 2, out.Nrow())
	assert.Equal(t, []string{"A", "B"}, out.Col("product").Records())
}

func TestTransform_CoercionYRellenoConCero(t *testing.T) {
	in := extract(t, "product,region,amount,quantity\n"+
		"A,North,abc,3\n"+
		"B,,7.5,\n")

	out := transform(t, in)

	assert.Equal(t, []float64{0, 7.5}, out.Col("amount").Float())
	assert.Equal(t, []float64{3, 0}, out.Col("quantity").Float())
	// el relleno aplica a todas las columnas, no solo a las numéricas
	assert.Equal(t, []string{"North", "0"}, out.Col("region").Records())
}

func TestTransform_TotalValueEsAmountPorQuantity(t *testing.T) {
	in := extract(t, "product,amount,quantity\n"+
		"A,10,2\n"+
		"B,0,5\n"+
		"C,3.25,0\n"+
		"D,19.99,3\n")

	out := transform(t, in)

	amounts := out.Col("amount").Float()
	quantities := out.Col("quantity").Float()
	totals := out.Col("total_value").Float()
	require.Len(t, totals, 4)
	for i := range totals {
		assert.Equal(t, amounts[i]*quantities[i], totals[i], "fila %d", i)
	}
	assert.Equal(t, 0.0, totals[1])
	assert.Equal(t, 0.0, totals[2])
}

func TestTransform_ReemplazaTotalValueExistente(t *testing.T) {
	in := extract(t, "product,amount,quantity,total_value\nA,2,3,999\n")

	out := transform(t, in)

	assert.Equal(t, []float64{6}, out.Col("total_value").Float())
	assert.Equal(t, 4, out.Ncol())
}

func TestTransform_IdempotenteSobreEntradaLimpia(t *testing.T) {
	in := extract(t, "product,region,amount,quantity\n"+
		"A,North,10,2\n"+
		"B,South,20.5,1\n"+
		"C,East,0,4\n"+
		"D,North,1.0000001,1\n"+
		"D,North,1.0000002,1\n"+
		"E,South,0.0000004,3\n")

	once := transform(t, in)
	twice := transform(t, once)

	require.Equal(t, 6, once.Nrow())
	assert.Equal(t, once.Nrow(), twice.Nrow())
	assert.Equal(t, once.Col("amount").Float(), twice.Col("amount").Float())
	assert.Equal(t, once.Col("quantity").Float(), twice.Col("quantity").Float())
	assert.Equal(t, once.Col("total_value").Float(), twice.Col("total_value").Float())
	assert.Equal(t, once.Col("product").Records(), twice.Col("product").Records())
	assert.Equal(t, []float64{10, 20.5, 0, 1.0000001, 1.0000002, 0.0000004}, twice.Col("amount").Float())
}

func TestTransform_DuplicadosPorValorNumerico(t *testing.T) {
	in := extract(t, "product,region,amount,quantity\n"+
		"A,North,10,2\n"+
		"A,North,10.0,2.00\n"+
		"A,North,abc,2\n"+
		"A,North,xyz,2\n")

	out := transform(t, in)

	// "10" y "10.0" son la misma venta; lo no numérico se compara por su texto
	require.Equal(t, 3, out.Nrow())
	assert.Equal(t, []float64{10, 0, 0}, out.Col("amount").Float())
}

func TestTransform_TablaSinFilas(t *testing.T) {
	var buf bytes.Buffer
	in := extract(t, "product,region,amount,quantity\n")

	out, err := etl.NewTransformer(testLogger(&buf)).Transform(context.Background(), in)

	require.NoError(t, err)
	assert.Zero(t, out.Nrow())
	assert.Equal(t, []string{"product", "region", "amount", "quantity", "total_value"}, out.Names())
	assert.Contains(t, buf.String(), "registros transformados")
}

func TestTransform_NoModificaLaEntrada(t *testing.T) {
	in := extract(t, "product,amount,quantity\nA,x,1\nA,x,1\n")
	before := in.Records()

	transform(t, in)

	assert.Equal(t, before, in.Records())
}

func TestTransform_ColumnaFaltante_DevuelveNil(t *testing.T) {
	var buf bytes.Buffer
	in := extract(t, "product,amount\nA,1\n")

	out, err := etl.NewTransformer(testLogger(&buf)).Transform(context.Background(), in)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestTransform_EntradaNil(t *testing.T) {
	var buf bytes.Buffer
	out, err := etl.NewTransformer(testLogger(&buf)).Transform(context.Background(), nil)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
