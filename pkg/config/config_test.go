package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-bi/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:8050", cfg.HTTP.Addr())
	assert.Equal(t, "sales_data.csv", cfg.ETL.Source)
	assert.Equal(t, config.LoadModeAppend, cfg.ETL.LoadMode)
	assert.Equal(t, "postgres://postgres:@localhost:5432/analytics?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("HTTP_PORT", "9000")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestFromViper_PasswordConCaracteresEspeciales(t *testing.T) {
	v := viper.New()
	v.Set("DB_PASSWORD", "p@ss:word")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword")
}

func TestFromViper_ModoDeCargaInvalido(t *testing.T) {
	v := viper.New()
	v.Set("ETL_LOAD_MODE", "upsert")

	_, err := config.FromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoadMode")
}

func TestFromViper_CodificacionInvalida(t *testing.T) {
	v := viper.New()
	v.Set("ETL_ENCODING", "utf-16")

	_, err := config.FromViper(v)
	require.Error(t, err)
}

func TestFromViper_PushgatewayURL(t *testing.T) {
	v := viper.New()
	v.Set("ETL_PUSHGATEWAY_URL", "no es una url")

	_, err := config.FromViper(v)
	require.Error(t, err)

	v.Set("ETL_PUSHGATEWAY_URL", "http://localhost:9091")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9091", cfg.ETL.PushgatewayURL)
}
