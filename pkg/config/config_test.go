package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "gundogdu_tekstil", cfg.DB.DBName)
	assert.Equal(t, 10*time.Second, cfg.Fulfillment.TxTimeout)
	assert.Equal(t, 5*time.Second, cfg.Fulfillment.LockTimeout)
	assert.Equal(t, 7, cfg.Procurement.DeliveryLeadBusinessDays)
	assert.Equal(t, "F01", cfg.Login.FactoryCode)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("FULFILLMENT_TX_TIMEOUT", "30s")
	t.Setenv("FULFILLMENT_LOCK_TIMEOUT", "2")
	t.Setenv("DELIVERY_LEAD_BUSINESS_DAYS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Fulfillment.TxTimeout)
	assert.Equal(t, 2*time.Second, cfg.Fulfillment.LockTimeout)
	assert.Equal(t, 5, cfg.Procurement.DeliveryLeadBusinessDays)
}

func TestLoad_ProduccionSinSecretFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_LockTimeoutMayorQueTx(t *testing.T) {
	cfg := &Config{
		App:         AppConfig{Env: "development"},
		Fulfillment: FulfillmentConfig{TxTimeout: time.Second, LockTimeout: 2 * time.Second},
	}
	assert.Error(t, cfg.Validate())
}

func TestDSN_EscapaContraseña(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/x?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
