// seed_defaults prepara una base recién migrada: crea las reglas de premios por defecto
// si la tabla está vacía y asigna una contraseña a los clientes que no tienen hash.
//
// Uso: go run ./cmd/seed_defaults [contraseña]
// Sin argumento usa SEED_CUSTOMER_PASSWORD o, si tampoco existe, "123456".
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/tekstil-api/internal/application/personnel"
	"github.com/jhoicas/tekstil-api/internal/application/sales"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tekstil-api/pkg/config"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

const fallbackPassword = "123456"

func main() {
	password := fallbackPassword
	if v := os.Getenv("SEED_CUSTOMER_PASSWORD"); v != "" {
		password = v
	}
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: cfg.App.Name}).Component("seed_defaults")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	personnelUC := personnel.NewUseCase(postgres.NewPersonnelRepository(pool), postgres.NewRewardRuleRepository(pool))
	rules, err := personnelUC.EnsureDefaultRules(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reglas de premios por defecto")
	}

	salesUC := sales.NewUseCase(
		postgres.NewTxRunner(pool, cfg.Fulfillment.LockTimeout),
		postgres.NewCustomerRepository(pool),
		postgres.NewCustomerOrderRepository(pool),
		postgres.NewProductRepository(pool),
		nil,
	)
	customers, err := salesUC.SetMissingPasswords(ctx, password)
	if err != nil {
		log.Fatal().Err(err).Msg("contraseñas de clientes")
	}

	log.Info().Int("rules", rules).Int("customers", customers).Msg("datos por defecto aplicados")
	fmt.Printf("Reglas creadas: %d, clientes con contraseña nueva: %d\n", rules, customers)
}
