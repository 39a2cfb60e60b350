// Command seed fills an empty VIP Motors database with the sample catalog,
// an administrator and a demo user.
package main

import (
	"context"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/models"

	"github.com/caarlos0/env/v11"
)

// seedConfig is read from the environment only: the command line belongs to
// the shared server configuration.
type seedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@vipmotors.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"vip123"`
}

func main() {
	log := logger.NewLogger("vip-motors-seed")

	var seedCfg seedConfig
	if err := env.Parse(&seedCfg); err != nil {
		log.Fatal().Err(err).Msg("error reading seed settings")
	}
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	hasher := crypto.NewBcryptPool(cfg.Auth.BcryptCost, cfg.Workers.HashPoolSize)
	go func() {
		_ = hasher.Run(ctx)
	}()

	cars, err := loadHypercars()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading sample data")
	}

	admin := seedAccount{
		FirstName: "Admin",
		LastName:  "User",
		Email:     seedCfg.AdminEmail,
		Phone:     "+1234567890",
		Password:  seedCfg.AdminPassword,
		Role:      models.RoleAdmin,
	}
	demo := seedAccount{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "password123",
		Role:      models.RoleUser,
	}

	if err = newSeeder(storages, hasher, log).seed(ctx, cars, admin, demo); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return
	}

	log.Info().Str("admin_email", admin.Email).Msg("database seeded successfully")
}
