package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"acquiring/internal/config"
	apperr "acquiring/internal/errors"
	"acquiring/internal/logging"
	"acquiring/internal/repositories"
	"acquiring/internal/services/feestructure"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// noCache satisfies the invalidator for a run that never touches redis.
type noCache struct{}

func (noCache) InvalidateMerchants(context.Context, ...string) error { return nil }

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := repositories.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	seedErr := seed(context.Background(), db, logger)

	if err := repositories.Close(db); err != nil {
		logger.Error("Failed to close PostgreSQL connection", zap.Error(err))
	}
	if seedErr != nil {
		logger.Fatal("Fee structure seeding failed", zap.Error(seedErr))
	}
}

// seed creates the default fee structures that do not exist yet.
func seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	structureRepo := repositories.NewFeeStructureRepository(db)
	service := feestructure.NewService(structureRepo, repositories.NewAssignmentRepository(db), noCache{}, logger)

	for _, input := range defaultStructures() {
		existing, err := structureRepo.GetByName(ctx, input.Name)
		if err == nil {
			logger.Info("fee structure already exists", zap.String("name", existing.Name), zap.String("id", existing.ID))
			continue
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("failed to look up fee structure %q: %w", input.Name, err)
		}

		created, err := service.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create fee structure %q: %w", input.Name, err)
		}
		logger.Info("fee structure seeded", zap.String("name", created.Name), zap.String("id", created.ID))
	}
	return nil
}
