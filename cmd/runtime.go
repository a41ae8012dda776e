package cmd

import (
	"fmt"

	"asset-uploader/core/config"
	"asset-uploader/core/database"
	"asset-uploader/core/logger"
	"asset-uploader/core/storage"
	"asset-uploader/feature/ledger"
	"asset-uploader/feature/objects"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
}

// bootstrap loads configuration, builds the logger and the storage client.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.ValidateStorage(); err != nil {
		return nil, err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &runtime{cfg: cfg, logger: logg, store: store}, nil
}

func (r *runtime) objects() *objects.Service {
	return objects.NewService(r.store, r.cfg.Storage, r.logger)
}

// connectLedger opens the optional ledger database. Failures are logged and
// yield a nil db.
func (r *runtime) connectLedger() *gorm.DB {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		if r.cfg.Database.Enabled {
			r.logger.Warn("Optional database connection failed", zap.Error(err))
		}
		return nil
	}

	if err := ledger.NewRepository(db).Migrate(); err != nil {
		r.logger.Warn("Upload ledger migration failed", zap.Error(err))
		return nil
	}
	r.logger.Debug("Connected to upload ledger")
	return db
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}

// requireArg returns the first positional argument or an ErrConfig error with msg.
func requireArg(args []string, msg string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: %s", config.ErrConfig, msg)
	}
	return args[0], nil
}
