package integrity

import (
	"context"
	"errors"
	"time"

	"asset-uploader/core/reconcile"
	"asset-uploader/core/storage"
	"asset-uploader/feature/integrity/checks"
	"asset-uploader/feature/ledger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrLedgerDisabled is returned by checks that need the upload ledger.
var ErrLedgerDisabled = errors.New("upload ledger is not enabled")

const reconcileCacheTTL = time.Minute

// Service handles integrity checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	db     *gorm.DB
	cache  *reconcile.Cache
}

// NewService creates a new integrity service. db may be nil when the ledger is disabled.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		db:     db,
		cache:  reconcile.NewCache(),
	}
}

// CheckBucket reports whether the upload bucket is reachable.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	report, err := checks.CheckBucket(ctx, s.client, s.cfg.Bucket, s.cfg.KeyPrefix, checks.DefaultPageSize)
	if err != nil {
		s.logger.Warn("Bucket check failed", zap.String("bucket", s.cfg.Bucket), zap.Error(err))
	}
	return report, err
}

// CheckLedger reports the state of the upload ledger.
func (s *Service) CheckLedger(ctx context.Context) *checks.LedgerReport {
	return checks.CheckLedger(ctx, s.db)
}

// Reconcile compares uploads recorded in the ledger with the objects under the key prefix.
// fresh bypasses cached indices.
func (s *Service) Reconcile(ctx context.Context, fresh bool) (*reconcile.Report, error) {
	if s.db == nil {
		return nil, ErrLedgerDisabled
	}

	spec := &reconcile.Spec{Prefix: s.cfg.KeyPrefix, CacheTTL: reconcileCacheTTL}
	if fresh {
		s.cache.Invalidate(spec)
	}

	repo := ledger.NewRepository(s.db)
	report, err := s.cache.Run(ctx, spec,
		reconcile.SourceFunc(repo.UploadedKeys),
		reconcile.StorageSource{Client: s.client, Bucket: s.cfg.Bucket, Prefix: s.cfg.KeyPrefix},
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation finished",
		zap.Int("total", report.Summary.Total),
		zap.Int("missing_storage", report.Summary.MissingStorage),
		zap.Int("untracked", report.Summary.Untracked),
	)
	return report, nil
}
