package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lodfresh/customer-service/internal/customer"
	"github.com/lodfresh/customer-service/internal/ingest"
	"github.com/lodfresh/customer-service/internal/pricelist"
	"github.com/lodfresh/customer-service/pkg/cache"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type ingestUseCase struct {
	customers customer.Repository
	importer  ingest.ImportRepository
	cache     *cache.RedisClient
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewIngestUseCase(
	customers customer.Repository,
	importer ingest.ImportRepository,
	cache *cache.RedisClient,
	log logger.ZapLogger,
) ingest.UseCase {
	return &ingestUseCase{
		customers: customers,
		importer:  importer,
		cache:     cache,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *ingestUseCase) ImportWorkbook(ctx context.Context, r io.Reader) (*ingest.ImportSummary, error) {
	rows, err := ingest.ReadWorkbook(r)
	if err != nil {
		return nil, err
	}
	return uc.ImportRows(ctx, rows)
}

func (uc *ingestUseCase) ImportRows(ctx context.Context, rows []ingest.Row) (*ingest.ImportSummary, error) {
	batchID := uuid.New().String()

	// 1. Load the persisted customers the reconciler matches against.
	// Items are not loaded: the commit replaces the items table, so the
	// reconciler materializes every sheet item fresh.
	persistedCustomers, err := uc.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	// 2. Two independent passes over the same sheet, one per column set.
	rec := ingest.NewReconciler(persistedCustomers, uc.now())
	rec.Run(ingest.ParseRows(rows, ingest.LeftColumns))
	rec.Run(ingest.ParseRows(rows, ingest.RightColumns))
	batch := rec.Batch()

	// 3. Commit the whole batch or nothing.
	if err := uc.importer.ReplaceAll(ctx, batch); err != nil {
		uc.logger.Error("import failed, previous state kept",
			zap.String("batch_id", batchID), zap.Error(err))
		return nil, fmt.Errorf("import failed: %w", err)
	}

	uc.invalidatePriceList(ctx)

	summary := &ingest.ImportSummary{
		BatchID:      batchID,
		NewCustomers: len(batch.Customers),
		Items:        len(batch.Items),
		Orders:       len(batch.Orders),
		OrderItems:   len(batch.OrderItems),
	}
	uc.logger.Info("import committed",
		zap.String("batch_id", batchID),
		zap.Int("new_customers", summary.NewCustomers),
		zap.Int("items", summary.Items),
		zap.Int("orders", summary.Orders),
		zap.Int("order_items", summary.OrderItems))
	return summary, nil
}

func (uc *ingestUseCase) invalidatePriceList(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Del(ctx, pricelist.CacheKey); err != nil {
		uc.logger.Warn("failed to invalidate price list cache", zap.Error(err))
	}
}
