package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lodfresh/customer-service/internal/item"
	"github.com/lodfresh/customer-service/internal/item/dto"
	"github.com/lodfresh/customer-service/internal/model"
	"github.com/lodfresh/customer-service/internal/pricelist"
	"github.com/lodfresh/customer-service/pkg/broker"
	"github.com/lodfresh/customer-service/pkg/cache"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type itemUseCase struct {
	repo     item.Repository
	cache    *cache.RedisClient
	producer *broker.KafkaProducer
	logger   logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, cache *cache.RedisClient, producer *broker.KafkaProducer, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   log,
	}
}

func (uc *itemUseCase) ListItems(ctx context.Context) ([]model.Item, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *itemUseCase) SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error) {
	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("item %d not found", id)
	}

	before := it.Available
	if err := uc.repo.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	it.Available = available

	uc.logger.Info("updated item availability",
		zap.Int64("id", id), zap.Bool("before", before), zap.Bool("after", available))

	uc.invalidatePriceList(ctx)
	return it, nil
}

func (uc *itemUseCase) ToggleAvailability(ctx context.Context, id int64) (*model.Item, error) {
	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("item %d not found", id)
	}
	return uc.SetAvailability(ctx, id, !it.Available)
}

func (uc *itemUseCase) PublishCommand(ctx context.Context, action string, id int64, available bool) error {
	if uc.producer == nil {
		return fmt.Errorf("broker not configured")
	}

	cmd := dto.ItemCommand{
		EventID:   uuid.New().String(),
		Action:    action,
		ID:        id,
		Available: available,
	}
	payload, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	uc.logger.Info("publishing item command",
		zap.String("event_id", cmd.EventID), zap.String("action", action), zap.Int64("id", id))
	return uc.producer.Publish(ctx, []byte(fmt.Sprintf("%d", id)), payload)
}

// The compiled price list is derived from availability, so any flip drops it.
func (uc *itemUseCase) invalidatePriceList(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Del(ctx, pricelist.CacheKey); err != nil {
		uc.logger.Warn("failed to invalidate price list cache", zap.Error(err))
	}
}
