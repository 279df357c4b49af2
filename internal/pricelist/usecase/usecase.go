package usecase

import (
	"context"
	"time"

	"github.com/lodfresh/customer-service/internal/item"
	"github.com/lodfresh/customer-service/internal/pricelist"
	"github.com/lodfresh/customer-service/pkg/cache"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

// Notifier is the outbound channel the compiled list is pushed to.
type Notifier interface {
	SendMessage(ctx context.Context, message string) error
}

type priceListUseCase struct {
	items    item.Repository
	rules    pricelist.RuleSet
	cache    *cache.RedisClient
	cacheTTL time.Duration
	notifier Notifier
	logger   logger.ZapLogger
}

func NewPriceListUseCase(
	items item.Repository,
	rules pricelist.RuleSet,
	cache *cache.RedisClient,
	cacheTTL time.Duration,
	notifier Notifier,
	log logger.ZapLogger,
) pricelist.UseCase {
	return &priceListUseCase{
		items:    items,
		rules:    rules,
		cache:    cache,
		cacheTTL: cacheTTL,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *priceListUseCase) BuildPriceList(ctx context.Context) (string, error) {
	// Imports and availability flips drop this key, so a hit is current.
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, pricelist.CacheKey); err != nil {
			uc.logger.Warn("price list cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	items, err := uc.items.FindAvailable(ctx)
	if err != nil {
		return "", err
	}

	report := pricelist.Compile(items, uc.rules)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, pricelist.CacheKey, report, uc.cacheTTL); err != nil {
			uc.logger.Warn("price list cache write failed", zap.Error(err))
		}
	}
	return report, nil
}

func (uc *priceListUseCase) BuildAndNotify(ctx context.Context) (string, error) {
	report, err := uc.BuildPriceList(ctx)
	if err != nil {
		return "", err
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendMessage(ctx, report); err != nil {
			uc.logger.Warn("price list notification failed", zap.Error(err))
		}
	}
	return report, nil
}
