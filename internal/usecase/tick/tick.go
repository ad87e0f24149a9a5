package tick

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
)

const (
	// DefaultQueryLimit applies when a tick query does not set a limit.
	DefaultQueryLimit = 1000
	// MaxQueryLimit is the hard ceiling for a single tick query.
	MaxQueryLimit = 10000
)

// Usecase is the usecase for the tick.
type Usecase struct {
	tickRepository tick.TickRepository
	redisClient    redis.Client
	tickChannel    string
	logger         logger.Interface
}

// NewUsecase creates a new tick usecase.
func NewUsecase(tickRepository tick.TickRepository, redisClient redis.Client, tickChannel string, logger logger.Interface) *Usecase {
	return &Usecase{
		tickRepository: tickRepository,
		redisClient:    redisClient,
		tickChannel:    tickChannel,
		logger:         logger,
	}
}

func validateTick(t *tick.Tick) error {
	if t.Symbol == "" {
		return errors.NewValidationError("symbol must not be empty", "symbol")
	}
	if t.Time.IsZero() {
		return errors.NewValidationError("time must be set", "time")
	}
	if t.Price <= 0 {
		return errors.NewValidationError("price must be positive", "price")
	}
	return nil
}

// CreateTick validates and stores a tick. A duplicate (symbol, time) key
// overwrites the stored price, so replayed feed messages stay harmless.
func (u *Usecase) CreateTick(ctx context.Context, t *tick.Tick) error {
	if err := validateTick(t); err != nil {
		return err
	}

	if err := u.tickRepository.Upsert(ctx, t); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return errors.NewErrorDetails("failed to store tick", string(errors.TimescaleExecError), "")
	}
	return nil
}

// CreateTicks validates and stores a batch of ticks.
func (u *Usecase) CreateTicks(ctx context.Context, ticks []*tick.Tick) error {
	for i, t := range ticks {
		if err := validateTick(t); err != nil {
			details := err.(*errors.ErrorDetails)
			return errors.NewErrorDetails(details.Message, details.Code, fmt.Sprintf("ticks[%d].%s", i, details.Field))
		}
	}

	if err := u.tickRepository.UpsertBatch(ctx, ticks); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return errors.NewErrorDetails("failed to store tick batch", string(errors.TimescaleExecError), "")
	}
	return nil
}

// GetTicks retrieves ticks by filter, oldest first. A zero limit falls
// back to DefaultQueryLimit; limits above MaxQueryLimit are rejected.
func (u *Usecase) GetTicks(ctx context.Context, filter tick.Filter) ([]*tick.Tick, error) {
	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit must not be negative", "limit")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		return nil, errors.NewValidationError(
			fmt.Sprintf("limit must not exceed %d", MaxQueryLimit), "limit")
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errors.NewValidationError("to must not be before from", "to")
	}

	ticks, err := u.tickRepository.GetByFilter(ctx, filter)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return nil, errors.NewErrorDetails("failed to query ticks", string(errors.TimescaleQueryError), "")
	}
	return ticks, nil
}

// GetLatestTick retrieves the most recent tick for a symbol.
func (u *Usecase) GetLatestTick(ctx context.Context, symbol string) (*tick.Tick, error) {
	if symbol == "" {
		return nil, errors.NewValidationError("symbol must not be empty", "symbol")
	}

	t, err := u.tickRepository.GetLatestBySymbol(ctx, symbol)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return nil, errors.NewErrorDetails("failed to query latest tick", string(errors.TimescaleQueryError), "")
	}
	if t == nil {
		return nil, errors.NewNotFound(fmt.Sprintf("no ticks for symbol %s", symbol))
	}
	return t, nil
}

// UpdateTickPrice rewrites the price of an existing tick and returns
// the updated row.
func (u *Usecase) UpdateTickPrice(ctx context.Context, symbol string, ts time.Time, price float64) (*tick.Tick, error) {
	if price <= 0 {
		return nil, errors.NewValidationError("price must be positive", "price")
	}

	affected, err := u.tickRepository.UpdatePrice(ctx, symbol, ts, price)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return nil, errors.NewErrorDetails("failed to update tick", string(errors.TimescaleExecError), "")
	}
	if affected == 0 {
		return nil, errors.NewNotFound(fmt.Sprintf("no tick for %s at %s", symbol, ts.UTC().Format(time.RFC3339)))
	}

	return &tick.Tick{Time: ts, Symbol: symbol, Price: price}, nil
}

// DeleteTick removes a single tick.
func (u *Usecase) DeleteTick(ctx context.Context, symbol string, ts time.Time) error {
	deleted, err := u.tickRepository.DeletePoint(ctx, symbol, ts)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return errors.NewErrorDetails("failed to delete tick", string(errors.TimescaleExecError), "")
	}
	if deleted == 0 {
		return errors.NewNotFound(fmt.Sprintf("no tick for %s at %s", symbol, ts.UTC().Format(time.RFC3339)))
	}
	return nil
}

// DeleteTickRange removes all ticks for a symbol inside [from, to] and
// returns how many rows went away. An empty range is not an error.
func (u *Usecase) DeleteTickRange(ctx context.Context, symbol string, from, to time.Time) (int64, error) {
	if to.Before(from) {
		return 0, errors.NewValidationError("to must not be before from", "to")
	}

	deleted, err := u.tickRepository.DeleteRange(ctx, symbol, from, to)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return 0, errors.NewErrorDetails("failed to delete tick range", string(errors.TimescaleExecError), "")
	}
	return deleted, nil
}

// PublishTick pushes a tick onto the Redis feed so downstream consumers
// see manually created ticks too. Best effort: a publish failure is
// logged and swallowed, the tick is already persisted.
func (u *Usecase) PublishTick(ctx context.Context, t *tick.Tick) {
	payload, err := json.Marshal(t.ToMessage())
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err))
		return
	}

	if _, err := u.redisClient.Publish(ctx, u.tickChannel, payload); err != nil {
		u.logger.WarnContext(ctx, "failed to publish tick to feed", logger.Field{
			Key:   "error",
			Value: err.Error(),
		}, logger.Field{
			Key:   "channel",
			Value: u.tickChannel,
		})
	}
}
