package generator

import (
	"context"
	"testing"
	"time"

	tickMock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick/mock"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	logger_mock "github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger/mock"
	redisMock "github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type generatorMocks struct {
	redisClient    *redisMock.MockClient
	tickRepository *tickMock.MockTickRepository
}

func newGenerator(t *testing.T, cfg config.GeneratorConfig) (*Generator, generatorMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := generatorMocks{
		redisClient:    redisMock.NewMockClient(ctrl),
		tickRepository: tickMock.NewMockTickRepository(ctrl),
	}

	mockLogger := logger_mock.NewMockInterface(ctrl)
	mockLogger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	generator := NewGenerator(cfg, "fx_ticks", mocks.redisClient, mocks.tickRepository, mockLogger, metrics.New())
	generator.now = func() time.Time {
		return time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	}

	return generator, mocks
}

func TestGenerator_publishTick(t *testing.T) {
	generator, mocks := newGenerator(t, config.GeneratorConfig{
		Symbol:     "EUR/USD",
		Interval:   time.Second,
		StartPrice: 1.0860,
	})
	generator.randStep = func() float64 { return 0.0002 }

	mocks.redisClient.EXPECT().
		Publish(gomock.Any(), "fx_ticks", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message any) (int64, error) {
			assert.JSONEq(t, `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`, string(message.([]byte)))
			return 1, nil
		})

	generator.publishTick(context.Background())
	assert.Equal(t, 1.0862, generator.price)
}

func TestGenerator_step(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		stepSize float64
		expected float64
	}{
		{
			name:     "walks up",
			price:    1.0860,
			stepSize: 0.0003,
			expected: 1.0863,
		},
		{
			name:     "walks down",
			price:    1.0860,
			stepSize: -0.0004,
			expected: 1.0856,
		},
		{
			name:     "clamps at the lower band",
			price:    0.5001,
			stepSize: -0.0005,
			expected: 0.5,
		},
		{
			name:     "clamps at the upper band",
			price:    1.9999,
			stepSize: 0.0005,
			expected: 2.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			generator, _ := newGenerator(t, config.GeneratorConfig{
				Symbol:     "EUR/USD",
				Interval:   time.Second,
				StartPrice: 1.0,
			})
			generator.randStep = func() float64 { return tc.stepSize }

			assert.Equal(t, tc.expected, generator.step(tc.price))
		})
	}
}

func TestGenerator_Backfill(t *testing.T) {
	generator, mocks := newGenerator(t, config.GeneratorConfig{
		Symbol:     "EUR/USD",
		Interval:   time.Second,
		StartPrice: 1.0860,
	})
	generator.randStep = func() float64 { return 0.0001 }

	from := time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)
	to := from.Add(5 * time.Second)

	mocks.tickRepository.EXPECT().
		BulkImport(gomock.Any(), gomock.Len(5)).
		Return(int64(5), nil)

	imported, err := generator.Backfill(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), imported)

	// the walk resumes from the last backfilled price
	assert.Equal(t, 1.0865, generator.price)
}

func TestGenerator_Backfill_emptyRange(t *testing.T) {
	generator, _ := newGenerator(t, config.GeneratorConfig{
		Symbol:     "EUR/USD",
		Interval:   time.Second,
		StartPrice: 1.0860,
	})

	from := time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)

	imported, err := generator.Backfill(context.Background(), from, from)
	assert.NoError(t, err)
	assert.Zero(t, imported)
}
