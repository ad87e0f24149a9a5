package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast"
	broadcastMock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast/mock"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/feed"
	feedMock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/feed/mock"
	tickMock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/tick/mock"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	logger_mock "github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type consumerMocks struct {
	subscriber  *feedMock.MockSubscriber
	tickUsecase *tickMock.MockUsecase
	broadcaster *broadcastMock.MockBroadcaster
}

func newTickConsumer(t *testing.T) (*TickConsumer, consumerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := consumerMocks{
		subscriber:  feedMock.NewMockSubscriber(ctrl),
		tickUsecase: tickMock.NewMockUsecase(ctrl),
		broadcaster: broadcastMock.NewMockBroadcaster(ctrl),
	}

	mockLogger := logger_mock.NewMockInterface(ctrl)
	mockLogger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	consumer := NewTickConsumer(mocks.subscriber, mockLogger, mocks.tickUsecase, mocks.broadcaster, metrics.New())
	consumer.resubscribeDelay = time.Millisecond

	return consumer, mocks
}

func TestTickConsumer_handleMessage(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		mockFn  func(mocks consumerMocks)
	}{
		{
			name:    "persists and broadcasts a valid tick",
			payload: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`,
			mockFn: func(mocks consumerMocks) {
				mocks.tickUsecase.EXPECT().
					CreateTick(gomock.Any(), &tickInfra.Tick{
						Time:   time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
						Symbol: "EUR/USD",
						Price:  1.0862,
					}).
					Return(nil)
				mocks.broadcaster.EXPECT().
					Broadcast(broadcast.TopicRawTicks, tickInfra.Message{
						Time:   "2024-03-15T13:45:00Z",
						Symbol: "EUR/USD",
						Price:  1.0862,
					})
			},
		},
		{
			name:    "drops a malformed payload",
			payload: `{"time":`,
			mockFn:  func(mocks consumerMocks) {},
		},
		{
			name:    "drops a tick with an unparseable time",
			payload: `{"time":"yesterday","symbol":"EUR/USD","price":1.0862}`,
			mockFn:  func(mocks consumerMocks) {},
		},
		{
			name:    "does not broadcast when persisting fails",
			payload: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`,
			mockFn: func(mocks consumerMocks) {
				mocks.tickUsecase.EXPECT().
					CreateTick(gomock.Any(), gomock.Any()).
					Return(errors.NewErrorDetails("storage failed", string(errors.TimescaleExecError), ""))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			consumer, mocks := newTickConsumer(t)
			tc.mockFn(mocks)

			consumer.handleMessage(context.Background(), &feed.Message{
				Channel: "fx_ticks",
				Payload: tc.payload,
			})
		})
	}
}

func TestTickConsumer_consume(t *testing.T) {
	consumer, mocks := newTickConsumer(t)

	mocks.tickUsecase.EXPECT().
		CreateTick(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)
	mocks.broadcaster.EXPECT().
		Broadcast(broadcast.TopicRawTicks, gomock.Any()).
		Times(2)

	messages := make(chan *feed.Message, 2)
	messages <- &feed.Message{Payload: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`}
	messages <- &feed.Message{Payload: `{"time":"2024-03-15T13:45:01Z","symbol":"EUR/USD","price":1.0863}`}
	close(messages)

	// returns once the channel closes
	consumer.consume(context.Background(), messages)
}

func TestTickConsumer_Start_resubscribes(t *testing.T) {
	consumer, mocks := newTickConsumer(t)

	ctx, cancel := context.WithCancel(context.Background())

	closed := make(chan *feed.Message)
	close(closed)

	first := mocks.subscriber.EXPECT().
		Subscribe(gomock.Any()).
		Return((<-chan *feed.Message)(closed), nil)
	mocks.subscriber.EXPECT().
		Subscribe(gomock.Any()).
		After(first).
		DoAndReturn(func(context.Context) (<-chan *feed.Message, error) {
			cancel()
			return closed, nil
		})

	consumer.Start(ctx)
}

func TestTickConsumer_Stop(t *testing.T) {
	consumer, mocks := newTickConsumer(t)

	mocks.subscriber.EXPECT().Close().Return(nil)

	assert.NoError(t, consumer.Stop())
}
