package ohlc

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc"
	ohlcmock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc/mock"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	logger_mock "github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger/mock"
)

func newUsecase(t *testing.T) (*Usecase, *ohlcmock.MockOHLCRepository) {
	ctrl := gomock.NewController(t)

	repo := ohlcmock.NewMockOHLCRepository(ctrl)
	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return NewUsecase(repo, log), repo
}

func TestUsecase_GetBuckets(t *testing.T) {
	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	testCases := []struct {
		name     string
		query    domain.Query
		mockFn   func(repo *ohlcmock.MockOHLCRepository)
		assertFn func(t *testing.T, err error, buckets []*ohlc.OHLC)
	}{
		{
			name:  "success - minute",
			query: domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: to},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetBuckets(gomock.Any(), interval.Minute, "EUR/USD", from, to).
					Return([]*ohlc.OHLC{{Symbol: "EUR/USD", Open: 1.0862}}, nil)
			},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.NoError(t, err)
				assert.Len(t, buckets, 1)
			},
		},
		{
			name:  "custom-day routes to the on-demand query",
			query: domain.Query{Symbol: "EUR/USD", Granularity: "custom-day", From: from, To: to, DayStartHour: 22},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetCustomDayBuckets(gomock.Any(), "EUR/USD", from, to, 22).
					Return([]*ohlc.OHLC{{Symbol: "EUR/USD"}}, nil)
			},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.NoError(t, err)
				assert.Len(t, buckets, 1)
			},
		},
		{
			name:   "unknown granularity rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "fortnight", From: from, To: to},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ValidationError))
			},
		},
		{
			name:   "empty symbol rejected",
			query:  domain.Query{Granularity: "minute", From: from, To: to},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ValidationError))
			},
		},
		{
			name:   "day start hour out of range rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "custom-day", From: from, To: to, DayStartHour: 24},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ValidationError))
			},
		},
		{
			name:   "minute span over seven days rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: from.Add(8 * 24 * time.Hour)},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.RangeTooLarge))
				assert.Contains(t, err.Error(), "8 days")
				assert.Contains(t, err.Error(), "7 days")
			},
		},
		{
			name:  "minute span at limit accepted",
			query: domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: from.Add(7 * 24 * time.Hour)},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetBuckets(gomock.Any(), interval.Minute, "EUR/USD", from, from.Add(7*24*time.Hour)).
					Return(nil, nil)
			},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "hour span over 180 days rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "hour", From: from, To: from.Add(181 * 24 * time.Hour)},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.RangeTooLarge))
			},
		},
		{
			name:   "inverted range rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: to, To: from},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ValidationError))
			},
		},
		{
			name:   "limit above ceiling rejected",
			query:  domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: to, Limit: MaxQueryLimit + 1},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ValidationError))
			},
		},
		{
			name:  "result trimmed to limit",
			query: domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: to, Limit: 2},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetBuckets(gomock.Any(), interval.Minute, "EUR/USD", from, to).
					Return([]*ohlc.OHLC{{}, {}, {}}, nil)
			},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.NoError(t, err)
				assert.Len(t, buckets, 2)
			},
		},
		{
			name:  "repository failure maps to query error",
			query: domain.Query{Symbol: "EUR/USD", Granularity: "minute", From: from, To: to},
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetBuckets(gomock.Any(), interval.Minute, "EUR/USD", from, to).
					Return(nil, stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, err error, buckets []*ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.TimescaleQueryError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			usecase, repo := newUsecase(t)
			tc.mockFn(repo)

			buckets, err := usecase.GetBuckets(context.Background(), tc.query)
			tc.assertFn(t, err, buckets)
		})
	}
}

func TestUsecase_GetLatestBucket(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(repo *ohlcmock.MockOHLCRepository)
		assertFn func(t *testing.T, err error, bucket *ohlc.OHLC)
	}{
		{
			name: "success",
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetLatestBucket(gomock.Any(), interval.Minute, "EUR/USD").
					Return(&ohlc.OHLC{Symbol: "EUR/USD", Close: 1.0865}, nil)
			},
			assertFn: func(t *testing.T, err error, bucket *ohlc.OHLC) {
				assert.NoError(t, err)
				assert.Equal(t, 1.0865, bucket.Close)
			},
		},
		{
			name: "no data passes nil through",
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetLatestBucket(gomock.Any(), interval.Minute, "EUR/USD").Return(nil, nil)
			},
			assertFn: func(t *testing.T, err error, bucket *ohlc.OHLC) {
				assert.NoError(t, err)
				assert.Nil(t, bucket)
			},
		},
		{
			name: "repository failure maps to query error",
			mockFn: func(repo *ohlcmock.MockOHLCRepository) {
				repo.EXPECT().GetLatestBucket(gomock.Any(), interval.Minute, "EUR/USD").
					Return(nil, stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, err error, bucket *ohlc.OHLC) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.TimescaleQueryError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			usecase, repo := newUsecase(t)
			tc.mockFn(repo)

			bucket, err := usecase.GetLatestBucket(context.Background(), interval.Minute, "EUR/USD")
			tc.assertFn(t, err, bucket)
		})
	}
}

func TestFormatSpan(t *testing.T) {
	assert.Equal(t, "8 days", formatSpan(8*24*time.Hour))
	assert.Equal(t, "9 days", formatSpan(8*24*time.Hour+time.Minute))
	assert.Equal(t, "36 hours", formatSpan(36*time.Hour))
	assert.Equal(t, "2 hours", formatSpan(90*time.Minute))
}
