package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tickUcMock "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/tick/mock"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	loggerMock "github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger/mock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func performTickRequest(t *testing.T, mockFn func(tickUc *tickUcMock.MockUsecase), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tickUc := tickUcMock.NewMockUsecase(ctrl)
	mockLogger := loggerMock.NewMockInterface(ctrl)
	mockFn(tickUc)

	router := gin.New()
	NewTickHandler(tickUc, mockLogger).RegisterRoutes(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestTickHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					CreateTick(gomock.Any(), &tickInfra.Tick{
						Time:   time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
						Symbol: "EUR/USD",
						Price:  1.0862,
					}).
					Return(nil)
				tickUc.EXPECT().PublishTick(gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"status":"success"`)
				assert.Contains(t, recorder.Body.String(), `"price":1.0862`)
			},
		},
		{
			name:   "missing fields are rejected",
			body:   `{"symbol":"EUR/USD"}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"code":"validation_error"`)
			},
		},
		{
			name:   "malformed timestamp is rejected",
			body:   `{"time":"yesterday","symbol":"EUR/USD","price":1.0862}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"field":"time"`)
			},
		},
		{
			name: "usecase validation failure",
			body: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":-1}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					CreateTick(gomock.Any(), gomock.Any()).
					Return(errors.NewValidationError("price must be positive", "price"))
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "price must be positive")
			},
		},
		{
			name: "storage failure",
			body: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					CreateTick(gomock.Any(), gomock.Any()).
					Return(errors.NewErrorDetails("failed to store tick", string(errors.TimescaleExecError), ""))
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodPost, "/ticks", testCase.body)
			testCase.assertFn(t, recorder)
		})
	}
}

func TestTickHandler_CreateBulk(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `[{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0862},{"time":"2024-03-15T13:45:01Z","symbol":"EUR/USD","price":1.0863}]`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					CreateTicks(gomock.Any(), gomock.Len(2)).
					Return(nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"created":2`)
			},
		},
		{
			name:   "invalid timestamp names the offending element",
			body:   `[{"time":"nope","symbol":"EUR/USD","price":1.0862}]`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"field":"ticks[0].time"`)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodPost, "/ticks/bulk", testCase.body)
			testCase.assertFn(t, recorder)
		})
	}
}

func TestTickHandler_List(t *testing.T) {
	from := time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		target   string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "success with full filter",
			target: "/ticks?symbol=EUR/USD&start=2024-03-15T13:00:00Z&end=2024-03-15T14:00:00Z&limit=10&offset=5",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					GetTicks(gomock.Any(), tickInfra.Filter{
						Symbol: "EUR/USD",
						From:   &from,
						To:     &to,
						Limit:  10,
						Offset: 5,
					}).
					Return([]*tickInfra.Tick{
						{Time: from, Symbol: "EUR/USD", Price: 1.0862},
					}, nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"price":1.0862`)
			},
		},
		{
			name:   "limit above the ceiling",
			target: "/ticks?symbol=EUR/USD&limit=20000",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					GetTicks(gomock.Any(), gomock.Any()).
					Return(nil, errors.NewValidationError("limit must not exceed 10000", "limit"))
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "non-numeric limit",
			target: "/ticks?symbol=EUR/USD&limit=lots",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"field":"limit"`)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodGet, testCase.target, "")
			testCase.assertFn(t, recorder)
		})
	}
}

func TestTickHandler_Latest(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					GetLatestTick(gomock.Any(), "EUR/USD").
					Return(&tickInfra.Tick{
						Time:   time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
						Symbol: "EUR/USD",
						Price:  1.0862,
					}, nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"time":"2024-03-15T13:45:00Z"`)
			},
		},
		{
			name: "unknown symbol",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					GetLatestTick(gomock.Any(), "EUR/USD").
					Return(nil, errors.NewNotFound("no ticks for symbol"))
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"code":"not_found"`)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodGet, "/ticks/latest?symbol=EUR/USD", "")
			testCase.assertFn(t, recorder)
		})
	}
}

func TestTickHandler_UpdatePrice(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		body     string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0870}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					UpdateTickPrice(gomock.Any(), "EUR/USD", ts, 1.0870).
					Return(&tickInfra.Tick{Time: ts, Symbol: "EUR/USD", Price: 1.0870}, nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"price":1.087`)
			},
		},
		{
			name: "missing tick",
			body: `{"time":"2024-03-15T13:45:00Z","symbol":"EUR/USD","price":1.0870}`,
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					UpdateTickPrice(gomock.Any(), "EUR/USD", ts, 1.0870).
					Return(nil, errors.NewNotFound("tick not found"))
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodPut, "/ticks", testCase.body)
			testCase.assertFn(t, recorder)
		})
	}
}

func TestTickHandler_DeleteRange(t *testing.T) {
	from := time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	recorder := performTickRequest(t, func(tickUc *tickUcMock.MockUsecase) {
		tickUc.EXPECT().
			DeleteTickRange(gomock.Any(), "EUR/USD", from, to).
			Return(int64(42), nil)
	}, http.MethodDelete, "/ticks?symbol=EUR/USD&start=2024-03-15T13:00:00Z&end=2024-03-15T14:00:00Z", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"deleted":42`)
}

func TestTickHandler_DeletePoint(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(tickUc *tickUcMock.MockUsecase)
		expected int
	}{
		{
			name: "success",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					DeleteTick(gomock.Any(), "EUR/USD", ts).
					Return(nil)
			},
			expected: http.StatusOK,
		},
		{
			name: "missing tick",
			mockFn: func(tickUc *tickUcMock.MockUsecase) {
				tickUc.EXPECT().
					DeleteTick(gomock.Any(), "EUR/USD", ts).
					Return(errors.NewNotFound("tick not found"))
			},
			expected: http.StatusNotFound,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := performTickRequest(t, testCase.mockFn, http.MethodDelete, "/ticks/point?symbol=EUR/USD&time=2024-03-15T13:45:00Z", "")
			assert.Equal(t, testCase.expected, recorder.Code)
		})
	}
}
