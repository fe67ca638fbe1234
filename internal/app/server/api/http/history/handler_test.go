package history

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/utils/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) History() []history.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]history.Entry)
}

func (m *MockService) SelectHistory(ctx context.Context, index int) (vehicle.Record, error) {
	args := m.Called(ctx, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vehicle.Record), args.Error(1)
}

var testEntries = []history.Entry{
	{VIN: "5YJSA1E26HF000001", Timestamp: 1700000100000},
	{VIN: "1HGCM82633A123456", Timestamp: 1700000000000},
}

func TestHandler_list(t *testing.T) {
	// Arrange
	svc := new(MockService)
	svc.On("History").Return(testEntries)
	handler := NewHandler(svc, logger.Discard(), huma.Middlewares{})

	// Act
	out, err := handler.list(context.Background(), nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Body.Entries, 2)
	assert.Equal(t, 1, out.Body.Entries[1].Index)
	assert.Equal(t, "1HGCM82633A123456", out.Body.Entries[1].VIN)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), out.Body.Entries[1].SearchedAt)
}

func TestHandler_list_Empty(t *testing.T) {
	_, api := humatest.New(t)
	svc := new(MockService)
	svc.On("History").Return(nil)
	NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)

	resp := api.Get("/api/v1/history")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"entries":[]}`, stripSchema(t, resp.Body.Bytes()))
}

func TestHandler_selectEntry(t *testing.T) {
	// Arrange
	_, api := humatest.New(t)
	svc := new(MockService)
	svc.On("History").Return(testEntries)
	svc.On("SelectHistory", mock.Anything, 1).Return(vehicle.Record{"Make": "HONDA"}, nil)
	NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)

	// Act
	resp := api.Post("/api/v1/history/1/decode")

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	var body selectResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "1HGCM82633A123456", body.VIN)
	assert.Equal(t, "HONDA", body.Record["Make"])
	svc.AssertExpectations(t)
}

func TestHandler_selectEntry_OutOfRange(t *testing.T) {
	_, api := humatest.New(t)
	svc := new(MockService)
	svc.On("History").Return(testEntries)
	NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)

	resp := api.Post("/api/v1/history/5/decode")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertNotCalled(t, "SelectHistory", mock.Anything, mock.Anything)
}

// stripSchema убирает служебное поле $schema, которое huma добавляет в ответ
func stripSchema(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
