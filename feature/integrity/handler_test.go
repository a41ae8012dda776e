package integrity

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"asset-uploader/core/storage"
	"asset-uploader/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storage.Config{Bucket: "media", KeyPrefix: "uploads/"}, zap.NewNop(), nil)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func emptyListing() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestHandleBucketCheck(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "media").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "media", mock.Anything).Return(emptyListing())

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/bucket", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["exists"])
		assert.Equal(t, "uploads/", body["prefix"])
	})

	t.Run("Unreachable", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "media").Return(false, errors.New("dial tcp: refused"))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/bucket", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}

func TestHandleLedgerCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/ledger", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["enabled"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "media").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["bucket"]["status"])
	assert.Equal(t, false, body["ledger"]["enabled"])
}

func TestHandleReconcile_LedgerDisabled(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/reconcile", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}
