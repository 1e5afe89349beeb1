package browse

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"s3util/core/storage"
	"s3util/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() (*fiber.App, *mocks.API) {
	app := fiber.New()
	api := new(mocks.API)
	svc := NewService(storage.NewFromAPI(api), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, api
}

func TestHandleListBuckets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, api := setupTestApp()
		api.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
			{Name: "logs-bucket", CreationDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "backups", CreationDate: time.Date(2022, 6, 15, 12, 30, 0, 0, time.UTC)},
		}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Buckets []storage.BucketInfo `json:"buckets"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Buckets, 2)
		assert.Equal(t, "logs-bucket", body.Buckets[0].Name)
		assert.Equal(t, "backups", body.Buckets[1].Name)
	})

	t.Run("SDKFailure", func(t *testing.T) {
		app, api := setupTestApp()
		api.On("ListBuckets", mock.Anything).Return(nil, errors.New("Access Denied."))

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Access Denied.", body["error"])
	})
}

func TestHandleListObjects(t *testing.T) {
	app, api := setupTestApp()
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "logs/a.txt", Size: 1}
	ch <- minio.ObjectInfo{Key: "logs/b.txt", Size: 2}
	close(ch)
	api.On("ListObjects", mock.Anything, "data",
		minio.ListObjectsOptions{Prefix: "logs/", Recursive: true}).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/data/objects?prefix=logs/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Bucket  string               `json:"bucket"`
		Objects []storage.ObjectInfo `json:"objects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "data", body.Bucket)
	require.Len(t, body.Objects, 2)
	assert.Equal(t, "logs/a.txt", body.Objects[0].Key)
	assert.Equal(t, "logs/b.txt", body.Objects[1].Key)
}

func TestHandleGetObject(t *testing.T) {
	t.Run("StreamsBody", func(t *testing.T) {
		app, api := setupTestApp()
		api.On("StatObject", mock.Anything, "data", "docs/readme.md", mock.Anything).
			Return(minio.ObjectInfo{Key: "docs/readme.md", Size: 5, ContentType: "text/markdown"}, nil)
		api.On("GetObject", mock.Anything, "data", "docs/readme.md", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("hello"))), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/data/objects/docs/readme.md", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/markdown", resp.Header.Get(fiber.HeaderContentType))

		content, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("NotFound", func(t *testing.T) {
		app, api := setupTestApp()
		api.On("StatObject", mock.Anything, "data", "missing.txt", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{
				Code:       "NoSuchKey",
				Message:    "The specified key does not exist.",
				StatusCode: 404,
			})

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/data/objects/missing.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandlePresign(t *testing.T) {
	app, api := setupTestApp()
	signed, _ := url.Parse("https://s3.amazonaws.com/data/file.bin?X-Amz-Signature=sig")
	api.On("PresignedGetObject", mock.Anything, "data", "file.bin", 15*time.Minute, mock.Anything).
		Return(signed, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/data/presign/file.bin?ttl=900", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, signed.String(), body["url"])
	assert.Equal(t, "file.bin", body["key"])
}
