package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/travel-planner/internal/storage"
)

// mockFileStorage is a hand-written test double for storage.FileStorage.
type mockFileStorage struct {
	upload          func(ctx context.Context, objectKey, contentType string, body io.Reader) (string, error)
	presignUpload   func(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	presignDownload func(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	deleteObject    func(ctx context.Context, objectKey string) error
}

func (m *mockFileStorage) Upload(ctx context.Context, objectKey string, contentType string, body io.Reader) (string, error) {
	return m.upload(ctx, objectKey, contentType, body)
}
func (m *mockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	return m.presignUpload(ctx, objectKey, contentType, expires)
}
func (m *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return m.presignDownload(ctx, objectKey, expires)
}
func (m *mockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	return m.deleteObject(ctx, objectKey)
}

var _ storage.FileStorage = (*mockFileStorage)(nil)

const testUploaderID = "64a000000000000000000001"

// uploadRouter wires the upload handler behind a stub identity, standing in
// for the JWT middleware.
func uploadRouter(fs storage.FileStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewUploadHandler(fs)
	authed := router.Group("", func(c *gin.Context) {
		c.Set(ContextUserIDKey, testUploaderID)
	})
	authed.POST("/uploads", handler.Upload)
	authed.GET("/uploads/presign", handler.Presign)
	authed.GET("/uploads/download", handler.PresignDownload)
	authed.DELETE("/uploads", handler.Delete)
	return router
}

func multipartBody(t *testing.T, fieldName, fileName, contents string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload_StoresUnderUserPrefix(t *testing.T) {
	var gotKey string
	fs := &mockFileStorage{
		upload: func(_ context.Context, objectKey, _ string, body io.Reader) (string, error) {
			gotKey = objectKey
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "fake image bytes", string(data))
			return "https://assets.example.com/" + objectKey, nil
		},
	}
	router := uploadRouter(fs)

	body, contentType := multipartBody(t, "file", "cover.png", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, gotKey, "trips/"+testUploaderID+"/")
	assert.Contains(t, gotKey, ".png")
	assert.Contains(t, rec.Body.String(), "https://assets.example.com/")
}

func TestUpload_MissingFileField(t *testing.T) {
	router := uploadRouter(&mockFileStorage{})

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresign_ReturnsUploadURL(t *testing.T) {
	fs := &mockFileStorage{
		presignUpload: func(_ context.Context, objectKey, contentType string, _ time.Duration) (string, error) {
			assert.Equal(t, "image/jpeg", contentType)
			return "https://bucket.example.com/" + objectKey + "?sig=abc", nil
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/uploads/presign?fileName=photo.jpg&contentType=image%2Fjpeg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "uploadUrl")
	assert.Contains(t, rec.Body.String(), "sig=abc")
}

func TestPresign_UnsupportedProvider(t *testing.T) {
	fs := &mockFileStorage{
		presignUpload: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
			return "", storage.ErrPresignUnsupported
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/uploads/presign?fileName=photo.jpg&contentType=image%2Fjpeg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestPresignDownload_OwnKey(t *testing.T) {
	ownKey := "trips/" + testUploaderID + "/abc.png"
	fs := &mockFileStorage{
		presignDownload: func(_ context.Context, objectKey string, _ time.Duration) (string, error) {
			assert.Equal(t, ownKey, objectKey)
			return "https://bucket.example.com/" + objectKey + "?sig=dl", nil
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/uploads/download?key="+ownKey, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "downloadUrl")
	assert.Contains(t, rec.Body.String(), "sig=dl")
}

func TestPresignDownload_ForeignKeyForbidden(t *testing.T) {
	fs := &mockFileStorage{
		presignDownload: func(_ context.Context, _ string, _ time.Duration) (string, error) {
			t.Fatal("storage should not be reached for a foreign key")
			return "", nil
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/uploads/download?key=trips/someoneelse/abc.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPresignDownload_UnsupportedProvider(t *testing.T) {
	fs := &mockFileStorage{
		presignDownload: func(_ context.Context, _ string, _ time.Duration) (string, error) {
			return "", storage.ErrPresignUnsupported
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodGet, "/uploads/download?key=trips/"+testUploaderID+"/abc.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestDeleteUpload_OwnKey(t *testing.T) {
	ownKey := "trips/" + testUploaderID + "/abc.png"
	deleted := false
	fs := &mockFileStorage{
		deleteObject: func(_ context.Context, objectKey string) error {
			assert.Equal(t, ownKey, objectKey)
			deleted = true
			return nil
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodDelete, "/uploads?key="+ownKey, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, deleted)
}

func TestDeleteUpload_ForeignKeyForbidden(t *testing.T) {
	fs := &mockFileStorage{
		deleteObject: func(_ context.Context, _ string) error {
			t.Fatal("storage should not be reached for a foreign key")
			return nil
		},
	}
	router := uploadRouter(fs)

	req := httptest.NewRequest(http.MethodDelete, "/uploads?key=trips/someoneelse/abc.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUpload_MissingKey(t *testing.T) {
	router := uploadRouter(&mockFileStorage{})

	req := httptest.NewRequest(http.MethodDelete, "/uploads", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
