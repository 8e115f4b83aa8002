package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/travel-planner/internal/storage"
)

// Cover images and activity photos stay small; reject anything bigger.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadHandler holds the file storage dependency.
type UploadHandler struct {
	fileStorage storage.FileStorage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(fileStorage storage.FileStorage) *UploadHandler {
	return &UploadHandler{fileStorage: fileStorage}
}

// UploadResponse carries the stored object's key and retrievable URL.
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignRequest asks for a direct-upload URL for the given file.
type PresignRequest struct {
	FileName    string `form:"fileName" binding:"required"`
	ContentType string `form:"contentType" binding:"required"`
}

// PresignResponse carries the upload URL and the key the object will live at.
type PresignResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

// DownloadResponse carries a temporary direct-download URL for a stored object.
type DownloadResponse struct {
	Key         string `json:"key"`
	DownloadURL string `json:"downloadUrl"`
}

// objectKey builds a per-user, collision-free key for an uploaded file.
func objectKey(userID, fileName string) string {
	return fmt.Sprintf("trips/%s/%s%s", userID, uuid.New().String(), filepath.Ext(fileName))
}

// ownsObjectKey reports whether the key sits under the user's upload prefix.
// Keys are minted by objectKey, so the prefix is the ownership boundary.
func ownsObjectKey(userID, key string) bool {
	return strings.HasPrefix(key, "trips/"+userID+"/")
}

// Upload accepts a multipart file and stores it in the configured asset
// store, returning the retrievable URL to reference from a trip or activity.
func (h *UploadHandler) Upload(c *gin.Context) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "A 'file' form field is required.")
		return
	}
	if fileHeader.Size > maxUploadSize {
		abortWithError(c, http.StatusRequestEntityTooLarge, "File exceeds the maximum upload size.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not read uploaded file.")
		return
	}
	defer file.Close()

	key := objectKey(userIDStr, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.fileStorage.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to store uploaded file.")
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{Key: key, URL: url})
}

// Presign hands out a temporary direct-upload URL for providers that support
// it. Clients PUT the blob there themselves with the declared content type.
func (h *UploadHandler) Presign(c *gin.Context) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req PresignRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	key := objectKey(userIDStr, req.FileName)
	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), key, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrPresignUnsupported) {
			abortWithError(c, http.StatusNotImplemented, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		return
	}

	c.JSON(http.StatusOK, PresignResponse{Key: key, UploadURL: uploadURL})
}

// PresignDownload hands out a temporary direct-download URL for an object the
// user uploaded earlier. Providers without presigning answer 501.
func (h *UploadHandler) PresignDownload(c *gin.Context) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "A 'key' query parameter is required.")
		return
	}
	if !ownsObjectKey(userIDStr, key) {
		abortWithError(c, http.StatusForbidden, "You can only access your own uploads.")
		return
	}

	downloadURL, err := h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrPresignUnsupported) {
			abortWithError(c, http.StatusNotImplemented, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL.")
		return
	}

	c.JSON(http.StatusOK, DownloadResponse{Key: key, DownloadURL: downloadURL})
}

// Delete removes an uploaded object, e.g. a replaced cover image. Only keys
// under the user's own prefix can be deleted.
func (h *UploadHandler) Delete(c *gin.Context) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "A 'key' query parameter is required.")
		return
	}
	if !ownsObjectKey(userIDStr, key) {
		abortWithError(c, http.StatusForbidden, "You can only delete your own uploads.")
		return
	}

	if err := h.fileStorage.DeleteObject(c.Request.Context(), key); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete uploaded file.")
		return
	}

	c.Status(http.StatusNoContent)
}
