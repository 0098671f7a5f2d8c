package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventhive/server/internal/models"
	"github.com/eventhive/server/internal/uploads"
)

// uploadFile is shared by the three media-upload routes; they differ only in
// form field, destination kind, and messages.
func uploadFile(store *uploads.Store, logger *slog.Logger, c *gin.Context, field, kind, okMsg, failMsg string) {
	var fh *multipart.FileHeader
	if f, err := c.FormFile(field); err == nil {
		fh = f
	}
	if fh == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("No file selected"))
		return
	}

	filename, err := store.Save(c.Request.Context(), fh, kind)
	if err != nil {
		logger.Error("file upload failed", "error", err, "kind", kind)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(failMsg))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": filename,
		"success":  true,
		"message":  okMsg,
	})
}

func UploadEventImage(store *uploads.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploadFile(store, logger, c, "image", uploads.KindEventImage,
			"Image Uploaded Successfully.", "Unable to upload event image.")
	}
}

func UploadEventStoryImage(store *uploads.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploadFile(store, logger, c, "image", uploads.KindEventStoryImage,
			"Image Uploaded Successfully.", "Unable to upload event image.")
	}
}

func UploadEventStoryVideo(store *uploads.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploadFile(store, logger, c, "video", uploads.KindEventStoryVideo,
			"Video Uploaded Successfully.", "Unable to upload event video.")
	}
}
