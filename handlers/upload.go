package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetUploadURL issues a pre-signed URL so the client can upload a banner
// image straight to the bucket.
func (h *Handler) GetUploadURL(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url, err := h.Storage.PresignedUploadURL(ctx)
	if err != nil {
		log.Printf("[GetUploadURL] presign failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadURL": url})
}
