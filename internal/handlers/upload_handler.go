package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) UploadSingle(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File is required"))
		return
	}

	resp, err := h.uploadService.UploadFile(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Multipart form is required"))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("At least one file is required"))
		return
	}

	resp, err := h.uploadService.UploadFiles(c.Request.Context(), files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploadService.DeleteFile(c.Request.Context(), c.Param("filename")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
