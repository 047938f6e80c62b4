package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/httpresp"
	"github.com/instaguera/turnos-api/internal/images"
	"github.com/instaguera/turnos-api/internal/storage"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader *storage.S3Uploader
	log      *logrus.Logger
}

func NewUploadHandler(uploader *storage.S3Uploader, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// UploadTatuaje recibe una foto para el grid de tatuajes del frontend,
// la normaliza a webp y la deja hosteada en S3.
func (h *UploadHandler) UploadTatuaje(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled", "No hay bucket configurado.")
		return
	}

	file, err := c.FormFile("imagen")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Falta el archivo 'imagen'.")
		return
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "La imagen supera los 10MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}

	normalized, err := images.NormalizeWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen no es un JPEG o PNG válido.")
		return
	}

	url, err := h.uploader.UploadWebP(c.Request.Context(), "tatuajes", normalized)
	if err != nil {
		h.log.WithError(err).Error("failed to upload image")
		httperr.Internal(c, "failed_to_upload", "Error al subir la imagen.")
		return
	}

	httpresp.Created(c, gin.H{"url": url})
}
