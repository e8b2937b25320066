package importer

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/respond"
)

// MaxUploadBytes bounds the multipart upload.
const MaxUploadBytes = 10 << 20

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	res, err := ImportBeams(file)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, is456.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		respond.Error(w, status, err.Error())
		return
	}
	if h.Log != nil && res.Errors > 0 {
		h.Log.Info("beam import had bad rows", zap.Int("errors", res.Errors), zap.Int("designed", res.Count))
	}
	respond.JSON(w, http.StatusOK, res)
}
