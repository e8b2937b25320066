package batch

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/respond"
)

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamBatchInput
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := CalculateBeam(input)
	if err != nil {
		h.fail(w, "beam", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) Column(w http.ResponseWriter, r *http.Request) {
	var input ColumnBatchInput
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := CalculateColumn(input)
	if err != nil {
		h.fail(w, "column", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) fail(w http.ResponseWriter, kind string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, is456.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	if h.Log != nil {
		h.Log.Warn("batch rejected", zap.String("kind", kind), zap.Error(err))
	}
	respond.Error(w, status, err.Error())
}
