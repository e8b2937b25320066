package autodesign

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
	var input BeamAutoInput
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := Beam(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, is456.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		respond.Error(w, status, err.Error())
		return
	}
	if !res.Found && h.Log != nil {
		h.Log.Info("beam auto-design found no depth",
			zap.Float64("mu_knm", input.MuKNM),
			zap.Float64("width_mm", input.WidthMM),
			zap.Int("tried", res.Tried))
	}
	respond.JSON(w, http.StatusOK, res)
}
