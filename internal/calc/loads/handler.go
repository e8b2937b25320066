package loads

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

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := Calculate(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, is456.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		if h.Log != nil {
			h.Log.Warn("loads input rejected", zap.Error(err))
		}
		respond.Error(w, status, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
