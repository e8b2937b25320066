package column

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
		h.log().Warn("column input rejected", zap.Error(err))
		respond.Error(w, status, err.Error())
		return
	}
	if res.Design.Status == is456.StatusFail {
		h.log().Info("column design failed",
			zap.Float64("pu_kn", input.PuKN),
			zap.String("type", string(res.Design.Type)),
			zap.String("message", res.Design.Message))
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
