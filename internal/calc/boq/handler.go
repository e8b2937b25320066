package boq

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Nirman/internal/calc/respond"
)

// Handler serves BOQ estimates. A positive TaxRate replaces the catalog rate
// unless the request carries its own.
type Handler struct {
	Log     *zap.Logger
	TaxRate float64
}

// Decode reads an Input and applies the handler's tax default.
func (h *Handler) Decode(r *http.Request) (Input, error) {
	var input Input
	if err := respond.Decode(r, &input); err != nil {
		return Input{}, err
	}
	if input.TaxRate == nil && h.TaxRate > 0 {
		rate := h.TaxRate
		input.TaxRate = &rate
	}
	return input, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input, err := h.Decode(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := Calculate(input)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) Floors(w http.ResponseWriter, r *http.Request) {
	input, err := h.Decode(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := CalculateFloorwise(input)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	h.log().Warn("boq input rejected", zap.Error(err))
	respond.Error(w, status, err.Error())
}

func (h *Handler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
