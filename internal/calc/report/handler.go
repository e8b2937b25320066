package report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/boq"
	"Nirman/internal/calc/column"
	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/respond"
)

type BeamRequest struct {
	Meta
	Input beam.Input `json:"input"`
}

type ColumnRequest struct {
	Meta
	Input column.Input `json:"input"`
}

type BOQRequest struct {
	Meta
	Input boq.Input `json:"input"`
}

// Handler renders PDFs. TaxRate is the BOQ default when a request omits it.
type Handler struct {
	Log     *zap.Logger
	TaxRate float64
}

func stamp(m *Meta) {
	m.Reference = uuid.NewString()
	m.Date = time.Now().Format("2006-01-02")
}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var req BeamRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := beam.Calculate(req.Input)
	if err != nil {
		h.reject(w, err)
		return
	}
	stamp(&req.Meta)
	data, err := BeamPDF(req.Meta, req.Input, res)
	h.send(w, "beam", req.Reference, data, err)
}

func (h *Handler) Column(w http.ResponseWriter, r *http.Request) {
	var req ColumnRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := column.Calculate(req.Input)
	if err != nil {
		h.reject(w, err)
		return
	}
	stamp(&req.Meta)
	data, err := ColumnPDF(req.Meta, req.Input, res)
	h.send(w, "column", req.Reference, data, err)
}

func (h *Handler) BOQ(w http.ResponseWriter, r *http.Request) {
	var req BOQRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Input.TaxRate == nil && h.TaxRate > 0 {
		rate := h.TaxRate
		req.Input.TaxRate = &rate
	}
	res, err := boq.CalculateFloorwise(req.Input)
	if err != nil {
		h.reject(w, err)
		return
	}
	stamp(&req.Meta)
	data, err := BOQPDF(req.Meta, res)
	h.send(w, "boq", req.Reference, data, err)
}

func (h *Handler) reject(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, is456.ErrInvalidInput) || errors.Is(err, boq.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	respond.Error(w, status, err.Error())
}

func (h *Handler) send(w http.ResponseWriter, kind, ref string, data []byte, err error) {
	if err != nil {
		if h.Log != nil {
			h.Log.Error("report generation failed", zap.String("kind", kind), zap.String("ref", ref), zap.Error(err))
		}
		respond.Error(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-%s.pdf\"", kind, ref[:8]))
	w.Write(data)
}
