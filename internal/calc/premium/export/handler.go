package export

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Nirman/internal/calc/boq"
	"Nirman/internal/calc/respond"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Log     *zap.Logger
	TaxRate float64
}

// BOQ streams the floor-wise estimate as an xlsx attachment.
func (h *Handler) BOQ(w http.ResponseWriter, r *http.Request) {
	in, err := (&boq.Handler{TaxRate: h.TaxRate}).Decode(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := boq.CalculateFloorwise(in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, boq.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		respond.Error(w, status, err.Error())
		return
	}
	ref := uuid.NewString()
	data, err := BOQWorkbook(res, Meta{Reference: ref, Date: time.Now().Format("2006-01-02")})
	if err != nil {
		if h.Log != nil {
			h.Log.Error("boq workbook failed", zap.String("ref", ref), zap.Error(err))
		}
		respond.Error(w, http.StatusInternalServerError, "Workbook generation error")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"boq-%s.xlsx\"", ref[:8]))
	w.Write(data)
}
