package batch

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/column"
	"Nirman/internal/calc/is456"
)

func beamItem(mu float64) beam.Input {
	return beam.Input{MuKNM: mu, VuKN: 80, WidthMM: 230, DepthMM: 450, CoverMM: 30, Fck: 25, Fy: 500}
}

func TestCalculateBeam(t *testing.T) {
	res, err := CalculateBeam(BeamBatchInput{Items: []beam.Input{beamItem(80), beamItem(150), beamItem(800)}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("results = %d", len(res.Results))
	}
	if len(res.Failed) != 1 || res.Failed[0] != 2 {
		t.Errorf("failed = %v, want [2]", res.Failed)
	}
	if res.Status != is456.StatusFail {
		t.Errorf("status = %s", res.Status)
	}
	if res.Results[1].Summary.DesignType != beam.Doubly {
		t.Errorf("item 1 type = %s", res.Results[1].Summary.DesignType)
	}
}

func TestCalculateBeamAbortsOnInvalid(t *testing.T) {
	bad := beamItem(80)
	bad.Fy = 600
	_, err := CalculateBeam(BeamBatchInput{Items: []beam.Input{beamItem(80), bad}})
	if !errors.Is(err, is456.ErrInvalidInput) {
		t.Fatalf("error = %v", err)
	}
	if !strings.HasPrefix(err.Error(), "item 1:") {
		t.Errorf("error %q does not name the item", err)
	}
}

func TestBatchSize(t *testing.T) {
	if _, err := CalculateColumn(ColumnBatchInput{}); !errors.Is(err, is456.ErrInvalidInput) {
		t.Errorf("empty batch error = %v", err)
	}
	items := make([]beam.Input, MaxItems+1)
	if _, err := CalculateBeam(BeamBatchInput{Items: items}); !errors.Is(err, is456.ErrInvalidInput) {
		t.Errorf("oversized batch error = %v", err)
	}
}

func TestCalculateColumn(t *testing.T) {
	items := []column.Input{
		{PuKN: 1200, MuxKNM: 80, MuyKNM: 10, WidthMM: 300, DepthMM: 450, LengthMM: 3000, Fck: 25, Fy: 415, CoverMM: 40},
		{PuKN: 1500, WidthMM: 300, DepthMM: 300, LengthMM: 3000, Fck: 20, Fy: 415, CoverMM: 40},
	}
	res, err := CalculateColumn(ColumnBatchInput{Items: items})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != is456.StatusOK || len(res.Failed) != 0 {
		t.Errorf("status = %s, failed = %v", res.Status, res.Failed)
	}
	if res.Results[1].Design.Type != column.Axial {
		t.Errorf("item 1 type = %s", res.Results[1].Design.Type)
	}
}

func TestHandlerColumn(t *testing.T) {
	h := &Handler{}
	body := `{"items":[{"pu_kn":1500,"width_mm":300,"depth_mm":300,"length_mm":3000,"fck":20,"fy":415,"cover_mm":40}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/column/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Column(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/tools/beam/batch", strings.NewReader(`{"items":[]}`))
	rec = httptest.NewRecorder()
	h.Beam(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty batch status = %d", rec.Code)
	}
}
