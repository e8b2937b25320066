package beam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Nirman/internal/calc/is456"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "doubly reinforced",
			body:       `{"mu_knm":150,"vu_kn":80,"width_mm":230,"depth_mm":450,"cover_mm":30,"fck":25,"fy":500}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var res Result
				if err := json.Unmarshal(body, &res); err != nil {
					t.Fatal(err)
				}
				if res.Summary.DesignType != Doubly {
					t.Errorf("design type = %s", res.Summary.DesignType)
				}
				if res.Summary.Status == is456.StatusFail {
					t.Errorf("unexpected FAIL: %+v", res.Summary)
				}
			},
		},
		{
			name:       "missing moment",
			body:       `{"vu_kn":80,"width_mm":230,"depth_mm":450,"cover_mm":30,"fck":25,"fy":500}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var e struct {
					Error string `json:"error"`
				}
				if err := json.Unmarshal(body, &e); err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(e.Error, "mu_knm") {
					t.Errorf("error = %q", e.Error)
				}
			},
		},
		{
			name:       "non-numeric field",
			body:       `{"mu_knm":"lots"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tools/beam/calc", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Calc(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}
