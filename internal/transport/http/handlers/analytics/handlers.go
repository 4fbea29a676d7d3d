package analyticshandler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hrpulse/internal/domain/auth"
	"hrpulse/internal/domain/evaluation"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
)

type RiskSource interface {
	ActiveWarnings(ctx context.Context) ([]evaluation.RiskEntry, error)
}

type Handler struct {
	Risk RiskSource
}

func NewHandler(risk RiskSource) *Handler {
	return &Handler{Risk: risk}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RiskReaderRoles...)).Group(func(r chi.Router) {
		r.Get("/analytics/department-risk", h.HandleDepartmentRisk)
		r.Get("/analytics/department-risk/export", h.HandleDepartmentRiskExport)
	})
}

// HandleDepartmentRisk lists employees with active warning letters. Resolved
// and revoked warnings never appear.
func (h *Handler) HandleDepartmentRisk(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, err := h.Risk.ActiveWarnings(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_failed", "failed to load department risk", reqID)
		return
	}
	if entries == nil {
		entries = []evaluation.RiskEntry{}
	}
	api.Success(w, entries, reqID)
}

// HandleDepartmentRiskExport renders the same report as a PDF for offline
// review meetings.
func (h *Handler) HandleDepartmentRiskExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, err := h.Risk.ActiveWarnings(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_failed", "failed to load department risk", reqID)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Department Risk Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Severity", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(entries) == 0 {
		pdf.CellFormat(160, 8, "No active warnings", "1", 1, "L", false, 0, "")
	}
	for _, entry := range entries {
		pdf.CellFormat(110, 8, entry.EmployeeID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, entry.Severity, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render report", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="department-risk.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
