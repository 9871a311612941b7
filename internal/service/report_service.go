package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type SummaryStore interface {
	LocalbodyStats(ctx context.Context, from, to time.Time) ([]model.LocalbodyStat, error)
}

type SummaryExcelGenerator interface {
	Generate(summary model.BillingSummary) ([]byte, error)
}

type SummaryPDFGenerator interface {
	Generate(summary model.BillingSummary) ([]byte, error)
}

type ReportService struct {
	store SummaryStore
	excel SummaryExcelGenerator
	pdf   SummaryPDFGenerator
}

func NewReportService(store SummaryStore, excel SummaryExcelGenerator, pdf SummaryPDFGenerator) *ReportService {
	return &ReportService{store: store, excel: excel, pdf: pdf}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// BillingSummary aggregates the calendar month containing now. The scan
// is read-only and runs without locking; it reflects records committed
// before it started.
func (s *ReportService) BillingSummary(ctx context.Context, principal model.Principal, now time.Time) (*model.BillingSummary, error) {
	if !(principal.IsCollector() || principal.IsAdmin() || principal.IsSuperAdmin()) {
		return nil, ErrPermissionDenied
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)

	stats, err := s.store.LocalbodyStats(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &model.BillingSummary{
		PeriodStart: start,
		PeriodEnd:   end,
		Localbodies: stats,
	}
	for _, stat := range stats {
		summary.TotalWeightKG += stat.TotalWeightKG
		summary.TotalRevenue += stat.TotalRevenue
		summary.CollectionCount += stat.CollectionCount
	}
	return summary, nil
}

func (s *ReportService) ExportXLSX(ctx context.Context, principal model.Principal, now time.Time) (*ExportResult, error) {
	summary, err := s.BillingSummary(ctx, principal, now)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildExportFileName(*summary, "xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context, principal model.Principal, now time.Time) (*ExportResult, error) {
	summary, err := s.BillingSummary(ctx, principal, now)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildExportFileName(*summary, "pdf"),
		Content:  content,
	}, nil
}

func buildExportFileName(summary model.BillingSummary, ext string) string {
	return fmt.Sprintf("billing-summary-%s.%s", summary.PeriodStart.Format("200601"), ext)
}
