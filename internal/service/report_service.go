package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/marketplace-ledger/internal/model"
	"github.com/nurpe/marketplace-ledger/internal/repository"
)

type ExcelGenerator interface {
	Generate(statement model.ClientsStatement) ([]byte, error)
}

type PDFGenerator interface {
	Generate(statement model.ClientsStatement) ([]byte, error)
}

type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ReportService aggregates paid-job totals per client over a date window.
type ReportService struct {
	repo         *repository.ReportRepository
	excel        ExcelGenerator
	pdf          PDFGenerator
	defaultLimit int
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewReportService(repo *repository.ReportRepository, excel ExcelGenerator, pdf PDFGenerator, defaultLimit int) *ReportService {
	return &ReportService{
		repo:         repo,
		excel:        excel,
		pdf:          pdf,
		defaultLimit: defaultLimit,
	}
}

// BestProfession returns the profession of the client who paid the most
// for jobs within the window. Ties go to the smaller client id.
func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (string, error) {
	from, toExclusive := s.window(start, end)
	rows, err := s.repo.TopClientsByPaidTotal(ctx, from, toExclusive, 1)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}
	return rows[0].Profession, nil
}

// BestClients returns up to limit clients ordered by paid total
// descending; an empty window yields an empty (non-error) result.
func (s *ReportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.BestClient, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	from, toExclusive := s.window(start, end)
	rows, err := s.repo.TopClientsByPaidTotal(ctx, from, toExclusive, limit)
	if err != nil {
		return nil, err
	}

	clients := make([]model.BestClient, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, model.BestClient{
			ID:        row.ClientID,
			FullName:  row.FirstName + " " + row.LastName,
			TotalPaid: row.TotalPaid,
		})
	}
	return clients, nil
}

// ExportBestClients renders the best-clients report as a downloadable
// statement in the requested format.
func (s *ReportService) ExportBestClients(ctx context.Context, start, end time.Time, limit int, format ExportFormat) (*ExportResult, error) {
	clients, err := s.BestClients(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}

	from, toExclusive := s.window(start, end)
	statement := model.ClientsStatement{
		PeriodStart: from,
		PeriodEnd:   toExclusive.Add(-24 * time.Hour),
		Clients:     clients,
	}

	switch format {
	case ExportFormatXLSX:
		content, err := s.excel.Generate(statement)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			FileName:    buildFileName(statement, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Generate(statement)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			FileName:    buildFileName(statement, "pdf"),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
	}
}

// window normalizes the inclusive [start, end] date pair into the
// half-open [from, toExclusive) range the repository works with.
// Defaults: start = Unix epoch, end = today (UTC).
func (s *ReportService) window(start, end time.Time) (time.Time, time.Time) {
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	return dateOnly(start), dateOnly(end).Add(24 * time.Hour)
}

func buildFileName(statement model.ClientsStatement, extension string) string {
	period := fmt.Sprintf("%s-%s",
		statement.PeriodStart.Format("20060102"),
		statement.PeriodEnd.Format("20060102"))
	return strings.ToLower(fmt.Sprintf("best-clients-%s.%s", period, extension))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
