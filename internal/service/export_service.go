package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/notes"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
	"github.com/tableturnerr/dashboard-api/pkg/export"
)

// Export formats supported by the notes export endpoint.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var notesExportHeaders = []string{"Title", "Status", "Author", "Updated"}

type notesProvider interface {
	Refresh(ctx context.Context) error
	Notes(tab notes.Tab, search string) []models.Note
}

// ExportArtifact is a rendered download.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the filtered notes list into downloadable CSV or PDF
// documents.
type ExportService struct {
	notes  notesProvider
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(provider notesProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		notes:  provider,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// Render re-fetches the notes list, applies the tab + search filter, and
// renders the result in the requested format.
func (s *ExportService) Render(ctx context.Context, tab notes.Tab, search, format string) (*ExportArtifact, error) {
	if err := s.notes.Refresh(ctx); err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: notesExportHeaders}
	for _, note := range s.notes.Notes(tab, search) {
		author := note.AuthorName()
		if author == "" {
			author = "Unknown"
		}
		dataset.Rows = append(dataset.Rows, []string{
			note.Title,
			string(notes.Classify(note)),
			author,
			note.Updated.Format(time.RFC3339),
		})
	}

	filename := fmt.Sprintf("notes-%s.%s", uuid.NewString(), format)
	switch format {
	case FormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return &ExportArtifact{Filename: filename, ContentType: "text/csv", Data: data}, nil
	case FormatPDF:
		data, err := s.pdf.Render(dataset, fmt.Sprintf("Notes (%s)", tab))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return &ExportArtifact{Filename: filename, ContentType: "application/pdf", Data: data}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
