package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// PDFDocumentService implements PDFService: text extraction through
// ledongthuc/pdf and annotation through pdfcpu.
type PDFDocumentService struct {
	logger Logger
}

// NewPDFDocumentService creates a PDF service.
func NewPDFDocumentService(logger Logger) *PDFDocumentService {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &PDFDocumentService{logger: logger}
}

// ExtractText implements PDFService.ExtractText, concatenating the plain
// text of every page. Pages that fail to decode are skipped rather than
// failing the document.
func (s *PDFDocumentService) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.WrapError(err, errors.ErrTypeValidation, errors.ErrCodePDFExtraction,
			"failed to open PDF")
	}

	var b strings.Builder
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			s.logger.Warn("skipping undecodable PDF page",
				Int("page", i), ErrorField("error", pageErr))
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", errors.NewValidationError(errors.ErrCodePDFNoText,
			"no selectable text could be extracted from this PDF", nil)
	}

	return b.String(), nil
}

// Annotate implements PDFService.Annotate. Each page is stamped with the
// detection legend listing every label and its aggregate share.
func (s *PDFDocumentService) Annotate(ctx context.Context, data []byte, analysis *models.DetectionAnalysis) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wm, err := api.TextWatermark(
		legendText(analysis),
		"fontname:Helvetica, points:9, pos:bc, off:0 12, fillcol:#333333, rot:0, scale:0.9 abs",
		true,  // on top of the page content
		false, // add, do not update
		types.POINTS,
	)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodePDFAnnotation,
			"failed to build annotation stamp")
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(data), &out, nil, wm, conf); err != nil {
		return nil, errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodePDFAnnotation,
			"failed to annotate PDF")
	}

	return out.Bytes(), nil
}

// legendText renders the per-label percentages in display order.
func legendText(analysis *models.DetectionAnalysis) string {
	parts := make([]string, 0, len(models.KnownLabels))
	for _, label := range models.KnownLabels {
		parts = append(parts, fmt.Sprintf("%s: %.1f%%", label, analysis.Percentages[label]))
	}
	return "AI content analysis | " + strings.Join(parts, " | ")
}
