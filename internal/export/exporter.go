// Package export renders portfolios as paginated PDF documents.
package export

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/imageproc"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
)

var (
	PageSize = Size{W: 600, H: 800}
	LogoSize = Size{W: 100, H: 50}
)

const (
	topY          = 750
	leftMargin    = 50
	footerReserve = 100
	imageWidth    = 200
	imageSpacing  = 20
	logoInsetX    = 150
	logoY         = 30
	maxImageH     = topY - footerReserve
)

type AttachmentReader interface {
	Read(ctx context.Context, ref string) ([]byte, error)
}

type Exporter struct {
	store       AttachmentReader
	logo        *imageproc.Image
	timeout     time.Duration
	newDocument func() Document
}

// NewExporter builds an exporter. A nil logo leaves the footer area empty.
func NewExporter(store AttachmentReader, logo *imageproc.Image, timeout time.Duration) *Exporter {
	return &Exporter{
		store:       store,
		logo:        logo,
		timeout:     timeout,
		newDocument: NewPDFDocument,
	}
}

type textLine struct {
	x, size, advance float64
	text             string
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func textLines(p *models.Portfolio, ownerName string) []textLine {
	if ownerName == "" {
		ownerName = "N/A"
	}
	return []textLine{
		{x: 200, size: 18, advance: 30, text: "Student Name: " + ownerName},
		{x: leftMargin, size: 14, advance: 30, text: p.Title},
		{x: leftMargin, size: 12, advance: 20, text: fmt.Sprintf("Unit: %s - %s", p.Unit.Number, p.Unit.Title)},
		{x: leftMargin, size: 12, advance: 20, text: fmt.Sprintf("Criteria: %s - %s", p.Criteria.Number, p.Criteria.Description)},
		{x: leftMargin, size: 12, advance: 20, text: "Method: " + orNA(p.Method)},
		{x: leftMargin, size: 12, advance: 20, text: "Location: " + orNA(p.Postcode)},
		{x: leftMargin, size: 12, advance: 20, text: "Task Description: " + orNA(p.TaskDescription)},
		{x: leftMargin, size: 12, advance: 20, text: "Job Type: " + orNA(p.JobType)},
		{x: leftMargin, size: 12, advance: 20, text: "Reason For Task: " + orNA(p.ReasonForTask)},
		{x: leftMargin, size: 12, advance: 20, text: "Objective Of Job: " + orNA(p.ObjectiveOfJob)},
		{x: leftMargin, size: 12, advance: 40, text: "Comments: " + orNA(p.Comments)},
	}
}

// scaledSize fits an image to the fixed width, shrinking it further when it
// would be taller than the usable page height.
func scaledSize(img *imageproc.Image) Size {
	if img.Width <= 0 || img.Height <= 0 {
		return Size{}
	}
	w := float64(imageWidth)
	h := float64(img.Height) * w / float64(img.Width)
	if h > maxImageH {
		w = w * maxImageH / h
		h = maxImageH
	}
	return Size{W: w, H: h}
}

// Render lays out the portfolio text, then its images in order, closing every
// page with the footer logo. Attachments that cannot be read or decoded are skipped.
func (e *Exporter) Render(ctx context.Context, p *models.Portfolio, ownerName string) (*models.ExportedDocument, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	logger := logging.FromContext(ctx)

	doc := e.newDocument()
	doc.NewPage(PageSize)
	y := float64(topY)

	for _, line := range textLines(p, ownerName) {
		if err := doc.DrawText(Point{X: line.x, Y: y}, line.size, line.text); err != nil {
			return nil, fmt.Errorf("draw text: %v: %w", err, errdefs.ErrDependency)
		}
		y -= line.advance
	}

	for _, ref := range p.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := e.store.Read(ctx, ref)
		if err != nil {
			logger.Warn(ctx, "Skipping unreadable attachment", zap.String("ref", ref), zap.Error(err))
			continue
		}
		img, err := imageproc.Normalize(data)
		if err != nil {
			logger.Warn(ctx, "Skipping undecodable attachment", zap.String("ref", ref), zap.Error(err))
			continue
		}
		size := scaledSize(img)
		if size.H == 0 {
			logger.Warn(ctx, "Skipping empty attachment", zap.String("ref", ref))
			continue
		}

		if err := doc.PrepareImage(img); err != nil {
			logger.Warn(ctx, "Skipping attachment the document rejected", zap.String("ref", ref), zap.Error(err))
			continue
		}

		if y-size.H < footerReserve {
			if err := e.drawLogo(doc); err != nil {
				return nil, err
			}
			doc.NewPage(PageSize)
			y = topY
		}

		pos := Point{X: (PageSize.W - size.W) / 2, Y: y - size.H}
		if err := doc.DrawImage(pos, size, img); err != nil {
			logger.Warn(ctx, "Skipping attachment the document rejected", zap.String("ref", ref), zap.Error(err))
			continue
		}
		y -= size.H + imageSpacing
	}

	if err := e.drawLogo(doc); err != nil {
		return nil, err
	}
	data, err := doc.Serialize()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errdefs.ErrDependency)
	}
	return &models.ExportedDocument{
		Filename: SanitizeFilename(p.Title) + ".pdf",
		Data:     data,
	}, nil
}

func (e *Exporter) drawLogo(doc Document) error {
	if e.logo == nil {
		return nil
	}
	pos := Point{X: PageSize.W - logoInsetX, Y: logoY}
	if err := doc.DrawImage(pos, LogoSize, e.logo); err != nil {
		return fmt.Errorf("draw footer logo: %v: %w", err, errdefs.ErrDependency)
	}
	return nil
}
