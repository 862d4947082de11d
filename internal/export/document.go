package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"portfolioservice/internal/imageproc"
)

// Point is a position in layout units with the origin at the bottom-left of the page.
type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Document is the drawing surface the exporter lays pages out on.
// PrepareImage checks that img can be embedded without drawing it.
type Document interface {
	NewPage(size Size)
	DrawText(pos Point, fontSize float64, text string) error
	PrepareImage(img *imageproc.Image) error
	DrawImage(pos Point, size Size, img *imageproc.Image) error
	Serialize() ([]byte, error)
}

type pdfDocument struct {
	pdf        *fpdf.Fpdf
	translate  func(string) string
	pageHeight float64
	imageCount int
	images     map[*imageproc.Image]string
}

// NewPDFDocument returns a Document backed by fpdf using points as the unit.
func NewPDFDocument() Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: PageSize.W, Ht: PageSize.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &pdfDocument{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		images:    make(map[*imageproc.Image]string),
	}
}

func (d *pdfDocument) NewPage(size Size) {
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.W, Ht: size.H})
	d.pdf.SetFont("Helvetica", "", 12)
	d.pageHeight = size.H
}

func (d *pdfDocument) DrawText(pos Point, fontSize float64, text string) error {
	d.pdf.SetFontSize(fontSize)
	d.pdf.Text(pos.X, d.pageHeight-pos.Y, d.translate(text))
	return d.takeError()
}

func (d *pdfDocument) PrepareImage(img *imageproc.Image) error {
	_, err := d.register(img)
	return err
}

// DrawImage places img with its bottom-left corner at pos. An image is
// registered once and reused on later draws.
func (d *pdfDocument) DrawImage(pos Point, size Size, img *imageproc.Image) error {
	name, err := d.register(img)
	if err != nil {
		return err
	}
	return d.place(name, img.Format, pos, size)
}

func (d *pdfDocument) register(img *imageproc.Image) (string, error) {
	if name, ok := d.images[img]; ok {
		return name, nil
	}
	d.imageCount++
	name := fmt.Sprintf("image-%d", d.imageCount)
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: img.Format}, bytes.NewReader(img.Data))
	if err := d.takeError(); err != nil {
		return "", fmt.Errorf("register image: %w", err)
	}
	d.images[img] = name
	return name, nil
}

func (d *pdfDocument) place(name, format string, pos Point, size Size) error {
	opts := fpdf.ImageOptions{ImageType: format}
	d.pdf.ImageOptions(name, pos.X, d.pageHeight-pos.Y-size.H, size.W, size.H, false, opts, 0, "")
	if err := d.takeError(); err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	return nil
}

// takeError returns and clears the sticky fpdf error so later drawing still works.
func (d *pdfDocument) takeError() error {
	if !d.pdf.Err() {
		return nil
	}
	err := d.pdf.Error()
	d.pdf.ClearError()
	return err
}

func (d *pdfDocument) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}
