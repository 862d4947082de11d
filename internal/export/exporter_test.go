package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/imageproc"
	"portfolioservice/internal/models"
)

type drawOp struct {
	page     int
	text     string
	fontSize float64
	pos      Point
	size     Size
	img      *imageproc.Image
}

type fakeDocument struct {
	pages  int
	texts  []drawOp
	images []drawOp
	reject func(*imageproc.Image) bool
}

func (d *fakeDocument) NewPage(Size) { d.pages++ }

func (d *fakeDocument) DrawText(pos Point, fontSize float64, text string) error {
	d.texts = append(d.texts, drawOp{page: d.pages, pos: pos, fontSize: fontSize, text: text})
	return nil
}

func (d *fakeDocument) PrepareImage(img *imageproc.Image) error {
	if d.reject != nil && d.reject(img) {
		return errors.New("image rejected")
	}
	return nil
}

func (d *fakeDocument) DrawImage(pos Point, size Size, img *imageproc.Image) error {
	d.images = append(d.images, drawOp{page: d.pages, pos: pos, size: size, img: img})
	return nil
}

func (d *fakeDocument) Serialize() ([]byte, error) { return []byte("doc"), nil }

type memoryStore map[string][]byte

func (m memoryStore) Read(_ context.Context, ref string) ([]byte, error) {
	data, ok := m[ref]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return data, nil
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func testLogo() *imageproc.Image {
	return &imageproc.Image{Format: imageproc.FormatPNG, Width: 100, Height: 50}
}

func newTestExporter(store AttachmentReader, logo *imageproc.Image) (*Exporter, *fakeDocument) {
	doc := &fakeDocument{}
	e := NewExporter(store, logo, time.Minute)
	e.newDocument = func() Document { return doc }
	return e, doc
}

func logoDraws(doc *fakeDocument, logo *imageproc.Image) []drawOp {
	var out []drawOp
	for _, op := range doc.images {
		if op.img == logo {
			out = append(out, op)
		}
	}
	return out
}

func samplePortfolio() *models.Portfolio {
	method := "Safe isolation"
	return &models.Portfolio{
		Title:    "Install consumer unit",
		Unit:     models.Unit{Number: "301", Title: "Electrical installation"},
		Criteria: models.Criteria{Number: "1.1", Description: "Identify hazards"},
		Method:   &method,
	}
}

func TestRender_NoAttachments(t *testing.T) {
	logo := testLogo()
	e, doc := newTestExporter(memoryStore{}, logo)

	res, err := e.Render(context.Background(), samplePortfolio(), "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Install consumer unit.pdf", res.Filename)
	assert.Equal(t, []byte("doc"), res.Data)

	assert.Equal(t, 1, doc.pages)
	require.Len(t, doc.texts, 11)
	assert.Equal(t, drawOp{page: 1, text: "Student Name: Ada Lovelace", fontSize: 18, pos: Point{X: 200, Y: 750}}, doc.texts[0])
	assert.Equal(t, Point{X: 50, Y: 720}, doc.texts[1].pos)
	assert.Equal(t, "Unit: 301 - Electrical installation", doc.texts[2].text)
	assert.Equal(t, "Method: Safe isolation", doc.texts[4].text)
	assert.Equal(t, "Location: N/A", doc.texts[5].text)
	assert.Equal(t, "Comments: N/A", doc.texts[10].text)
	assert.Equal(t, Point{X: 50, Y: 530}, doc.texts[10].pos)

	logos := logoDraws(doc, logo)
	require.Len(t, logos, 1)
	assert.Equal(t, Point{X: 450, Y: 30}, logos[0].pos)
	assert.Equal(t, LogoSize, logos[0].size)
}

func TestRender_MissingOwnerName(t *testing.T) {
	e, doc := newTestExporter(memoryStore{}, nil)

	_, err := e.Render(context.Background(), samplePortfolio(), "")
	require.NoError(t, err)
	assert.Equal(t, "Student Name: N/A", doc.texts[0].text)
	assert.Empty(t, doc.images)
}

func TestRender_SkipsBadAttachments(t *testing.T) {
	logo := testLogo()
	store := memoryStore{
		"uploads/good.jpg":    jpegBytes(t, 20, 10),
		"uploads/corrupt.jpg": []byte("not an image"),
	}
	e, doc := newTestExporter(store, logo)
	p := samplePortfolio()
	p.Images = []string{"uploads/missing.jpg", "uploads/corrupt.jpg", "uploads/good.jpg"}

	_, err := e.Render(context.Background(), p, "Ada")
	require.NoError(t, err)

	require.Len(t, doc.images, 2)
	assert.Equal(t, Size{W: 200, H: 100}, doc.images[0].size)
	assert.Equal(t, Point{X: 200, Y: 390}, doc.images[0].pos)
	assert.Len(t, logoDraws(doc, logo), 1)
}

func TestRender_Paginates(t *testing.T) {
	logo := testLogo()
	store := memoryStore{"uploads/tall.jpg": jpegBytes(t, 40, 60)}
	e, doc := newTestExporter(store, logo)
	p := samplePortfolio()
	p.Images = []string{"uploads/tall.jpg", "uploads/tall.jpg", "uploads/tall.jpg"}

	_, err := e.Render(context.Background(), p, "Ada")
	require.NoError(t, err)

	assert.Equal(t, 2, doc.pages)
	var placed []drawOp
	for _, op := range doc.images {
		if op.img != logo {
			placed = append(placed, op)
		}
	}
	require.Len(t, placed, 3)
	assert.Equal(t, drawOp{page: 1, pos: Point{X: 200, Y: 190}, size: Size{W: 200, H: 300}, img: placed[0].img}, placed[0])
	assert.Equal(t, 2, placed[1].page)
	assert.Equal(t, float64(450), placed[1].pos.Y)
	assert.Equal(t, float64(130), placed[2].pos.Y)

	logos := logoDraws(doc, logo)
	require.Len(t, logos, 2)
	assert.Equal(t, 1, logos[0].page)
	assert.Equal(t, 2, logos[1].page)
}

func TestRender_RejectedImageDoesNotBreakPage(t *testing.T) {
	logo := testLogo()
	store := memoryStore{
		"uploads/tall.jpg":   jpegBytes(t, 40, 60),
		"uploads/taller.jpg": jpegBytes(t, 40, 61),
		"uploads/second.jpg": jpegBytes(t, 40, 14),
	}
	e, doc := newTestExporter(store, logo)
	doc.reject = func(img *imageproc.Image) bool { return img.Height == 61 }
	p := samplePortfolio()
	p.Images = []string{"uploads/tall.jpg", "uploads/taller.jpg", "uploads/second.jpg"}

	_, err := e.Render(context.Background(), p, "Ada")
	require.NoError(t, err)

	assert.Equal(t, 1, doc.pages)
	var placed []drawOp
	for _, op := range doc.images {
		if op.img != logo {
			placed = append(placed, op)
		}
	}
	require.Len(t, placed, 2)
	assert.Equal(t, 60, placed[0].img.Height)
	assert.Equal(t, Point{X: 200, Y: 100}, placed[1].pos)
	assert.Equal(t, 1, placed[1].page)
	assert.Len(t, logoDraws(doc, logo), 1)
}

func TestRender_DefaultLogoOnEveryPage(t *testing.T) {
	logo, err := LoadLogo("")
	require.NoError(t, err)
	assert.Equal(t, imageproc.FormatPNG, logo.Format)

	store := memoryStore{"uploads/tall.jpg": jpegBytes(t, 40, 60)}
	e, doc := newTestExporter(store, logo)
	p := samplePortfolio()
	p.Images = []string{"uploads/tall.jpg", "uploads/tall.jpg", "uploads/tall.jpg"}

	_, err = e.Render(context.Background(), p, "Ada")
	require.NoError(t, err)

	require.Equal(t, 2, doc.pages)
	logos := logoDraws(doc, logo)
	require.Len(t, logos, 2)
	for i, op := range logos {
		assert.Equal(t, i+1, op.page)
		assert.Equal(t, Point{X: 450, Y: 30}, op.pos)
	}
}

func TestLoadLogo_ConfiguredPathMissing(t *testing.T) {
	_, err := LoadLogo(filepath.Join(t.TempDir(), "absent.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender_ClampsTallImages(t *testing.T) {
	store := memoryStore{"uploads/strip.jpg": jpegBytes(t, 10, 100)}
	e, doc := newTestExporter(store, nil)
	p := samplePortfolio()
	p.Images = []string{"uploads/strip.jpg"}

	_, err := e.Render(context.Background(), p, "Ada")
	require.NoError(t, err)

	require.Len(t, doc.images, 1)
	assert.Equal(t, 2, doc.pages)
	assert.Equal(t, Size{W: 65, H: 650}, doc.images[0].size)
	assert.Equal(t, Point{X: 267.5, Y: 100}, doc.images[0].pos)
}

func TestRender_Cancelled(t *testing.T) {
	store := memoryStore{"uploads/a.jpg": jpegBytes(t, 10, 10)}
	e, _ := newTestExporter(store, nil)
	p := samplePortfolio()
	p.Images = []string{"uploads/a.jpg"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Render(ctx, p, "Ada")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender_PDF(t *testing.T) {
	logoData := jpegBytes(t, 100, 50)
	logo, err := imageproc.Normalize(logoData)
	require.NoError(t, err)

	store := memoryStore{"uploads/a.jpg": jpegBytes(t, 40, 30)}
	e := NewExporter(store, logo, time.Minute)
	p := samplePortfolio()
	p.Title = "Évaluation: unit 301"
	p.Images = []string{"uploads/a.jpg", "uploads/a.jpg", "uploads/a.jpg"}

	res, err := e.Render(context.Background(), p, "Zoë")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.Data, []byte("%PDF")))
	assert.Equal(t, "Évaluation unit 301.pdf", res.Filename)
}
