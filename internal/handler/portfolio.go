package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolioservice/internal/export"
	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
)

const (
	imagesField     = "images"
	multipartMemory = 32 << 20
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type PortfolioHandler struct {
	svc      PortfolioService
	maxFiles int
}

func NewPortfolioHandler(svc PortfolioService, maxFiles int) *PortfolioHandler {
	return &PortfolioHandler{svc: svc, maxFiles: maxFiles}
}

func (h *PortfolioHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/save", h.Create)
		r.Get("/user-portfolios", h.ListMine)
		r.Get("/admin/all", h.ListAll)
		r.Get("/assessor-portfolios/{assessorId}", h.ListForAssessor)
		r.Get("/assessor/{id}", h.Get)
		r.Post("/{id}/feedback", h.SubmitFeedback)
		r.Get("/{id}/export-pdf", h.Export)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeServiceError(w, r, "create portfolio", err)
		return
	}
	uploads, closeFiles, err := h.openUploads(r)
	if err != nil {
		writeServiceError(w, r, "create portfolio", err)
		return
	}
	defer closeFiles()

	in := &models.CreatePortfolioInput{
		Title:           r.PostForm.Get("title"),
		Unit:            r.PostForm.Get("unit"),
		LearningOutcome: r.PostForm.Get("learningOutcome"),
		Criteria:        r.PostForm.Get("criteria"),
		LinkedCriteria:  r.PostForm.Get("linkedCriteria"),
		Narrative:       narrativeFromForm(r),
		Status:          r.PostForm.Get("status"),
		Images:          uploads,
	}
	if raw := r.PostForm.Get("dateTime"); raw != "" {
		dt, err := parseDateTime(raw)
		if err != nil {
			writeServiceError(w, r, "create portfolio", err)
			return
		}
		in.DateTime = &dt
	}

	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, "create portfolio", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, messageResponse{Message: "Portfolio saved successfully", Portfolio: p})
}

func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "update portfolio", err)
		return
	}
	if err := parseForm(r); err != nil {
		writeServiceError(w, r, "update portfolio", err)
		return
	}
	uploads, closeFiles, err := h.openUploads(r)
	if err != nil {
		writeServiceError(w, r, "update portfolio", err)
		return
	}
	defer closeFiles()

	existing, err := existingImages(r)
	if err != nil {
		writeServiceError(w, r, "update portfolio", err)
		return
	}

	in := &models.UpdatePortfolioInput{
		ID:              id,
		Title:           formValue(r, "title"),
		Unit:            formValue(r, "unit"),
		LearningOutcome: formValue(r, "learningOutcome"),
		Criteria:        formValue(r, "criteria"),
		LinkedCriteria:  formValue(r, "linkedCriteria"),
		Narrative:       narrativeFromForm(r),
		Status:          formValue(r, "status"),
		ExistingImages:  existing,
		Images:          uploads,
	}

	p, err := h.svc.Update(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, "update portfolio", err)
		return
	}
	writeJSON(w, r, http.StatusOK, messageResponse{Message: "Portfolio updated successfully", Portfolio: p})
}

func (h *PortfolioHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "submit feedback", err)
		return
	}
	in := &models.FeedbackInput{}
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		writeServiceError(w, r, "submit feedback", fmt.Errorf("%w: invalid request body", errdefs.ErrMalformedInput))
		return
	}
	in.ID = id

	p, err := h.svc.SubmitFeedback(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, "submit feedback", err)
		return
	}
	writeJSON(w, r, http.StatusOK, messageResponse{Message: "Feedback submitted and status updated", Portfolio: p})
}

func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "delete portfolio", err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "delete portfolio", err)
		return
	}
	writeJSON(w, r, http.StatusOK, messageResponse{Message: "Portfolio deleted successfully"})
}

func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "get portfolio", err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get portfolio", err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (h *PortfolioHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMine(r.Context())
	if err != nil {
		writeServiceError(w, r, "list portfolios", err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (h *PortfolioHandler) ListForAssessor(w http.ResponseWriter, r *http.Request) {
	assessorID, err := parseUUIDParam(r, "assessorId")
	if err != nil {
		writeServiceError(w, r, "list assessor portfolios", err)
		return
	}
	list, err := h.svc.ListForAssessor(r.Context(), assessorID)
	if err != nil {
		writeServiceError(w, r, "list assessor portfolios", err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (h *PortfolioHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, "list all portfolios", err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (h *PortfolioHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeServiceError(w, r, "export portfolio", err)
		return
	}
	doc, err := h.svc.Export(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "export portfolio", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", export.ContentDisposition(doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		logging.FromContext(r.Context()).Warn(r.Context(), "failed to write export", zap.Error(err))
	}
}

// parseForm accepts multipart and urlencoded bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: request body exceeds %d bytes", errdefs.ErrValidation, tooLarge.Limit)
	}
	return fmt.Errorf("%w: invalid form body", errdefs.ErrMalformedInput)
}

func (h *PortfolioHandler) openUploads(r *http.Request) ([]models.Upload, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}
	headers := r.MultipartForm.File[imagesField]
	if len(headers) > h.maxFiles {
		return nil, func() {}, fmt.Errorf("%w: at most %d images may be uploaded", errdefs.ErrValidation, h.maxFiles)
	}

	files := make([]multipart.File, 0, len(headers))
	closeFiles := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	uploads := make([]models.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeFiles()
			return nil, func() {}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		files = append(files, f)
		uploads = append(uploads, models.Upload{Filename: fh.Filename, Content: f})
	}
	return uploads, closeFiles, nil
}

// formValue returns nil when the field was not sent at all.
func formValue(r *http.Request, key string) *string {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func narrativeFromForm(r *http.Request) models.Narrative {
	method := formValue(r, "Method")
	if method == nil {
		method = formValue(r, "method")
	}
	return models.Narrative{
		Statement:       formValue(r, "statement"),
		Postcode:        formValue(r, "postcode"),
		Comments:        formValue(r, "comments"),
		TaskDescription: formValue(r, "taskDescription"),
		JobType:         formValue(r, "jobType"),
		ReasonForTask:   formValue(r, "reasonForTask"),
		ObjectiveOfJob:  formValue(r, "objectiveOfJob"),
		Method:          method,
	}
}

// existingImages takes either one JSON array value or the refs as repeated
// fields and normalises both to a JSON array.
func existingImages(r *http.Request) (*string, error) {
	vals := r.PostForm["existingImages"]
	switch len(vals) {
	case 0:
		return nil, nil
	case 1:
		return &vals[0], nil
	}
	data, err := json.Marshal(vals)
	if err != nil {
		return nil, fmt.Errorf("%w: existingImages", errdefs.ErrMalformedInput)
	}
	s := string(data)
	return &s, nil
}

func parseDateTime(raw string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: dateTime %q", errdefs.ErrMalformedInput, raw)
}
