package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/mocks"
	"portfolioservice/internal/models"
)

func passthrough(next http.Handler) http.Handler { return next }

func rejectAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorJSON(w, http.StatusUnauthorized, "unauthorized")
	})
}

func setup(t *testing.T) (*chi.Mux, *mocks.MockPortfolioService, *mocks.MockApplicationService, *mocks.MockUserService) {
	ctrl := gomock.NewController(t)
	portfolios := mocks.NewMockPortfolioService(ctrl)
	applications := mocks.NewMockApplicationService(ctrl)
	users := mocks.NewMockUserService(ctrl)

	r := chi.NewRouter()
	r.Route("/api/portfolios", func(r chi.Router) {
		NewPortfolioHandler(portfolios, 2).RegisterRoutes(r, passthrough)
	})
	r.Route("/api/applications", func(r chi.Router) {
		NewApplicationHandler(applications).RegisterRoutes(r, passthrough)
	})
	r.Route("/api/users", func(r chi.Router) {
		NewUserHandler(users).RegisterRoutes(r, passthrough)
	})
	return r, portfolios, applications, users
}

type formFile struct {
	name    string
	content string
}

func multipartBody(t *testing.T, fields map[string][]string, files []formFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vals := range fields {
		for _, v := range vals {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(imagesField, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"Malformed", fmt.Errorf("unit: %w", errdefs.ErrMalformedInput), http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotFound", fmt.Errorf("portfolio: %w", errdefs.ErrNotFound), http.StatusNotFound},
		{"InvalidTransition", errdefs.ErrInvalidTransition, http.StatusConflict},
		{"AlreadyExists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"Dependency", errdefs.ErrDependency, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"test error"}`, w.Body.String())
}

func TestPortfolioHandler_Create(t *testing.T) {
	t.Run("Multipart", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		created := &models.Portfolio{ID: uuid.New(), Title: "Wiring", Status: models.StatusDraft}

		portfolios.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.CreatePortfolioInput) (*models.Portfolio, error) {
				assert.Equal(t, "Wiring", in.Title)
				assert.Equal(t, `{"number":"301","title":"Install"}`, in.Unit)
				require.NotNil(t, in.Method)
				assert.Equal(t, "Isolate", *in.Method)
				assert.Nil(t, in.Postcode)
				require.NotNil(t, in.DateTime)
				assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), *in.DateTime)
				require.Len(t, in.Images, 1)
				assert.Equal(t, "photo.jpg", in.Images[0].Filename)
				data, err := io.ReadAll(in.Images[0].Content)
				require.NoError(t, err)
				assert.Equal(t, "jpeg-bytes", string(data))
				return created, nil
			})

		body, contentType := multipartBody(t, map[string][]string{
			"title":    {"Wiring"},
			"unit":     {`{"number":"301","title":"Install"}`},
			"criteria": {`{"number":"1.1","description":"Hazards"}`},
			"Method":   {"Isolate"},
			"dateTime": {"2024-03-01T09:30"},
		}, []formFile{{"photo.jpg", "jpeg-bytes"}})
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, "Portfolio saved successfully", resp["message"])
		assert.Equal(t, created.ID.String(), resp["portfolio"].(map[string]any)["id"])
	})

	t.Run("LowercaseMethod", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.CreatePortfolioInput) (*models.Portfolio, error) {
				require.NotNil(t, in.Method)
				assert.Equal(t, "Test", *in.Method)
				return &models.Portfolio{}, nil
			})

		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}, "method": {"Test"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("TooManyFiles", func(t *testing.T) {
		r, _, _, _ := setup(t)
		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}},
			[]formFile{{"a.jpg", "a"}, {"b.jpg", "b"}, {"c.jpg", "c"}})
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "at most 2 images")
	})

	t.Run("BadDateTime", func(t *testing.T) {
		r, _, _, _ := setup(t)
		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}, "dateTime": {"yesterday"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ValidationError", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: missing required fields: unit", errdefs.ErrValidation))

		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "missing required fields: unit")
	})

	t.Run("InternalErrorHidesDetail", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: disk full", errdefs.ErrDependency))

		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/save", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeBody(t, rec)["error"])
	})
}

func TestPortfolioHandler_Update(t *testing.T) {
	id := uuid.New()

	t.Run("OnlyProvidedFields", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.UpdatePortfolioInput) (*models.Portfolio, error) {
				assert.Equal(t, id, in.ID)
				require.NotNil(t, in.Status)
				assert.Equal(t, "To Be Reviewed", *in.Status)
				assert.Nil(t, in.Title)
				require.NotNil(t, in.ExistingImages)
				assert.Equal(t, `["uploads/a.jpg"]`, *in.ExistingImages)
				assert.Len(t, in.Images, 1)
				return &models.Portfolio{ID: id}, nil
			})

		body, contentType := multipartBody(t, map[string][]string{
			"status":         {"To Be Reviewed"},
			"existingImages": {`["uploads/a.jpg"]`},
		}, []formFile{{"b.png", "png"}})
		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/"+id.String(), body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Portfolio updated successfully", decodeBody(t, rec)["message"])
	})

	t.Run("RepeatedExistingImages", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.UpdatePortfolioInput) (*models.Portfolio, error) {
				require.NotNil(t, in.ExistingImages)
				assert.JSONEq(t, `["uploads/a.jpg","uploads/b.jpg"]`, *in.ExistingImages)
				return &models.Portfolio{ID: id}, nil
			})

		body, contentType := multipartBody(t, map[string][]string{
			"existingImages": {"uploads/a.jpg", "uploads/b.jpg"},
		}, nil)
		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/"+id.String(), body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("URLEncoded", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.UpdatePortfolioInput) (*models.Portfolio, error) {
				require.NotNil(t, in.Title)
				assert.Equal(t, "Renamed", *in.Title)
				assert.Empty(t, in.Images)
				return &models.Portfolio{ID: id}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/"+id.String(), strings.NewReader("title=Renamed"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrNotFound)

		body, contentType := multipartBody(t, map[string][]string{"title": {"x"}}, nil)
		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/"+id.String(), body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		r, _, _, _ := setup(t)
		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/not-a-uuid", strings.NewReader(""))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPortfolioHandler_Feedback(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in *models.FeedbackInput) (*models.Portfolio, error) {
				assert.Equal(t, id, in.ID)
				assert.Equal(t, "Reviewed", in.Status)
				require.NotNil(t, in.AssessorComments)
				assert.Equal(t, "Add photos", *in.AssessorComments)
				return &models.Portfolio{ID: id, Status: models.StatusReviewed}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/"+id.String()+"/feedback",
			strings.NewReader(`{"assessorComments":"Add photos","status":"Reviewed"}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Feedback submitted and status updated", decodeBody(t, rec)["message"])
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		r, _, _, _ := setup(t)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/"+id.String()+"/feedback", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrPermissionDenied)

		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/"+id.String()+"/feedback", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("StrictTransition", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/"+id.String()+"/feedback", strings.NewReader(`{"status":"Approved"}`))
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPortfolioHandler_Reads(t *testing.T) {
	id := uuid.New()

	t.Run("Get", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Get(gomock.Any(), id).Return(&models.Portfolio{ID: id, Title: "Wiring"}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/"+id.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Wiring", decodeBody(t, rec)["title"])
	})

	t.Run("AssessorPath", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Get(gomock.Any(), id).Return(&models.Portfolio{ID: id}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/assessor/"+id.String(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ListMine", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().ListMine(gomock.Any()).Return([]*models.Portfolio{{ID: id}}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/user-portfolios", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("ListForAssessor", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		assessor := uuid.New()
		owner := &models.Owner{ID: uuid.New(), Name: "Sam", Email: "sam@example.com"}
		portfolios.EXPECT().ListForAssessor(gomock.Any(), assessor).
			Return([]*models.PortfolioWithOwner{{Portfolio: &models.Portfolio{ID: id}, User: owner}}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/assessor-portfolios/"+assessor.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, id.String(), list[0]["id"])
		assert.Equal(t, "Sam", list[0]["user"].(map[string]any)["name"])
	})

	t.Run("ListAllForbidden", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().ListAll(gomock.Any()).Return(nil, errdefs.ErrPermissionDenied)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/admin/all", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/portfolios/"+id.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Portfolio deleted successfully", decodeBody(t, rec)["message"])
	})
}

func TestPortfolioHandler_Export(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Export(gomock.Any(), id).
			Return(&models.ExportedDocument{Filename: "Wiring.pdf", Data: []byte("%PDF-1.3")}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/"+id.String()+"/export-pdf", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=Wiring.pdf`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "8", rec.Header().Get("Content-Length"))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		r, portfolios, _, _ := setup(t)
		portfolios.EXPECT().Export(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/"+id.String()+"/export-pdf", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthMiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := chi.NewRouter()
	r.Route("/api/portfolios", func(r chi.Router) {
		NewPortfolioHandler(mocks.NewMockPortfolioService(ctrl), 10).RegisterRoutes(r, rejectAll)
	})
	applications := mocks.NewMockApplicationService(ctrl)
	r.Route("/api/applications", func(r chi.Router) {
		NewApplicationHandler(applications).RegisterRoutes(r, rejectAll)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/user-portfolios", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applications", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	applications.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&models.Application{ID: uuid.New()}, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{"firstName":"Ada"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestApplicationHandler(t *testing.T) {
	t.Run("Submit", func(t *testing.T) {
		r, _, applications, _ := setup(t)
		applications.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, form *models.ApplicationForm) (*models.Application, error) {
				assert.Equal(t, "Ada", form.FirstName)
				assert.Equal(t, "Level 3 Electrical", form.CourseToStudy)
				return &models.Application{ID: uuid.New(), ApplicationForm: *form}, nil
			})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/applications",
			strings.NewReader(`{"firstName":"Ada","courseToStudy":"Level 3 Electrical"}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Application submitted successfully", decodeBody(t, rec)["message"])
	})

	t.Run("SubmitInvalidEmail", func(t *testing.T) {
		r, _, applications, _ := setup(t)
		applications.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: invalid fields: email", errdefs.ErrValidation))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{"email":"nope"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("List", func(t *testing.T) {
		r, _, applications, _ := setup(t)
		applications.EXPECT().List(gomock.Any()).Return([]*models.Application{{ID: uuid.New()}}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applications", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("GetMissing", func(t *testing.T) {
		r, _, applications, _ := setup(t)
		id := uuid.New()
		applications.EXPECT().Get(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applications/"+id.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler(t *testing.T) {
	r, _, _, users := setup(t)
	users.EXPECT().ListAccounts(gomock.Any()).
		Return([]*models.Account{{ID: uuid.New(), Name: "Ann", Role: models.RoleAssessor}}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0]["name"])
}
