package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 1024

type fakeUsecase struct {
	profile      *entity.Profile
	getErr       error
	upserted     *entity.ProfileInput
	deleted      string
	parseErr     error
	parsedName   string
	parsedData   []byte
	parseResults map[string]any
}

func (f *fakeUsecase) GetProfile(_ context.Context, email string) (*entity.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeUsecase) UpsertProfile(_ context.Context, input *entity.ProfileInput) (*entity.Profile, error) {
	f.upserted = input
	id := "p1"
	return &entity.Profile{ID: &id, Email: input.Email}, nil
}

func (f *fakeUsecase) DeleteAccount(_ context.Context, email string) error {
	f.deleted = email
	return nil
}

func (f *fakeUsecase) ParseResume(_ context.Context, filename string, data []byte) (map[string]any, error) {
	f.parsedName = filename
	f.parsedData = data
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.parseResults, nil
}

func newRouter(uc *fakeUsecase) http.Handler {
	r := chi.NewRouter()
	v := validator.NewValidator(config.FileUploadConfig{MaxFileSize: testMaxFileSize})
	RegisterRoutes(r, NewHandler(uc, v, testMaxFileSize))
	return r
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/parse-cv", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetProfile_MissingReturnsEmptyObject(t *testing.T) {
	uc := &fakeUsecase{getErr: entity.ErrProfileNotFound}
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/a@x.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestGetProfile(t *testing.T) {
	id := "p1"
	uc := &fakeUsecase{profile: &entity.Profile{ID: &id, Email: "a@x.com", GPA: "3.8"}}
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/a@x.com", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entity.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "3.8", resp.GPA)
}

func TestUpsertProfile(t *testing.T) {
	uc := &fakeUsecase{}
	rec := httptest.NewRecorder()
	body := `{"email":"a@x.com","gpa":3.8,"test_scores":{"ielts":7.5}}`

	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profile/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entity.ProfileUpsertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Profile saved successfully", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "a@x.com", resp.Data.Email)
	require.NotNil(t, uc.upserted)
}

func TestUpsertProfile_RequiresEmail(t *testing.T) {
	uc := &fakeUsecase{}
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profile/", strings.NewReader(`{"name":"A"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.upserted)
}

func TestDeleteAccount(t *testing.T) {
	uc := &fakeUsecase{}
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/profile/a@x.com", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Account deleted successfully"}`, rec.Body.String())
	assert.Equal(t, "a@x.com", uc.deleted)
}

func TestParseCV(t *testing.T) {
	uc := &fakeUsecase{parseResults: map[string]any{"name": "Asha", "gpa": "3.8"}}
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, multipartRequest(t, "file", "resume.txt", []byte("Asha, GPA 3.8")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resume.txt", uc.parsedName)
	assert.Equal(t, "Asha, GPA 3.8", string(uc.parsedData))
	assert.JSONEq(t, `{"name":"Asha","gpa":"3.8"}`, rec.Body.String())
}

func TestParseCV_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		content  []byte
		parseErr error
		status   int
	}{
		{"unsupported extension", "file", "resume.exe", []byte("x"), nil, http.StatusBadRequest},
		{"missing file field", "document", "resume.pdf", []byte("x"), nil, http.StatusBadRequest},
		{"file too large", "file", "resume.txt", bytes.Repeat([]byte("a"), testMaxFileSize+1), nil, http.StatusBadRequest},
		{"no extractable text", "file", "resume.txt", []byte("x"), entity.ErrEmptyDocument, http.StatusBadRequest},
		{"generation failed", "file", "resume.txt", []byte("x"), entity.ErrGenerationFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{parseErr: tt.parseErr}
			rec := httptest.NewRecorder()

			newRouter(uc).ServeHTTP(rec, multipartRequest(t, tt.field, tt.filename, tt.content))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
