package university

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnector struct {
	universities []entity.University
	err          error
}

func (f *fakeConnector) Search(context.Context, string) ([]entity.University, error) {
	return f.universities, f.err
}

func search(c *fakeConnector, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(c, validator.NewValidator(config.FileUploadConfig{MaxFileSize: 1})))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearch(t *testing.T) {
	c := &fakeConnector{universities: []entity.University{{Name: "Massachusetts Institute of Technology", Country: "United States"}}}

	rec := search(c, "/universities/search?query=massachusetts")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []entity.University
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "United States", resp[0].Country)
}

func TestSearch_Errors(t *testing.T) {
	rec := search(&fakeConnector{}, "/universities/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = search(&fakeConnector{err: errors.New("connection refused")}, "/universities/search?query=mit")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
