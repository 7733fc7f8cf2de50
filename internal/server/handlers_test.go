package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/nutrition"
)

type stubAnalyzer struct {
	product *models.Product
	err     error
}

func (s *stubAnalyzer) AnalyzeMeal(context.Context, string) (*models.Product, error) {
	return s.product, s.err
}

type stubLookup struct {
	product *models.Product
	err     error
}

func (s *stubLookup) ProductByBarcode(context.Context, string) (*models.Product, error) {
	return s.product, s.err
}

func TestHandleAnalyzeMeal(t *testing.T) {
	srv := New(&stubAnalyzer{
		product: &models.Product{Name: "Pasta", Calories: 450, Protein: 15, Carbs: 70, Fat: 12},
	}, &stubLookup{})

	req := httptest.NewRequest(http.MethodPost, "/analyze-meal",
		strings.NewReader(`{"imageBase64": "aGVsbG8="}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Pasta", got.Name)
	assert.Equal(t, 450.0, got.Calories)
}

func TestHandleAnalyzeMeal_BadRequest(t *testing.T) {
	srv := New(&stubAnalyzer{}, &stubLookup{})

	for _, body := range []string{"", "{}", "{not json"} {
		req := httptest.NewRequest(http.MethodPost, "/analyze-meal", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestHandleAnalyzeMeal_UpstreamFailure(t *testing.T) {
	srv := New(&stubAnalyzer{err: errors.New("model overloaded")}, &stubLookup{})

	req := httptest.NewRequest(http.MethodPost, "/analyze-meal",
		strings.NewReader(`{"imageBase64": "aGVsbG8="}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI analysis failed")
}

func TestHandleLookup(t *testing.T) {
	srv := New(&stubAnalyzer{}, &stubLookup{
		product: &models.Product{Name: "Porridge Oats", Calories: 374},
	})

	req := httptest.NewRequest(http.MethodGet, "/lookup/5012345678900", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Porridge Oats")
}

func TestHandleLookup_NotFound(t *testing.T) {
	srv := New(&stubAnalyzer{}, &stubLookup{err: nutrition.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/lookup/0000000000000", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLookup_UpstreamFailure(t *testing.T) {
	srv := New(&stubAnalyzer{}, &stubLookup{err: errors.New("timeout")})

	req := httptest.NewRequest(http.MethodGet, "/lookup/5012345678900", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := New(&stubAnalyzer{}, &stubLookup{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
