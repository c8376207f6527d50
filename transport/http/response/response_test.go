package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"rentdesk/shared/failure"
	"rentdesk/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	t.Run("failure keeps its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithError(rec, failure.NotFound("booking not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, rec.Body.String())
	})

	t.Run("unexpected errors are masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithError(rec, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"b-1"}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithFile(rec, "application/pdf", "invoice INV-7.pdf", []byte("%PDF"))

	assert.Equal(t, `attachment; filename="invoice INV-7.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", rec.Body.String())
}
