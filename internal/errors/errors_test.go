package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, ErrNoDataLoaded)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_DATA_LOADED", resp.Error.ErrorCode)
}

func TestErrValidation(t *testing.T) {
	err := ErrValidation("origin", "Origin airport is required")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode)

	details, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "origin", details.Field)
}

func TestSheetNotFoundError(t *testing.T) {
	err := SheetNotFoundError(fmt.Errorf("sheet %q missing", "Airline Bids"))

	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.Equal(t, "SHEET_NOT_FOUND", err.ErrorCode)
	assert.Contains(t, err.Details, "Airline Bids")
}

func TestAppError(t *testing.T) {
	cause := fmt.Errorf("row 12 unreadable")
	err := NewParsingError("failed to parse bid sheet", cause)

	assert.Equal(t, "[PARSING] failed to parse bid sheet: row 12 unreadable", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(cause, ErrTypeParsing))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotFoundError("no bid set loaded", nil).
		WithContext("operation", "overview")

	assert.Equal(t, "overview", err.Context["operation"])
	assert.Equal(t, "[NOT_FOUND] no bid set loaded", err.Error())
}
