package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.True(t, stderrors.Is(notFound, ErrNotFound))

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)
	assert.Equal(t, "db down", internal.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	noWrapped := &AppError{Message: "plain"}
	assert.Equal(t, "plain", noWrapped.Error())
}

func TestValidationError_FieldKeyed(t *testing.T) {
	assert.NoError(t, NewValidationError(FieldErrors{}))

	fields := FieldErrors{}
	fields.Add("email", "An employee with this email already exists.")
	fields.Add("email", "second")
	fields.Add("end_time", "End time must be after start time.")
	require.True(t, fields.Has("email"))
	require.False(t, fields.Has("hourly_rate"))
	assert.Equal(t, []string{"email", "end_time"}, fields.Fields())

	err := fmt.Errorf("create employee: %w", NewValidationError(fields))
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields["email"], 2)
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.Equal(t, fields, ve.Body())
}

func TestBatchValidationError(t *testing.T) {
	assert.NoError(t, NewBatchValidationError([]FieldErrors{nil, {}}))

	err := NewBatchValidationError([]FieldErrors{nil, {"end_time": {"bad"}}})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	items, ok := ve.Body().([]FieldErrors)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Empty(t, items[0])
	assert.Equal(t, []string{"bad"}, items[1]["end_time"])
}

func TestFieldError(t *testing.T) {
	ve, ok := AsValidation(FieldError("skill_ids", "missing"))
	require.True(t, ok)
	assert.Equal(t, []string{"missing"}, ve.Fields["skill_ids"])

	_, ok = AsValidation(stderrors.New("other"))
	assert.False(t, ok)
}
