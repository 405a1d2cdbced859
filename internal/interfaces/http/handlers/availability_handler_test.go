package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "staff-roster.backend/internal/domain/errors"
)

func slot(day int, start, end string) map[string]any {
	return map[string]any{"day_of_week": day, "start_time": start, "end_time": end}
}

func TestAvailabilityHandler_NestedCreateMirrorsShape(t *testing.T) {
	s := newTestServer(t)
	id := s.createEmployee("Ada", "Lovelace", "ada@example.com")
	other := s.createEmployee("Grace", "Hopper", "grace@example.com")
	path := "/api/employees/" + id + "/availability/"

	single := slot(0, "09:00", "17:00")
	single["employee"] = other
	w := s.do(http.MethodPost, path, single)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	obj := decode[map[string]any](t, w)
	assert.Equal(t, id, obj["employee"], "path employee wins over the body")
	assert.Equal(t, "Monday", obj["day_of_week_display"])
	assert.Equal(t, "09:00:00", obj["start_time"])
	assert.Equal(t, "Ada Lovelace", obj["employee_name"])

	w = s.do(http.MethodPost, path, []any{slot(1, "08:00", "12:00"), slot(1, "13:00", "18:00")})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "13:00:00", list[1]["start_time"])

	w = s.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 3)

	w = s.do(http.MethodGet, "/api/employees/"+id+"/", nil)
	assert.Len(t, decode[map[string]any](t, w)["availability"], 3)
}

func TestAvailabilityHandler_NestedCreateReplacesAnyEmployeeValue(t *testing.T) {
	s := newTestServer(t)
	id := s.createEmployee("Ada", "Lovelace", "ada@example.com")
	path := "/api/employees/" + id + "/availability/"

	for i, value := range []any{42, true, map[string]any{"id": 1}, []any{"x"}} {
		body := slot(i, "09:00:00", "10:00:00")
		body["employee"] = value
		w := s.do(http.MethodPost, path, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, id, decode[map[string]any](t, w)["employee"])
	}
}

func TestAvailabilityHandler_NestedBatchIsAllOrNothing(t *testing.T) {
	s := newTestServer(t)
	id := s.createEmployee("Ada", "Lovelace", "ada@example.com")
	path := "/api/employees/" + id + "/availability/"

	w := s.do(http.MethodPost, path, []any{
		slot(2, "09:00", "12:00"),
		slot(2, "14:00", "13:00"),
		slot(9, "09:00", "10:00"),
		slot(2, "09:00", "11:00"),
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	report := decode[[]map[string][]string](t, w)
	require.Len(t, report, 4)
	assert.Empty(t, report[0])
	assert.Equal(t, []string{domainerrors.MsgEndBeforeStart}, report[1]["end_time"])
	assert.Equal(t, []string{`"9" is not a valid choice.`}, report[2]["day_of_week"])
	assert.Equal(t, []string{domainerrors.MsgSlotTaken}, report[3][domainerrors.NonFieldErrorsKey])

	w = s.do(http.MethodGet, path, nil)
	assert.Empty(t, decode[[]map[string]any](t, w))

	w = s.do(http.MethodPost, "/api/employees/0190b0d8-0000-7000-8000-000000000000/availability/", slot(0, "09:00", "10:00"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodGet, "/api/employees/0190b0d8-0000-7000-8000-000000000000/availability/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailabilityHandler_TopLevelCRUD(t *testing.T) {
	s := newTestServer(t)
	emp := s.createEmployee("Ada", "Lovelace", "ada@example.com")

	body := slot(4, "10:00", "14:00")
	body["employee"] = emp
	w := s.do(http.MethodPost, "/api/availability/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, true, created["is_available"])
	id := created["id"].(string)

	w = s.do(http.MethodPost, "/api/availability/", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{domainerrors.MsgSlotTaken}, decode[map[string][]string](t, w)[domainerrors.NonFieldErrorsKey])

	w = s.do(http.MethodPatch, "/api/availability/"+id+"/", map[string]any{"end_time": "09:00"})
	require.Equal(t, http.StatusBadRequest, w.Code, "patched end must still follow the stored start")
	assert.Equal(t, []string{domainerrors.MsgEndBeforeStart}, decode[map[string][]string](t, w)["end_time"])

	w = s.do(http.MethodPatch, "/api/availability/"+id+"/", map[string]any{"end_time": "18:30", "is_available": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[map[string]any](t, w)
	assert.Equal(t, "18:30:00", patched["end_time"])
	assert.Equal(t, false, patched["is_available"])

	w = s.do(http.MethodPut, "/api/availability/"+id+"/", map[string]any{"day_of_week": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string][]string](t, w), "employee")

	w = s.do(http.MethodDelete, "/api/availability/"+id+"/", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/availability/"+id+"/", nil).Code)
}

func TestAvailabilityHandler_CreateValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/availability/", map[string]any{
		"employee":    "nope",
		"day_of_week": "monday",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{domainerrors.MsgInvalidInteger}, decode[map[string][]string](t, w)["day_of_week"])

	w = s.do(http.MethodPost, "/api/availability/", map[string]any{
		"employee":   "0190b0d8-0000-7000-8000-000000000000",
		"start_time": "25:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	report := decode[map[string][]string](t, w)
	assert.Equal(t, []string{`Invalid pk "0190b0d8-0000-7000-8000-000000000000" - object does not exist.`}, report["employee"])
	assert.Equal(t, []string{domainerrors.MsgRequired}, report["day_of_week"])
	assert.Equal(t, []string{domainerrors.MsgInvalidTime}, report["start_time"])
	assert.Equal(t, []string{domainerrors.MsgRequired}, report["end_time"])

	w = s.do(http.MethodPost, "/api/availability/", map[string]any{
		"employee":    42,
		"day_of_week": 0,
		"start_time":  "09:00",
		"end_time":    "10:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Incorrect type. Expected pk value, received int."}, decode[map[string][]string](t, w)["employee"])
}

func TestAvailabilityHandler_ListFilters(t *testing.T) {
	s := newTestServer(t)
	ada := s.createEmployee("Ada", "Lovelace", "ada@example.com")
	grace := s.createEmployee("Grace", "Hopper", "grace@example.com")
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/employees/"+ada+"/availability/",
		[]any{slot(0, "09:00", "17:00"), slot(2, "09:00", "17:00")}).Code)
	off := slot(0, "12:00", "20:00")
	off["is_available"] = false
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/employees/"+grace+"/availability/", off).Code)

	type page struct {
		Count   int              `json:"count"`
		Results []map[string]any `json:"results"`
	}

	w := s.do(http.MethodGet, "/api/availability/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[page](t, w).Count)

	w = s.do(http.MethodGet, "/api/availability/?day_of_week=0", nil)
	assert.Equal(t, 2, decode[page](t, w).Count)

	w = s.do(http.MethodGet, "/api/availability/?employee="+ada, nil)
	assert.Equal(t, 2, decode[page](t, w).Count)

	w = s.do(http.MethodGet, "/api/availability/?is_available=false", nil)
	res := decode[page](t, w)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Grace Hopper", res.Results[0]["employee_name"])

	w = s.do(http.MethodGet, "/api/availability/?ordering=-start_time", nil)
	assert.Equal(t, "12:00:00", decode[page](t, w).Results[0]["start_time"])

	for _, q := range []string{"day_of_week=7", "day_of_week=x", "employee=nope", "employee=0190b0d8-0000-7000-8000-000000000000", "is_available=perhaps"} {
		w = s.do(http.MethodGet, "/api/availability/?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
