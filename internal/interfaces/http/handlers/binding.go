package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/pkg/utils"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their json name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the request body into dst, turning decoder and validator
// failures into field-keyed validation errors.
func bindJSON(c *gin.Context, dst any) error {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		fields := domainerrors.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fe.Field(), validationMessage(fe))
		}
		return domainerrors.NewValidationError(fields)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return domainerrors.FieldError(field, typeMessage(typeErr))
	case errors.As(err, &synErr):
		return domainerrors.FieldError("detail", fmt.Sprintf(domainerrors.MsgInvalidJSON, synErr.Error()))
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return domainerrors.FieldError("detail", fmt.Sprintf(domainerrors.MsgInvalidJSON, "unexpected end of input"))
	default:
		return domainerrors.FieldError("detail", fmt.Sprintf(domainerrors.MsgInvalidJSON, err.Error()))
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		return fmt.Sprintf(domainerrors.MsgMaxLength, n)
	case "email":
		return domainerrors.MsgInvalidEmail
	case "required":
		return domainerrors.MsgRequired
	default:
		return fe.Error()
	}
}

func typeMessage(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Ptr:
		return typeMessage(&json.UnmarshalTypeError{Value: e.Value, Type: e.Type.Elem()})
	case reflect.String:
		return domainerrors.MsgInvalidString
	case reflect.Bool:
		return domainerrors.MsgInvalidBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domainerrors.MsgInvalidInteger
	case reflect.Float32, reflect.Float64:
		return domainerrors.MsgInvalidNumber
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf(domainerrors.MsgInvalidList, jsonTypeName(e.Value))
	default:
		return domainerrors.MsgInvalidString
	}
}

func jsonTypeName(value string) string {
	switch value {
	case "string":
		return "str"
	case "number":
		return "int"
	case "bool":
		return "bool"
	case "object":
		return "dict"
	default:
		return value
	}
}

// pathID parses the :id style parameter. Malformed ids cannot match a row,
// so they are reported as not found.
func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}
	return id, nil
}

// listQuery holds the query parameters shared by every list endpoint.
type listQuery struct {
	Search   string
	Ordering []string
	Page     utils.PaginationParams
}

func parseListQuery(c *gin.Context) (listQuery, error) {
	q := listQuery{Search: strings.TrimSpace(c.Query("search"))}
	for _, part := range strings.Split(c.Query("ordering"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			q.Ordering = append(q.Ordering, part)
		}
	}

	errs := domainerrors.FieldErrors{}
	page, ok := queryInt(errs, c, "page", 1)
	limit, ok2 := queryInt(errs, c, "limit", 0)
	if !ok || !ok2 {
		return q, domainerrors.NewValidationError(errs)
	}
	q.Page = utils.GetPaginationParams(page, limit)
	return q, nil
}

func queryInt(errs domainerrors.FieldErrors, c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, domainerrors.MsgInvalidInteger)
		return 0, false
	}
	return n, true
}

// queryBool accepts the spellings a browsable client sends for a boolean
// filter. An absent parameter leaves the filter unset.
func queryBool(c *gin.Context, name string) (value, set bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	switch strings.ToLower(raw) {
	case "":
		return false, false, nil
	case "true", "1":
		return true, true, nil
	case "false", "0":
		return false, true, nil
	}
	return false, false, domainerrors.FieldError(name, domainerrors.MsgInvalidBoolean)
}

func queryUUIDs(c *gin.Context, name string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, domainerrors.FieldError(name, fmt.Sprintf(domainerrors.MsgFilterChoice, part))
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
