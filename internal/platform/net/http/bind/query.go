package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "hugin/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

// ParseQuery decodes r.URL.Query() into T via `query` struct tags, then
// validates the result with the singleton validator. Supported field kinds:
// string, bool, int, int64, float64 and []string (repeated keys plus
// comma-separated values). Unparseable scalars keep the zero value rather
// than failing, so a hand-edited query string degrades instead of erroring;
// only validation failures surface
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	values := r.URL.Query()

	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag := f.Tag.Get("query")
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		raw, ok := values[tag]
		if !ok || len(raw) == 0 {
			continue
		}
		setQueryField(rv.Field(i), raw)
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var zero T
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			return zero, perr.JSONErrf("validation error: %v", inv)
		}
		_, msg := ValidationFieldAndMessage(err)
		return zero, perr.Newf(perr.ErrorCodeValidation, "%s", msg)
	}
	return dst, nil
}

func setQueryField(fv reflect.Value, raw []string) {
	first := strings.TrimSpace(raw[0])
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(first)
	case reflect.Bool:
		switch strings.ToLower(first) {
		case "1", "true", "yes", "on":
			fv.SetBool(true)
		}
	case reflect.Int, reflect.Int64:
		if n, err := strconv.ParseInt(first, 10, 64); err == nil {
			fv.SetInt(n)
		}
	case reflect.Float64:
		if n, err := strconv.ParseFloat(first, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return
		}
		var out []string
		for _, r := range raw {
			for _, part := range strings.Split(r, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
		fv.Set(reflect.ValueOf(out))
	}
}
