package formbind

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

// DefaultMaxMemory is the memory limit for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// InputFromRequest collects request values into an input bag.
//
// Query parameters and form fields are merged the way http.Request.Form
// merges them. JSON body fields replace query parameters, and chi URL
// parameters replace everything else. Keys with several values, or with a
// "[]" suffix, become []string lists; other keys hold a single string.
func InputFromRequest(r *http.Request) (validator.Input, error) {
	input := validator.Input{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "application/json":
		addValues(input, r.URL.Query())
		if err := addJSON(input, r); err != nil {
			return nil, err
		}
	case strings.HasPrefix(mediaType, "multipart/form-data"):
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		addValues(input, r.Form)
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		addValues(input, r.Form)
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			input[key] = rctx.URLParams.Values[i]
		}
	}
	return input, nil
}

func addValues(input validator.Input, values map[string][]string) {
	for key, vs := range values {
		name, list := strings.CutSuffix(key, "[]")
		if name == "" {
			continue
		}
		if !list && len(vs) == 1 {
			input[name] = vs[0]
			continue
		}
		input[name] = append([]string(nil), vs...)
	}
}

// addJSON merges the fields of a JSON object body. Nested objects are kept
// as is and will fail any scalar type check.
func addJSON(input validator.Input, r *http.Request) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	for key, v := range body {
		input[key] = v
	}
	return nil
}
