// Package formbind connects validator sessions to net/http.
//
// InputFromRequest builds an input bag from query parameters, form fields,
// JSON object bodies and chi URL parameters. Middleware validates every
// request against a schema, rejects invalid ones with 422 and makes the
// session available to handlers through FromContext:
//
//	r := chi.NewRouter()
//	r.With(formbind.Middleware(rules)).Post("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		s := formbind.FromContext(r.Context())
//		age := s.Valid["age"].(int)
//		// ...
//	})
//
// Failures a handler leaves unacknowledged are reported to the logger once
// the request finishes.
package formbind
