package middleware

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// Validator checks requests against doc before they reach the handlers.
// Requests for paths the document does not describe pass through untouched.
func Validator(doc *openapi3.T, errorHandler func(w http.ResponseWriter, r *http.Request, err error)) (func(http.Handler) http.Handler, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		// responses and auth are not part of request validation
		ExcludeResponseBody: true,
		AuthenticationFunc:  openapi3filter.NoopAuthenticationFunc,
		MultiError:          false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				// unknown path or method, leave the 404/405 to the router
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					next.ServeHTTP(w, r)
					return
				}
				errorHandler(w, r, err)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
