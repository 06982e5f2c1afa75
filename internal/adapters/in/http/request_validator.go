package http

import (
	"errors"
	"fmt"
	"net/http"

	"shiporder/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks API requests against the embedded OpenAPI document
// before they reach the handlers. Paths the document does not describe, such
// as /health or /metrics, pass through untouched.
type RequestValidator struct {
	router routers.Router
}

func NewRequestValidator() (*RequestValidator, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &RequestValidator{router: router}, nil
}

// Validate returns nil for requests outside the documented API.
func (v *RequestValidator) Validate(req *http.Request) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		if errors.Is(err, routers.ErrPathNotFound) {
			return nil
		}
		return err
	}

	return openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
	})
}

func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := v.Validate(c.Request()); err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					return echo.ErrMethodNotAllowed
				}
				return badRequest(c, err.Error())
			}
			return next(c)
		}
	}
}
