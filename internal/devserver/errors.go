// errors.go - Error responses in the backend's wire format
package devserver

import "github.com/labstack/echo/v4"

// Failure is the backend's error body: a single human-readable detail
// message, the shape clients parse on upload failure.
type Failure struct {
	Detail string `json:"detail"`
}

func fail(c echo.Context, status int, detail string) error {
	return c.JSON(status, Failure{Detail: detail})
}
