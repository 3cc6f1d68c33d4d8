package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the acting user's id injected by the Auth middleware and
// fast-fails before any service call. A missing id means the route was wired
// without the middleware or the token carried no subject; either way the
// request is unusable.
func ctxActor(c echo.Context) (string, error) {
	actorID, _ := c.Get("user_id").(string)
	if actorID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actorID, nil
}
