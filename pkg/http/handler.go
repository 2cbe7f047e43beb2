package http

import "github.com/labstack/echo/v4"

// Handler registers a route group on the server's Echo instance. The server
// accepts any implementation so route surfaces stay decoupled from transport.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
