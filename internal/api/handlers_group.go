package api

import "Inkstone/internal/api/handler"

// HandlersGroup bundles every handler for router wiring.
type HandlersGroup struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	PostHandler *handler.PostHandler
	RoleHandler *handler.RoleHandler
}
