package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// currentUser rebuilds the authenticated principal from the claims the Auth
// middleware injected. Every board/note operation requires it; a request
// that reaches a handler without a resolvable user is rejected outright.
func currentUser(c echo.Context) (*domain.User, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	kind, _ := c.Get("account_kind").(string)
	if kind == "" {
		kind = string(domain.KindOrdinary)
	}

	return &domain.User{
		ID:    id,
		Email: email,
		Kind:  domain.AccountKind(kind),
	}, nil
}
