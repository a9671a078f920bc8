package auth

import (
	"net/http"

	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

type Handler struct {
	cookieDomain string
}

func NewHandler(cookieDomain string) *Handler {
	return &Handler{cookieDomain: cookieDomain}
}

// Logout clears the session cookie. The identity provider owns the session
// itself; this only drops the token this API reads.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieDomain != "",
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookieDomain != "" {
		cookie.Domain = h.cookieDomain
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
