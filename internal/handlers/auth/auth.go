package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	pkgauth "github.com/GlebRadaev/ordertracker/pkg/auth"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, userID int, password string) (*domain.Session, error)
}

type AuthHandler struct {
	authService  Service
	secureCookie bool
}

func New(authService Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Checks the shared password and sets the session cookie for the chosen user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		req.UserID = domain.UserAlex
	}

	session, err := h.authService.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Success:   true,
		UserID:    session.UserID,
		UserName:  domain.UserName(session.UserID),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Clears the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Router			/api/auth [delete]
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{Success: true})
}
