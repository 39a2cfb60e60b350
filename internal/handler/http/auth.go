package http

import (
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", result.User.ID).Msg("account registered")
	h.writeSuccess(w, r, http.StatusCreated, "Registration successful", result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Login successful", result)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), request)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrInvalidToken, ErrInvalidRefreshToken))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Token refreshed successfully", pair)
}

// forgotPassword answers the same way whether or not the email is known.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ForgotPasswordRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), request); err != nil {
		h.writeError(w, r, refine(err, service.ErrNotificationFailed, ErrResetEmailFailed))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "If an account with that email exists, a password reset link has been sent", nil)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ResetPasswordRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), request); err != nil {
		h.writeError(w, r, refine(err, service.ErrInvalidOrExpiredToken, ErrInvalidResetToken))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Password has been reset successfully", nil)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var request models.VerifyEmailRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.VerifyEmail(r.Context(), request)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrInvalidOrExpiredToken, ErrInvalidVerificationToken))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Email verified successfully", userPayload{User: account})
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.ResendVerification(r.Context(), currentAccount(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Verification email sent", nil)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	account, err := h.services.UserService.GetAccount(r.Context(), currentAccount(r).ID)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", userPayload{User: account})
}

// logout is stateless: tokens stay valid until they expire and the client
// discards them.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Str("account_id", currentAccount(r).ID).Msg("logout")
	h.writeSuccess(w, r, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.LoginAdmin(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Admin login successful", result)
}

func (h *Handler) adminRegister(w http.ResponseWriter, r *http.Request) {
	var request models.AdminRegisterRequest
	if err := decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.RegisterAdmin(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", account.ID).Msg("admin registered")
	h.writeSuccess(w, r, http.StatusCreated, "Admin registered successfully", userPayload{User: account})
}
