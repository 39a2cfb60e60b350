package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/utils"
)

// errorResponse is the client facing form of an error.
type errorResponse struct {
	status  int
	title   string
	message string
}

var internalError = errorResponse{
	status:  http.StatusInternalServerError,
	title:   "Internal Server Error",
	message: "Something went wrong. Please try again later.",
}

// errorResponses is checked top to bottom with errors.Is, so refined errors
// must precede the service sentinel they wrap.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{ErrRouteNotFound, errorResponse{http.StatusNotFound, "Route not found", "The requested route does not exist"}},
	{ErrHypercarNotFound, errorResponse{http.StatusNotFound, "Hypercar not found", "The requested hypercar does not exist"}},
	{ErrUserNotFound, errorResponse{http.StatusNotFound, "User not found", "The requested user does not exist"}},
	{ErrComparedNotFound, errorResponse{http.StatusNotFound, "No hypercars found", "The specified hypercars were not found"}},
	{service.ErrNotFound, errorResponse{http.StatusNotFound, "Resource not found", "The requested resource does not exist"}},

	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, "Invalid request body", "Request body must be a valid JSON object"}},
	{utils.ErrEmptyBody, errorResponse{http.StatusBadRequest, "Invalid request body", "Request body is required"}},
	{service.ErrValidationFailed, errorResponse{http.StatusBadRequest, "Validation failed", "Please check the submitted fields"}},
	{service.ErrEmptyUpdate, errorResponse{http.StatusBadRequest, "Validation failed", "No updatable fields were provided"}},
	{service.ErrCompareIDsRequired, errorResponse{http.StatusBadRequest, "Hypercar IDs required", "Please provide 2 to 4 hypercar IDs to compare"}},
	{service.ErrUnsupportedContentType, errorResponse{http.StatusBadRequest, "Unsupported content type", "Images must be JPEG, PNG or WebP"}},

	{service.ErrDuplicateAccount, errorResponse{http.StatusConflict, "User already exists", "An account with this email already exists"}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect"}},
	{service.ErrAccountLocked, errorResponse{http.StatusLocked, "Account locked", "Your account has been temporarily locked due to multiple failed login attempts. Please try again later."}},
	{service.ErrAccountInactive, errorResponse{http.StatusUnauthorized, "Account deactivated", "Your account has been deactivated. Please contact support."}},

	{ErrMissingToken, errorResponse{http.StatusUnauthorized, "Access denied. No token provided.", "Please provide a valid authentication token"}},
	{ErrInvalidRefreshToken, errorResponse{http.StatusUnauthorized, "Invalid refresh token", "The refresh token is invalid or expired"}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, "Invalid token.", "The provided token is invalid or expired"}},
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, "Access denied.", "Authentication is required"}},
	{service.ErrForbidden, errorResponse{http.StatusForbidden, "Access denied.", "You do not have permission to perform this action"}},

	{ErrInvalidResetToken, errorResponse{http.StatusBadRequest, "Invalid or expired token", "Password reset token is invalid or has expired"}},
	{ErrInvalidVerificationToken, errorResponse{http.StatusBadRequest, "Invalid or expired token", "Email verification token is invalid or has expired"}},
	{service.ErrInvalidOrExpiredToken, errorResponse{http.StatusBadRequest, "Invalid or expired token", "The token is invalid or has expired"}},
	{service.ErrAlreadyVerified, errorResponse{http.StatusBadRequest, "Email already verified", "This email address has already been verified"}},

	{ErrResetEmailFailed, errorResponse{http.StatusInternalServerError, "Email sending failed", "Failed to send password reset email. Please try again later."}},
	{service.ErrNotificationFailed, errorResponse{http.StatusInternalServerError, "Email sending failed", "Failed to send email. Please try again later."}},

	{service.ErrMediaDisabled, errorResponse{http.StatusServiceUnavailable, "Image uploads unavailable", "Image uploads are not configured on this server"}},
	{ErrTooManyRequests, errorResponse{http.StatusTooManyRequests, "Too many requests", "Too many requests, please try again later"}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.response
		}
	}
	return internalError
}
