package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/auth/login (public)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/auth/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(h.log, w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RegisterUser handles POST /api/admin/users (admin only)
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register user")
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// ChangePassword handles PUT /api/auth/password (protected)
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID.String(), &req); err != nil {
		handleServiceError(h.log, w, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SetSecurityQuestion handles PUT /api/auth/security-question (protected)
func (h *AuthHandler) SetSecurityQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SetSecurityQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetSecurityQuestion(r.Context(), userID.String(), &req); err != nil {
		handleServiceError(h.log, w, err, "set security question")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetSecurityQuestion handles GET /api/auth/security-question?username= (public)
func (h *AuthHandler) GetSecurityQuestion(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	question, err := h.service.GetSecurityQuestion(r.Context(), username)
	if err != nil {
		handleServiceError(h.log, w, err, "get security question")
		return
	}

	utils.ResponseSuccess(w, "success", question)
}

// RequestRecoveryToken handles POST /api/auth/recovery (public)
func (h *AuthHandler) RequestRecoveryToken(w http.ResponseWriter, r *http.Request) {
	var req request.RequestRecoveryTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.service.RequestRecoveryToken(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "request recovery token")
		return
	}

	utils.ResponseSuccess(w, "success", token)
}

// ResetPassword handles POST /api/auth/reset-password (public)
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
