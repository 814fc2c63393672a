package controllers

import (
	"net/http"

	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"
)

// AuthController handles registration and login for users and admins
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register handles user registration
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	resp, err := ac.Auth.RegisterUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// Login handles user login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	resp, err := ac.Auth.LoginUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RegisterAdmin creates an admin account guarded by the admin secret key
func (ac *AuthController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	resp, err := ac.Auth.RegisterAdmin(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// LoginAdmin handles admin login
func (ac *AuthController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	resp, err := ac.Auth.LoginAdmin(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
