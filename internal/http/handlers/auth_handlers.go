package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/tawsil-app/ops-dashboard/internal/auth"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate an operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds UserLogin
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "could not fetch user", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	auth.SetRefreshToken(user.Username, token)

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RefreshHandler godoc
// @Summary Exchange the current token for a fresh one
// @Description The presented token must still be valid and must be the one
// @Description issued at login; a mismatch revokes the stored token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid or unrecognized token"
// @Router /refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	authorization := r.Header.Get("Authorization")
	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	username, _ := claims["username"].(string)

	presented := strings.TrimPrefix(authorization, "Bearer ")
	stored, ok := auth.RefreshTokens()[username]
	if !ok || stored != presented {
		// A valid JWT that is not the stored one means the stored token
		// leaked or was already rotated; revoke it either way.
		auth.DeleteRefreshToken(username)
		http.Error(w, "token not recognized", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByUsername(username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	auth.SetRefreshToken(user.Username, token)

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RegisterHandler godoc
// @Summary Register a new operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}
	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		http.Error(w, "username or password too short", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
		Role:         auth.RoleViewer,
	}
	if _, err := userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
		} else {
			http.Error(w, "failed to register user", http.StatusInternalServerError)
		}
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
