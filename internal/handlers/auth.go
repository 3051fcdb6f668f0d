package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charlles-dev/Unity-Bank/configs"
	"github.com/charlles-dev/Unity-Bank/internal/httputil"
	"github.com/charlles-dev/Unity-Bank/internal/logger"
	appmw "github.com/charlles-dev/Unity-Bank/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "name and password are required")
		return
	}

	if req.Name != h.tellerName {
		httputil.WriteError(w, http.StatusUnauthorized, "invalid name or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.tellerHash, []byte(req.Password)); err != nil {
		httputil.WriteError(w, http.StatusUnauthorized, "invalid name or password")
		return
	}

	claims := jwt.MapClaims{
		"sub": h.tellerName,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.AppConfig.JWT.Secret))
	if err != nil {
		logger.Log.Error("failed to sign jwt", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, LoginResponse{Token: signed})
}

func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := appmw.TellerFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"name": name})
}
