package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	"github.com/BruksfildServices01/agenda-atividades/internal/config"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/agenda-atividades/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
	"github.com/BruksfildServices01/agenda-atividades/internal/validators"
)

const defaultTokenTTL = 24 * time.Hour

type AuthHandler struct {
	users  *infraRepo.UserGormRepository
	config *config.Config
	audit  *audit.Dispatcher

	checkDomain func(ctx context.Context, email string) bool
}

func NewAuthHandler(
	users *infraRepo.UserGormRepository,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	h := &AuthHandler{users: users, config: cfg, audit: dispatcher}
	if cfg.CheckEmailDomain {
		h.checkDomain = validators.IsEmailDomainValid
	}
	return h
}

// --------- Requests ---------

type RegisterRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe e-mail válido e senha com ao menos 6 caracteres.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if h.checkDomain != nil && !h.checkDomain(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	user := models.User{
		DisplayName:  req.DisplayName,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if user.DisplayName == "" {
		user.DisplayName = email
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeError(c, err, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			UserID:   &user.ID,
			Action:   audit.ActionUserRegistered,
			Entity:   audit.EntityUser,
			EntityID: &user.ID,
		})
	}

	httpresp.Created(c, gin.H{
		"user":  userJSON(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe e-mail e senha.")
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err, "internal_error", "Erro ao autenticar.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	ttl := h.config.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := time.Now()

	claims := middleware.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"display_name": u.DisplayName,
		"email":        u.Email,
	}
}
