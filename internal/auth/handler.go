package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/config"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	jwtCfg       config.JWTConfig
	username     string
	passwordHash []byte
	logger       logger.ZapLogger
}

// NewAuthHandler hashes the configured admin password once so that login
// compares bcrypt digests instead of raw strings.
func NewAuthHandler(cfg *config.Config, log logger.ZapLogger) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		jwtCfg:       cfg.JWT,
		username:     cfg.Admin.Username,
		passwordHash: hash,
		logger:       log,
	}, nil
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if req.Username != h.username ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(h.jwtCfg.SecretKey, req.Username, "admin",
		time.Duration(h.jwtCfg.ExpiryMin)*time.Minute)
	if err != nil {
		h.logger.Error("failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
