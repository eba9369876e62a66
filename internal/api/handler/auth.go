package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GetAnonID mints a fresh anonymous client id together with a signed token
// carrying it. This is a convenience for clients that want a server-issued
// id; command endpoints never verify it, any opaque id works.
func (h *Handler) GetAnonID(c *gin.Context) {
	anonID := uuid.New().String()

	claims := jwt.MapClaims{
		"anon_id": anonID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
		"iss":     "corner-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "clientId": anonID})
}
