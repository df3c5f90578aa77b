package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

type sessionClaims struct {
	Subject string
	Email   string
	Name    string
}

// Middleware authenticates the request and resolves the durable user row
// for the token subject, creating it on first sight. Handlers behind it
// never see a request without a fully resolved user.
func Middleware(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := resolveUser(c.Request.Context(), db, claims)
		if err != nil {
			log.Printf("session user resolution failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Middleware.
func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get(userContextKey)
	user, _ := v.(*models.User)
	return user
}

func parseToken(header string, secret []byte) (*sessionClaims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, errors.New("missing bearer token")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims shape")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("session token has no subject")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &sessionClaims{Subject: sub, Email: email, Name: name}, nil
}

// resolveUser maps the external subject to the durable user row. The
// subject carries a unique index, so the loser of a concurrent first-sight
// race reads the winner's row instead of failing.
func resolveUser(ctx context.Context, db *gorm.DB, claims *sessionClaims) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).
		Where(&models.User{AuthSubject: claims.Subject}).
		Attrs(models.User{Email: claims.Email, Name: claims.Name}).
		FirstOrCreate(&user).Error
	if err != nil && isDuplicateErr(err) {
		err = db.WithContext(ctx).
			Where(&models.User{AuthSubject: claims.Subject}).
			First(&user).Error
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
