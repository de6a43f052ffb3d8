package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-gold/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey = "currentUserID"
	IsStaffKey       = "isStaff"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст id юзера (CurrentUserIDKey) и
// признак сотрудника (IsStaffKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(IsStaffKey, claims.IsStaff)
		c.Next()
	}
}

// NonAuthRequired не пускает уже авторизованных пользователей (регистрация, логин).
func NonAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Already authorized"})
			return
		}
		c.Next()
	}
}

// StaffRequired пропускает только сотрудников. Ставится после AuthRequired.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsStaffKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff only"})
			return
		}
		c.Next()
	}
}
