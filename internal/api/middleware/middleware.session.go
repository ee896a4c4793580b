package middleware

import (
	"errors"
	"strings"
	"time"

	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// SessionClaims là claims của token phiên đăng nhập.
// Email là danh tính duy nhất của người mua trong toàn hệ thống.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueSessionToken tạo token phiên cho một email, có hạn sử dụng.
func IssueSessionToken(email string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}

// ParseSessionToken xác thực chữ ký và hạn của token phiên, trả về email.
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.Email, nil
}

// SessionMiddleware xác thực phiên đăng nhập của người mua.
// Token JWT nằm trong header "Authorization: Bearer <token>", chứa claim email.
// Sau khi xác thực, email được đưa vào Locals("email") cho handler phía sau.
func SessionMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		email, err := ParseSessionToken(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token phiên không hợp lệ")
			HandleErrorResponse(c, err)
			return nil
		}

		// Đưa email vào Locals cho các handler phía sau
		c.Locals("email", email)
		return c.Next()
	}
}

// EmailFromContext lấy email đã xác thực từ Locals, rỗng nếu không có.
func EmailFromContext(c fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
