package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"monetizr/config"
	"monetizr/errutil"
	"monetizr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthCookieName is the session cookie carrying the same token as the bearer header.
const AuthCookieName = "auth_token"

const claimsKey = "claims"

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in every token.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs claims for userID with HS256, expiring ttl after now.
func IssueToken(secret []byte, userID, email string, role models.Role, ttl time.Duration) (string, error) {
	now := jwt.TimeFunc()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken validates signature, algorithm and expiry and returns the claims. Every
// failure yields ErrInvalidToken.
func VerifyToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// exp is optional in RegisteredClaims; tokens without it are rejected.
	if claims.ExpiresAt == nil || claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateJWT issues a token with the configured secret and TTL.
func GenerateJWT(user *models.User) (string, error) {
	return IssueToken([]byte(config.AppConfig.JWTKey), user.ID, user.Email, user.Role, config.AppConfig.JWTTTL)
}

// SetAuthCookie stores token in the httpOnly session cookie.
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Domain:   config.AppConfig.CookieDomain,
		MaxAge:   int(config.AppConfig.JWTTTL.Seconds()),
		Secure:   config.AppConfig.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Domain:   config.AppConfig.CookieDomain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   config.AppConfig.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// extractToken reads the bearer header, falling back to the session cookie. The scheme is
// matched case-insensitively.
func extractToken(c *fiber.Ctx) (string, error) {
	if authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); authHeader != "" {
		scheme, credential, _ := strings.Cut(authHeader, " ")
		if !strings.EqualFold(scheme, "Bearer") {
			return "", errutil.New(errutil.StatusTokenInvalid, "Invalid Authorization header format")
		}
		token := strings.TrimSpace(credential)
		if token == "" {
			return "", errutil.New(errutil.StatusTokenMissing, "Missing authentication token")
		}
		return token, nil
	}

	if token := c.Cookies(AuthCookieName); token != "" {
		return token, nil
	}

	return "", errutil.New(errutil.StatusTokenMissing, "Missing authentication token")
}

// JWTMiddleware rejects the request with 401 unless it carries a valid token, then
// exposes the verified claims to the next handlers.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString, err := extractToken(c)
	if err != nil {
		return err
	}

	claims, err := VerifyToken([]byte(config.AppConfig.JWTKey), tokenString)
	if err != nil {
		return errutil.New(errutil.StatusTokenInvalid, "Invalid or expired token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// CurrentClaims returns the claims stored by JWTMiddleware.
func CurrentClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok && claims != nil
}
