package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"zap-shift/logger"
	"zap-shift/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// FetchPublicKey fetches the verifier's RSA public key from the given URL.
func FetchPublicKey(url string) (*rsa.PublicKey, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	keyResponse := struct {
		Key string `json:"key"`
	}{}
	if err := json.Unmarshal(body, &keyResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal public key response: %w", err)
	}

	block, _ := pem.Decode([]byte(keyResponse.Key))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPubKey, ok := pubKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}

	return rsaPubKey, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// Returns an error for a missing header or anything other than "Bearer <token>".
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("authorization token missing")
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return tokenParts[1], nil
}

// VerifyJWT verifies a JWT token against the external verifier's public key.
// The key is re-fetched on every call; nothing is cached locally.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	publicKey, err := FetchPublicKey(os.Getenv("PUBLIC_KEY_URL"))
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid JWT token")
}

// RequireAuth is the identity gate. A missing or malformed credential is a
// 401; a credential the verifier rejects is a 403. On success the verified
// email lands in c.Locals("email") for downstream handlers.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := ExtractBearerToken(c.Get("Authorization"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			logger.Error("JWT verification failed", err)
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusForbidden,
			})
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Email missing in token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals("user", claims)
		c.Locals("email", email)
		return c.Next()
	}
}

// EmailFromContext returns the verified email set by RequireAuth.
func EmailFromContext(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals("email").(string)
	return email, ok && email != ""
}
