package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL bounds how long a stolen token stays usable. The token carries
// only the employee id; role and manager are re-read from the store on every
// request, so a role change takes effect on the very next call.
const TokenTTL = time.Hour

type Claims struct {
	EmployeeID string `json:"eid"`
	jwt.RegisteredClaims
}

// EmployeeContext is the hydrated caller identity attached to each request.
// It always reflects the store, never the token.
type EmployeeContext struct {
	EmployeeID string
	Role       string
	ManagerID  string
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func GenerateToken(secret, employeeID string, ttl time.Duration) (string, error) {
	claims := Claims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the employee id.
// It is a pure check with no store access.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.EmployeeID == "" {
		return "", errors.New("invalid token")
	}
	return claims.EmployeeID, nil
}
