package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeo-service/internal/app/config"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWTSigner mints a short-lived HS256 service token on every call.
type JWTSigner struct {
	log     *zap.Logger
	secret  []byte
	subject string
	role    string
	ttl     time.Duration
	now     func() time.Time
}

func NewJWTSigner(cfg *config.InternalConfig, log *zap.Logger) (*JWTSigner, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	subject := strings.TrimSpace(cfg.JWT.Subject)
	if subject == "" {
		return nil, fmt.Errorf("JWT_SUBJECT is empty")
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &JWTSigner{
		log:     log,
		secret:  []byte(secret),
		subject: subject,
		role:    cfg.JWT.Role,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

func (j *JWTSigner) Token(ctx context.Context) (string, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Debug("JWTSigner.Token called", zap.String(constvars.LoggingRequestIDKey, requestID))

	now := j.now().UTC()
	claims := jwt.MapClaims{
		"sub": j.subject,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
		"jti": uuid.NewString(),
	}
	if j.role != "" {
		claims["role"] = j.role
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		j.log.Error("JWTSigner.Token error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// Verify checks the signature and time claims of a token minted with the same secret.
func (j *JWTSigner) Verify(token string) (jwt.MapClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is required")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}
