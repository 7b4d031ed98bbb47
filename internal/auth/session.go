package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"firportal/backend/internal/models"
)

// sessionTTL bounds both the JWT expiry and the Redis record, so a
// token can never outlive its session entry.
const sessionTTL = 72 * time.Hour

// ErrNoSession is returned when a token is syntactically valid but its
// session record is gone (logged out or expired).
var ErrNoSession = errors.New("session not found or expired")

// SessionManager issues and resolves session tokens. The JWT carries a
// session id; the authoritative state lives in Redis so logout actually
// revokes the token.
type SessionManager struct {
	Redis  *redis.Client
	secret []byte
}

// NewSessionManager creates a session manager signing with the given
// secret.
func NewSessionManager(rdb *redis.Client, secret string) *SessionManager {
	return &SessionManager{Redis: rdb, secret: []byte(secret)}
}

func sessionKey(sid string) string { return "session:" + sid }

// Establish creates a session for the user and returns the signed
// token. Logging in again simply issues a fresh session.
func (sm *SessionManager) Establish(ctx context.Context, user *models.User) (string, error) {
	sid := uuid.New().String()

	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	if err := sm.Redis.Set(ctx, sessionKey(sid), payload, sessionTTL).Err(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"sub": user.ID,
		"exp": time.Now().Add(sessionTTL).Unix(),
		"iss": "firportal-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sm.secret)
}

// Resolve returns the user behind a live session token. A revoked or
// expired session yields ErrNoSession.
func (sm *SessionManager) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	sid, err := sm.sessionID(tokenString)
	if err != nil {
		return nil, err
	}

	payload, err := sm.Redis.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// End deletes the session record, revoking the token. Ending an already
// ended session is not an error.
func (sm *SessionManager) End(ctx context.Context, tokenString string) error {
	sid, err := sm.sessionID(tokenString)
	if err != nil {
		return err
	}
	return sm.Redis.Del(ctx, sessionKey(sid)).Err()
}

func (sm *SessionManager) sessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sm.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
