// Package session keeps the signed-in user, the backend bearer token and the
// theme in an HS256-signed cookie; the browser's copy is the only storage.
package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wastewise_portal/internal/models"
)

const CookieName = "wastewise_session"

// Session is the decoded cookie payload.
type Session struct {
	SID   string // correlation id for logs
	EmpID string
	Name  string
	Role  string
	Token string // backend bearer token; empty in demo mode
	Theme string // "light" or "dark"
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue builds a fresh session for a signed-in user.
func (m *Manager) Issue(user models.User, token string) *Session {
	return &Session{
		SID:   uuid.NewString(),
		EmpID: user.EmpID,
		Name:  user.Name,
		Role:  user.Role,
		Token: token,
		Theme: "light",
	}
}

func (m *Manager) sign(s *Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":    s.SID,
		"emp_id": s.EmpID,
		"name":   s.Name,
		"role":   s.Role,
		"token":  s.Token,
		"theme":  s.Theme,
		"exp":    time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) decode(value string) (*Session, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid session claims")
	}
	str := func(key string) string {
		if v, ok := claims[key].(string); ok {
			return v
		}
		return ""
	}
	return &Session{
		SID:   str("sid"),
		EmpID: str("emp_id"),
		Name:  str("name"),
		Role:  str("role"),
		Token: str("token"),
		Theme: str("theme"),
	}, nil
}

// Save writes the session cookie onto the response.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	signed, err := m.sign(s)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// FromRequest reads and verifies the session cookie. A missing or tampered
// cookie is simply a signed-out state.
func (m *Manager) FromRequest(c *gin.Context) (*Session, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return nil, false
	}
	s, err := m.decode(value)
	if err != nil {
		return nil, false
	}
	return s, true
}
