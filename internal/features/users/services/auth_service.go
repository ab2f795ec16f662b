package users_services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"
	users_repositories "allocboard/internal/features/users/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	// ErrAccessDenied means the verified email has no role row. The
	// login flow must fail instead of creating a default account.
	ErrAccessDenied = errors.New("access denied, contact administrator")
	// ErrRoleLookup means the role table could not be read at all.
	ErrRoleLookup = errors.New("database error, contact administrator")
)

const (
	sessionLifetime    = 7 * 24 * time.Hour
	googleUserinfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	profileFetchExpiry = 15 * time.Second
)

type AuthService struct {
	roleRepository *users_repositories.RoleRepository
	oauthConfig    *oauth2.Config
	sessionSecret  []byte
	userinfoURL    string
}

func NewAuthService(
	roleRepository *users_repositories.RoleRepository,
	clientID string,
	clientSecret string,
	callbackURL string,
	sessionSecret string,
) *AuthService {
	return &AuthService{
		roleRepository: roleRepository,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		sessionSecret: []byte(sessionSecret),
		userinfoURL:   googleUserinfoURL,
	}
}

// SetUserinfoURL points the profile fetch at a different endpoint.
func (s *AuthService) SetUserinfoURL(url string) {
	s.userinfoURL = url
}

func (s *AuthService) BuildAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

type identityProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback exchanges the authorization code, fetches the verified
// profile and resolves its role. The role row is the trust anchor: no
// row means no session.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*users_models.Session, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	if profile.Email == "" {
		return nil, errors.New("identity provider returned no email")
	}

	return s.EstablishSession(profile)
}

func (s *AuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*identityProfile, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, profileFetchExpiry)
	defer cancel()

	client := s.oauthConfig.Client(fetchCtx, token)

	resp, err := client.Get(s.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var profile identityProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return &profile, nil
}

func (s *AuthService) EstablishSession(profile *identityProfile) (*users_models.Session, error) {
	userRole, err := s.roleRepository.GetRoleByEmail(profile.Email)
	if err != nil {
		return nil, ErrRoleLookup
	}

	if userRole == nil {
		return nil, ErrAccessDenied
	}

	return &users_models.Session{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
		Photo: profile.Picture,
		Role:  userRole.Role,
	}, nil
}

// ResolveSessionForEmail builds a session directly from an email. Used
// by test helpers; production logins always go through HandleCallback.
func (s *AuthService) ResolveSessionForEmail(email, name string) (*users_models.Session, error) {
	return s.EstablishSession(&identityProfile{Email: email, Name: name})
}

func (s *AuthService) GenerateSessionToken(session *users_models.Session) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   session.Email,
		"sid":   session.ID,
		"name":  session.Name,
		"photo": session.Photo,
		"role":  string(session.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(sessionLifetime).Unix(),
	})

	tokenString, err := token.SignedString(s.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

func (s *AuthService) SessionFromToken(tokenString string) (*users_models.Session, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid session token")
	}

	email, ok := claims["sub"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return nil, errors.New("invalid session claims")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !users_enums.Role(roleStr).IsValid() {
		return nil, errors.New("invalid session claims")
	}

	session := &users_models.Session{
		Email: email,
		Role:  users_enums.Role(roleStr),
	}

	if sid, ok := claims["sid"].(string); ok {
		session.ID = sid
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if photo, ok := claims["photo"].(string); ok {
		session.Photo = photo
	}

	return session, nil
}
