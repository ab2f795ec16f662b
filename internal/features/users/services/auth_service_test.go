package users_services

import (
	"testing"

	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"
	users_repositories "allocboard/internal/features/users/repositories"
	test_utils "allocboard/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthService(t *testing.T) (*AuthService, *users_repositories.RoleRepository) {
	db := test_utils.OpenTestDatabase(t, &users_models.UserRole{})
	roleRepository := users_repositories.NewRoleRepository(db)

	authService := NewAuthService(
		roleRepository,
		"test-client-id",
		"test-client-secret",
		"http://localhost:5000/auth/google/callback",
		"test-session-secret",
	)

	return authService, roleRepository
}

func Test_EstablishSession_WhenRoleAssigned_SessionCarriesRole(t *testing.T) {
	authService, roleRepository := buildAuthService(t)

	_, err := roleRepository.UpsertRole("ada@example.com", users_enums.RoleUser)
	require.NoError(t, err)

	session, err := authService.ResolveSessionForEmail("ada@example.com", "Ada")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, users_enums.RoleUser, session.Role)
}

func Test_EstablishSession_WhenNoRoleRow_AccessDenied(t *testing.T) {
	authService, _ := buildAuthService(t)

	session, err := authService.ResolveSessionForEmail("stranger@example.com", "Stranger")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func Test_EstablishSession_WhenStorageFails_RoleLookupErrorNotAccessDenied(t *testing.T) {
	db := test_utils.OpenTestDatabase(t, &users_models.UserRole{})
	roleRepository := users_repositories.NewRoleRepository(db)
	authService := NewAuthService(roleRepository, "id", "secret", "http://localhost/cb", "s")

	// Simulate a broken store: the lookup must fail loudly instead of
	// being conflated with "no role assigned".
	require.NoError(t, db.Migrator().DropTable(&users_models.UserRole{}))

	session, err := authService.ResolveSessionForEmail("ada@example.com", "Ada")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrRoleLookup)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func Test_SessionToken_RoundTrip(t *testing.T) {
	authService, _ := buildAuthService(t)

	session := &users_models.Session{
		ID:    "108234",
		Name:  "Ada",
		Email: "ada@example.com",
		Photo: "https://example.com/ada.png",
		Role:  users_enums.RoleAdmin,
	}

	token, err := authService.GenerateSessionToken(session)
	require.NoError(t, err)

	parsed, err := authService.SessionFromToken(token)
	require.NoError(t, err)

	assert.Equal(t, session, parsed)
}

func Test_SessionFromToken_WhenTampered_ReturnsError(t *testing.T) {
	authService, _ := buildAuthService(t)

	session := &users_models.Session{Email: "ada@example.com", Role: users_enums.RoleViewer}
	token, err := authService.GenerateSessionToken(session)
	require.NoError(t, err)

	otherService, _ := buildAuthService(t)
	otherService.sessionSecret = []byte("a-different-secret")

	_, err = otherService.SessionFromToken(token)
	assert.Error(t, err)
}
