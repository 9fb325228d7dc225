package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	pkgjwt "github.com/tu-usuario/ventas-api/pkg/jwt"
)

var testJWTCfg = JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "ventas-api-test",
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRegister_CreaUsuarioConPasswordHasheada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreta123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.NotZero(t, out.ID)

	// La password nunca se guarda en claro.
	stored, _ := repo.GetByEmail("ana@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

// Sin nombre, el email hace de nombre visible.
func TestAuthRegister_NombreVacioUsaEmail(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "sin-nombre@example.com",
		Password: "secreta123",
	})

	require.NoError(t, err)
	assert.Equal(t, "sin-nombre@example.com", out.Name)
}

func TestAuthRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	reg, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	assert.Equal(t, reg.ID, out.User.ID)
	assert.Equal(t, "ana@example.com", out.User.Email)

	// El token emitido es verificable con el mismo secret y lleva los claims correctos.
	userID, email, err := pkgjwt.Parse(testJWTCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "ana@example.com", email)
}

// Usuario inexistente y password incorrecta fallan con el MISMO error, para
// no filtrar qué cuentas existen.
func TestAuthLogin_ErrorUniformeSinDistinguirCausa(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, errNoExiste := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errNoExiste, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoExiste, errBadPass, "ambas causas deben producir el mismo error")
}
