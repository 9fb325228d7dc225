package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
)

func buildUserUC() (*UserUseCase, *fakeUserRepo, *fakeSaleRepo) {
	userRepo := newFakeUserRepo()
	saleRepo := newFakeSaleRepo()
	tx := &fakeTxRunner{saleRepo: saleRepo, userRepo: userRepo}
	return NewUserUseCase(userRepo, tx), userRepo, saleRepo
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildUserUC()

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Name: "Otra", Email: "ana@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// La respuesta nunca incluye el hash; solo id, nombre y email.
func TestUserCreate_NoExponePassword(t *testing.T) {
	uc, repo, _ := buildUserUC()

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
}

func TestUserUpdate_EmailEnUsoPorOtro(t *testing.T) {
	uc, _, _ := buildUserUC()

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateUserRequest{Name: "Beto", Email: "beto@example.com", Password: "secreta123"})
	require.NoError(t, err)

	ocupado := "ana@example.com"
	_, err = uc.Update(otro.ID, dto.UpdateUserRequest{Email: &ocupado})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Actualizar con el mismo email propio no dispara el chequeo de unicidad.
func TestUserUpdate_MismoEmailPropio(t *testing.T) {
	uc, _, _ := buildUserUC()

	created, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	mismo := "ana@example.com"
	nombre := "Ana María"
	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Email: &mismo, Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación en cascada
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar un usuario arrastra sus ventas; las de otros usuarios quedan intactas.
func TestUserDelete_CascadaDeVentas(t *testing.T) {
	uc, _, saleRepo := buildUserUC()

	ana, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	beto, err := uc.Create(dto.CreateUserRequest{Name: "Beto", Email: "beto@example.com", Password: "secreta123"})
	require.NoError(t, err)

	when := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	seedSaleRepo(saleRepo, 1, ana.ID, 2, "10.00", when, "Laptop Pro", "Ana")
	seedSaleRepo(saleRepo, 1, ana.ID, 1, "10.00", when, "Laptop Pro", "Ana")
	seedSaleRepo(saleRepo, 1, beto.ID, 3, "10.00", when, "Laptop Pro", "Beto")

	require.NoError(t, uc.Delete(context.Background(), ana.ID))

	// El usuario y sus ventas desaparecieron.
	got, _ := uc.GetByID(ana.ID)
	assert.Nil(t, got)
	sales, _ := saleRepo.ListAll()
	require.Len(t, sales, 1)
	assert.Equal(t, beto.ID, sales[0].UserID, "las ventas de otros usuarios no se tocan")
}

func TestUserDelete_Inexistente(t *testing.T) {
	uc, _, _ := buildUserUC()
	assert.ErrorIs(t, uc.Delete(context.Background(), 999), domain.ErrUserNotFound)
}
