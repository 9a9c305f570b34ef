package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/pkg/jwt"
)

const testSecret = "test-secret"

type fakeCustomers struct {
	byID map[int64]*entity.Customer
}

func (f *fakeCustomers) ListIDs(context.Context) ([]int64, error)            { return nil, nil }
func (f *fakeCustomers) CreateWithID(context.Context, *entity.Customer) error { return nil }
func (f *fakeCustomers) List(context.Context) ([]*entity.Customer, error)    { return nil, nil }
func (f *fakeCustomers) SetPasswordHash(context.Context, int64, string) error { return nil }
func (f *fakeCustomers) ListWithoutPassword(context.Context) ([]int64, error) { return nil, nil }
func (f *fakeCustomers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	return f.byID[id], nil
}

type fakePersonnel struct {
	names map[int64]string
}

func (f *fakePersonnel) ListWithStats(context.Context) ([]*entity.PersonnelStats, error) {
	return nil, nil
}
func (f *fakePersonnel) ActiveEfficiencies(context.Context) ([]*entity.EmployeeEfficiency, error) {
	return nil, nil
}
func (f *fakePersonnel) GetName(_ context.Context, id int64) (string, bool, error) {
	n, ok := f.names[id]
	return n, ok, nil
}

func newUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("bayi123"), bcrypt.MinCost)
	require.NoError(t, err)
	customers := &fakeCustomers{byID: map[int64]*entity.Customer{
		5: {ID: 5, Name: "Ayşe Yılmaz", City: "İzmir", PasswordHash: string(hash)},
		6: {ID: 6, Name: "Mehmet Kaya", City: "Bursa"},
	}}
	personnel := &fakePersonnel{names: map[int64]string{12: "Ali Demir"}}
	creds := Credentials{
		AdminUsername:     "admin",
		AdminPassword:     "123",
		FactoryCode:       "F01",
		FactoryPassword:   "123",
		PersonnelPassword: "123",
	}
	return NewAuthUseCase(customers, personnel, creds, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})
}

func assertToken(t *testing.T, resp *dto.LoginResponse, wantID, wantRole string) {
	t.Helper()
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, wantRole, resp.Role)
	id, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, wantID, id)
	assert.Equal(t, wantRole, role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paneles con credenciales fijas
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginAdmin(t *testing.T) {
	uc := newUseCase(t)
	resp, err := uc.LoginAdmin(context.Background(), dto.AdminLoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	assertToken(t, resp, "admin", jwt.RoleAdmin)

	_, err = uc.LoginAdmin(context.Background(), dto.AdminLoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginFactory_CodigoSinDistinguirMayusculas(t *testing.T) {
	uc := newUseCase(t)
	resp, err := uc.LoginFactory(context.Background(), dto.CodeLoginRequest{Code: " f01 ", Password: "123"})
	require.NoError(t, err)
	assertToken(t, resp, "F01", jwt.RoleFactory)

	_, err = uc.LoginFactory(context.Background(), dto.CodeLoginRequest{Code: "F02", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginPersonnel(t *testing.T) {
	uc := newUseCase(t)
	resp, err := uc.LoginPersonnel(context.Background(), dto.CodeLoginRequest{Code: "P12", Password: "123"})
	require.NoError(t, err)
	assertToken(t, resp, "12", jwt.RolePersonnel)
	assert.Equal(t, "Ali Demir", resp.UserName)
	assert.Equal(t, "P12", resp.Code)

	for _, code := range []string{"P99", "P", ""} {
		_, err = uc.LoginPersonnel(context.Background(), dto.CodeLoginRequest{Code: code, Password: "123"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized, code)
	}
	_, err = uc.LoginPersonnel(context.Background(), dto.CodeLoginRequest{Code: "P12", Password: "999"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes (bcrypt)
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginCustomer(t *testing.T) {
	uc := newUseCase(t)
	resp, err := uc.LoginCustomer(context.Background(), dto.CodeLoginRequest{Code: "m05", Password: "bayi123"})
	require.NoError(t, err)
	assertToken(t, resp, "5", jwt.RoleCustomer)
	assert.Equal(t, "M05", resp.Code)
}

func TestLoginCustomer_Rechazos(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.LoginCustomer(ctx, dto.CodeLoginRequest{Code: "M05", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginCustomer(ctx, dto.CodeLoginRequest{Code: "M77", Password: "bayi123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginCustomer(ctx, dto.CodeLoginRequest{Code: "XYZ", Password: "bayi123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginCustomer(ctx, dto.CodeLoginRequest{Code: "M06", Password: "bayi123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "no password set")
}
