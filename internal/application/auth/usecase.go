package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/jhoicas/tekstil-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials credenciales fijas de los paneles de administración, fábrica y personal.
type Credentials struct {
	AdminUsername     string
	AdminPassword     string
	FactoryCode       string
	FactoryPassword   string
	PersonnelPassword string
}

// AuthUseCase login de los cuatro paneles. Cada login exitoso devuelve un JWT con el rol.
type AuthUseCase struct {
	customers repository.CustomerRepository
	personnel repository.PersonnelRepository
	creds     Credentials
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	customers repository.CustomerRepository,
	personnel repository.PersonnelRepository,
	creds Credentials,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{customers: customers, personnel: personnel, creds: creds, jwtCfg: jwtCfg}
}

// LoginAdmin usuario y contraseña configurados.
func (uc *AuthUseCase) LoginAdmin(_ context.Context, in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if !equal(strings.TrimSpace(in.Username), uc.creds.AdminUsername) || !equal(in.Password, uc.creds.AdminPassword) {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(jwt.RoleAdmin, uc.creds.AdminUsername, "Yönetici", "")
}

// LoginFactory código de fábrica (F01) y contraseña configurados.
func (uc *AuthUseCase) LoginFactory(_ context.Context, in dto.CodeLoginRequest) (*dto.LoginResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if !equal(code, strings.ToUpper(uc.creds.FactoryCode)) || !equal(in.Password, uc.creds.FactoryPassword) {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(jwt.RoleFactory, code, "Fabrika", code)
}

// LoginPersonnel acepta "P12", "12" o cualquier código con dígitos; el id son sus dígitos.
func (uc *AuthUseCase) LoginPersonnel(ctx context.Context, in dto.CodeLoginRequest) (*dto.LoginResponse, error) {
	id, ok := digitsOf(in.Code)
	if !ok || !equal(in.Password, uc.creds.PersonnelPassword) {
		return nil, domain.ErrUnauthorized
	}
	name, found, err := uc.personnel.GetName(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(jwt.RolePersonnel, strconv.FormatInt(id, 10), name, fmt.Sprintf("P%02d", id))
}

// LoginCustomer código M05 y contraseña verificada con bcrypt.
func (uc *AuthUseCase) LoginCustomer(ctx context.Context, in dto.CodeLoginRequest) (*dto.LoginResponse, error) {
	id, ok := entity.ParseCustomerCode(in.Code)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrUnauthorized
	}
	if c.PasswordHash == "" {
		return nil, fmt.Errorf("%w: no password set", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(jwt.RoleCustomer, strconv.FormatInt(c.ID, 10), c.Name, entity.FormatCustomerCode(c.ID))
}

func (uc *AuthUseCase) issue(role, userID, name, code string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:  true,
		Token:    token,
		Role:     role,
		UserID:   userID,
		UserName: name,
		Code:     code,
	}, nil
}

// digitsOf extrae los dígitos del código; false si no hay o el id no es positivo.
func digitsOf(code string) (int64, bool) {
	var b strings.Builder
	for _, r := range code {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	id, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func equal(a, b string) bool {
	return b != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
