package auth

import (
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
	"github.com/tu-usuario/tienda-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y cuentas: login, alta de usuario
// e imagen de perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash persistido, genera JWT y
// retorna token + usuario. Credenciales inválidas y usuario inexistente se
// reportan igual (ErrUnauthorized) para no filtrar existencia de cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// CreateUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	if role != entity.RoleAdmin && role != entity.RoleFuncionario && role != entity.RoleCliente {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:       in.Username,
		PasswordHash:   string(hash),
		Role:           role,
		Name:           in.Name,
		BirthDate:      in.BirthDate,
		Email:          in.Email,
		Phone:          in.Phone,
		CPF:            in.CPF,
		PreferredType:  in.PreferredType,
		PreferredBrand: in.PreferredBrand,
		PreferredStyle: in.PreferredStyle,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// El store asigna el id: se relee para devolverlo completo.
	created, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	return toUserResponse(created), nil
}

// UpdateUserImage reemplaza la imagen de perfil y devuelve el usuario
// actualizado, o ErrUserNotFound si el id no existe.
func (uc *AuthUseCase) UpdateUserImage(userID int64, image []byte) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.userRepo.UpdateProfileImage(userID, image); err != nil {
		return nil, err
	}
	updated, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Role:            u.Role,
		Name:            u.Name,
		BirthDate:       u.BirthDate,
		Email:           u.Email,
		Phone:           u.Phone,
		CPF:             u.CPF,
		PreferredType:   u.PreferredType,
		PreferredBrand:  u.PreferredBrand,
		PreferredStyle:  u.PreferredStyle,
		HasProfileImage: len(u.ProfileImage) > 0,
	}
}
