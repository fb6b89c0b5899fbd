package usecase

import (
	"time"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// UserUseCase lecturas administrativas sobre usuarios.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve la proyección administrativa de todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			Name:     u.Name,
			Email:    u.Email,
			Phone:    u.Phone,
		})
	}
	return out, nil
}

// Formatos aceptados para birth_date (el store lo guarda como texto libre).
var birthDateLayouts = []string{"2006-01-02", "02/01/2006"}

// BirthdayClients devuelve los clientes que cumplen años en la fecha dada
// (comparación por día y mes). Fechas no parseables se omiten sin error.
func (uc *UserUseCase) BirthdayClients(today time.Time) ([]dto.UserResponse, error) {
	clients, err := uc.userRepo.ListClientsWithBirthDate()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0)
	for _, c := range clients {
		bd, ok := parseBirthDate(c.BirthDate)
		if !ok {
			continue
		}
		if bd.Day() == today.Day() && bd.Month() == today.Month() {
			out = append(out, *toAdminUserResponse(c))
		}
	}
	return out, nil
}

func parseBirthDate(s string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toAdminUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name,
		BirthDate: u.BirthDate,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
