package repository

import "github.com/tu-usuario/tienda-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateProfileImage(userID int64, image []byte) error
	List() ([]*entity.User, error)
	ListClientsWithBirthDate() ([]*entity.User, error)
}
