package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store SQLite.
// Todas las operaciones pasan por el Executor: sesión por llamada y reintentos
// ante contención.
type UserRepo struct {
	exec *Executor
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(exec *Executor) *UserRepo {
	return &UserRepo{exec: exec}
}

// Columnas de users con COALESCE para las aditivas (pueden ser NULL en filas
// anteriores a la migración).
const userColumns = `id, username, password, role, COALESCE(name, ''),
	COALESCE(birth_date, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(cpf, ''), profile_image, COALESCE(preferred_type, ''),
	COALESCE(preferred_brand, ''), COALESCE(preferred_style, '')`

func scanUser(scan func(dest ...any) error) (*entity.User, error) {
	var u entity.User
	err := scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Name,
		&u.BirthDate, &u.Email, &u.Phone, &u.CPF, &u.ProfileImage,
		&u.PreferredType, &u.PreferredBrand, &u.PreferredStyle,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario (password ya hasheado por la capa de auth).
func (r *UserRepo) Create(user *entity.User) error {
	err := r.exec.Write(context.Background(), `
		INSERT INTO users (username, password, role, name, birth_date, email, phone, cpf, preferred_type, preferred_brand, preferred_style)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Role, user.Name,
		user.BirthDate, user.Email, user.Phone, user.CPF,
		user.PreferredType, user.PreferredBrand, user.PreferredStyle,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	var u *entity.User
	err := r.exec.QueryRow(context.Background(),
		"SELECT "+userColumns+" FROM users WHERE id = ?",
		func(row *sql.Row) error {
			var err error
			u, err = scanUser(row.Scan)
			return err
		}, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var u *entity.User
	err := r.exec.QueryRow(context.Background(),
		"SELECT "+userColumns+" FROM users WHERE username = ?",
		func(row *sql.Row) error {
			var err error
			u, err = scanUser(row.Scan)
			return err
		}, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// UpdateProfileImage reemplaza el blob de imagen de perfil del usuario.
func (r *UserRepo) UpdateProfileImage(userID int64, image []byte) error {
	err := r.exec.Write(context.Background(),
		"UPDATE users SET profile_image = ? WHERE id = ?", image, userID)
	if err != nil {
		return fmt.Errorf("update profile image: %w", err)
	}
	return nil
}

// List lista todos los usuarios con la proyección de administración
// (sin password hash ni blobs).
func (r *UserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	err := r.exec.Query(context.Background(), `
		SELECT id, username, role, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, '')
		FROM users ORDER BY id`,
		func(rows *sql.Rows) error {
			for rows.Next() {
				var u entity.User
				if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.Name, &u.Email, &u.Phone); err != nil {
					return fmt.Errorf("scan user: %w", err)
				}
				list = append(list, &u)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// ListClientsWithBirthDate lista clientes con fecha de nacimiento cargada
// (para el aviso de cumpleaños del día).
func (r *UserRepo) ListClientsWithBirthDate() ([]*entity.User, error) {
	var list []*entity.User
	err := r.exec.Query(context.Background(),
		"SELECT "+userColumns+" FROM users WHERE role = ? AND birth_date IS NOT NULL AND birth_date != ''",
		func(rows *sql.Rows) error {
			for rows.Next() {
				u, err := scanUser(rows.Scan)
				if err != nil {
					return fmt.Errorf("scan user: %w", err)
				}
				list = append(list, u)
			}
			return nil
		}, entity.RoleCliente)
	if err != nil {
		return nil, fmt.Errorf("list birthday clients: %w", err)
	}
	return list, nil
}
