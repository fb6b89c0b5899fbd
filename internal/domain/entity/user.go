package entity

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleFuncionario = "funcionario"
	RoleCliente     = "cliente"
)

// User representa un usuario del sistema. Los campos de perfil son opcionales
// (columnas aditivas del esquema) y llegan vacíos cuando no fueron cargados.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // admin, funcionario, cliente
	Name           string
	BirthDate      string // fecha calendario "YYYY-MM-DD"; texto libre en el store
	Email          string
	Phone          string
	CPF            string
	ProfileImage   []byte // blob opaco; vacío = sin imagen, nunca error
	PreferredType  string
	PreferredBrand string
	PreferredStyle string
}
