package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (sólo admin). Los campos de perfil son
// opcionales.
type CreateUserRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CPF            string `json:"cpf"`
	PreferredType  string `json:"preferred_type"`
	PreferredBrand string `json:"preferred_brand"`
	PreferredStyle string `json:"preferred_style"`
}

// UpdateUserImageRequest imagen de perfil nueva (base64 en JSON).
type UpdateUserImageRequest struct {
	Image []byte `json:"image"`
}

// UserResponse proyección pública de un usuario (sin hash ni blob).
type UserResponse struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Role            string `json:"role"`
	Name            string `json:"name"`
	BirthDate       string `json:"birth_date,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	CPF             string `json:"cpf,omitempty"`
	PreferredType   string `json:"preferred_type,omitempty"`
	PreferredBrand  string `json:"preferred_brand,omitempty"`
	PreferredStyle  string `json:"preferred_style,omitempty"`
	HasProfileImage bool   `json:"has_profile_image"`
}
