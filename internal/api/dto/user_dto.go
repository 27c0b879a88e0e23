package dto

import "time"

type CreateUserDTO struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=40"`
	Nickname  string  `json:"nickname" validate:"required,min=2,max=50"`
	Gender    string  `json:"gender" validate:"omitempty,oneof=female male other"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// UpdateSelfDTO carries the profile fields a user may change on their own
// account. Nil fields are left untouched.
type UpdateSelfDTO struct {
	Nickname  *string `json:"nickname" validate:"omitempty,min=2,max=50"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=female male other"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// AdminUpdateUserDTO extends the self update with the fields only a
// superuser may touch.
type AdminUpdateUserDTO struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Nickname    *string `json:"nickname" validate:"omitempty,min=2,max=50"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=female male other"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	RoleID      *uint64 `json:"role_id"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}

// UserDTO is the public projection of an account; the password hash never
// leaves the service layer.
type UserDTO struct {
	ID          uint64    `json:"id"`
	Email       string    `json:"email"`
	Nickname    string    `json:"nickname"`
	Gender      string    `json:"gender"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Country     *string   `json:"country"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Picture     *string   `json:"picture"`
	Role        RoleDTO   `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserListDTO struct {
	Data  []*UserDTO `json:"data"`
	Count int64      `json:"count"`
}
