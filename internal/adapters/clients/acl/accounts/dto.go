// Package accounts holds the Account Store's wire types and the translators
// between them and the account domain.
package accounts

// UserDTO matches the Account Store's User schema. Role travels as its
// display label ("Member", "Team Leader", "Admin").
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// UserListResponseDTO matches the Account Store's list response.
type UserListResponseDTO struct {
	Users []UserDTO `json:"users"`
	Count int64     `json:"count"`
}

// SignupRequestDTO is the body of POST /api/v1/users.
type SignupRequestDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateUserRequestDTO is the body of PATCH /api/v1/users/{id}.
// Nil means "do not change this field".
type UpdateUserRequestDTO struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
