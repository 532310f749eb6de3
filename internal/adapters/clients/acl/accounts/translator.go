package accounts

import (
	"fmt"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
)

// RoleLabel renders a role the way the Account Store stores it.
func RoleLabel(r account.Role) string {
	switch r {
	case account.RoleTeamLeader:
		return "Team Leader"
	case account.RoleAdmin:
		return "Admin"
	default:
		return "Member"
	}
}

// ToDomainUser converts a UserDTO to a domain User. An unknown role label is
// an error: authorization depends on it.
func ToDomainUser(dto *UserDTO) (account.User, error) {
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return account.User{}, fmt.Errorf("user %d: %w", dto.ID, err)
	}
	return account.User{
		ID:        dto.ID,
		Username:  dto.Username,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      role,
		Active:    dto.IsActive,
	}, nil
}

// ToDomainUserList converts a list response to domain users.
func ToDomainUserList(dto UserListResponseDTO) ([]account.User, error) {
	users := make([]account.User, len(dto.Users))
	for i := range dto.Users {
		u, err := ToDomainUser(&dto.Users[i])
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}

// FromDomainUser converts a domain User to its wire form.
func FromDomainUser(u *account.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      RoleLabel(u.Role),
		IsActive:  u.Active,
	}
}

// FromDomainUserList builds a list response.
func FromDomainUserList(users []account.User) UserListResponseDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = FromDomainUser(&users[i])
	}
	return UserListResponseDTO{Users: dtos, Count: int64(len(dtos))}
}

// ToUpdateUserRequest converts a domain Patch to its wire form.
func ToUpdateUserRequest(p account.Patch) UpdateUserRequestDTO {
	var req UpdateUserRequestDTO
	if p.Role != nil {
		label := RoleLabel(*p.Role)
		req.Role = &label
	}
	if p.Active != nil {
		active := *p.Active
		req.IsActive = &active
	}
	return req
}

// ToDomainPatch converts an update request to a domain Patch.
func ToDomainPatch(req UpdateUserRequestDTO) (account.Patch, error) {
	var p account.Patch
	if req.Role != nil {
		role, err := account.ParseRole(*req.Role)
		if err != nil {
			return account.Patch{}, &domain.ValidationError{Fields: map[string]string{"role": err.Error()}}
		}
		p.Role = &role
	}
	if req.IsActive != nil {
		active := *req.IsActive
		p.Active = &active
	}
	return p, nil
}
