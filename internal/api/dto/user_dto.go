package dto

import "github.com/plantnet/marketplace/internal/domain"

// UserRequest is the profile submitted on first contact. The stored email always comes from the
// path.
type UserRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ToDomain builds the user record to insert when none exists.
func (r UserRequest) ToDomain() domain.User {
	return domain.User{Email: r.Email, Name: r.Name, Image: r.Image}
}

// RoleUpdateRequest is the admin payload for PATCH /user/role/:email.
type RoleUpdateRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=customer seller admin"`
}

// TokenRequest is the identity asserted to POST /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RoleResponse answers GET /user/role/:email. Role is null for unknown emails.
type RoleResponse struct {
	Role *domain.Role `json:"role"`
}

// NewRoleResponse maps an empty role to null.
func NewRoleResponse(role domain.Role) RoleResponse {
	if role == "" {
		return RoleResponse{}
	}
	return RoleResponse{Role: &role}
}

// SuccessResponse is returned by the credential endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}
