package models

// RegisterRequest is the payload of POST /api/auth/register.
// UserType is optional; when present it must be a non-supreme role.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType Role   `json:"userType" validate:"omitempty"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest is the payload of PUT /api/auth/profile.
// Only non-empty fields are applied. Changing the password requires the
// current password.
type ProfileUpdateRequest struct {
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	NewPassword     string `json:"newPassword"`
	CurrentPassword string `json:"currentPassword"`
}

// CreateDemandaRequest is the payload of POST /api/demandas.
type CreateDemandaRequest struct {
	Categoria string `json:"categoria" validate:"required"`
	Cliente   string `json:"cliente" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
	Tempo     int64  `json:"tempo" validate:"required,gt=0"`
	Status    Status `json:"status" validate:"omitempty"`
}

// DemandaPatch is the payload of PATCH /api/demandas/{id}.
// Only non-nil fields will be updated (partial update support).
type DemandaPatch struct {
	Status    *Status `json:"status,omitempty"`
	Categoria *string `json:"categoria,omitempty"`
	Cliente   *string `json:"cliente,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
	Tempo     *int64  `json:"tempo,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p DemandaPatch) Empty() bool {
	return p.Status == nil && p.Categoria == nil && p.Cliente == nil &&
		p.Descricao == nil && p.Tempo == nil
}

// DemandaFilter is the optional filter set for demanda listings.
// UserID is only honored for requesters holding [CapViewAllDemandas];
// members are always pinned to their own rows.
type DemandaFilter struct {
	Categoria string
	Status    string
	UserID    int64
}

// SetUserTypeRequest is the payload of PUT /api/admin/users/{id}/type.
type SetUserTypeRequest struct {
	UserType Role `json:"userType"`
}
