package types

// User represents the authenticated customer profile returned by the API.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Credentials contains login request data.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the signup payload. Validated client-side before
// any network call is made.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest carries editable profile fields.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=15"`
}

// ChangePasswordRequest carries a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// LoginResponse is what the login endpoint returns: the user plus a
// bearer token used on all authenticated calls.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
