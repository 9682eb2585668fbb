package models

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// SignInRequest is the body of POST /auth/signin and PATCH /users/recover.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the body of PATCH /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strongpassword"`
}

// ChangeEmailRequest is the body of PATCH /auth/change-email.
type ChangeEmailRequest struct {
	CurrentEmail string `json:"currentEmail" validate:"required,email"`
	NewEmail     string `json:"newEmail" validate:"required,email,max=255"`
}

// AssignRoleRequest is the body of PATCH /auth/{id}.
type AssignRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=admin user"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,strongpassword"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Role      Role    `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}
