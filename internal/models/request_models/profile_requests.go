package request_models

// UpdateProfileRequest carries only the fields the user wants to change;
// password changes require the old password.
type UpdateProfileRequest struct {
	Email       *string  `json:"email" binding:"omitempty,email"`
	Username    *string  `json:"username" binding:"omitempty,min=3,max=50"`
	OldPassword *string  `json:"old_password"`
	Password    *string  `json:"password" binding:"omitempty,min=8"`
	Phone       *string  `json:"phone"`
	HomeState   *string  `json:"homestate"`
	Interests   []string `json:"interests"`
}
