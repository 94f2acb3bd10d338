package response_models

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
