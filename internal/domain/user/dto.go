package user

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Email    string  `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	FullName *string `json:"full_name" form:"full_name" example:"John Doe"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password" form:"old_password" example:"oldPass123"`
	Password    *string `json:"password" form:"password" binding:"omitempty,min=6" example:"newPass123"`
	FullName    *string `json:"full_name" form:"full_name" example:"John Doe"`
}

type UserDTO struct {
	UID       uint   `json:"u_id" example:"123"`
	Username  string `json:"username" example:"johndoe"`
	Email     string `json:"email" example:"user@example.com"`
	FullName  string `json:"full_name" example:"John Doe"`
	IsAdmin   bool   `json:"is_admin" example:"false"`
	IsActive  bool   `json:"is_active" example:"true"`
	CreatedAt string `json:"create_at" example:"2025-07-17 15:20:41"`
}

// Profile is the caller's own view, with the number of visible projects.
type Profile struct {
	UserDTO
	ProjectCount int `json:"project_count" example:"3"`
}
