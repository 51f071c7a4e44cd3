package user

import "time"

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"u_id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) ToDTO() UserDTO {
	return UserDTO{
		UID:       u.UID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
