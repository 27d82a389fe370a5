package response

import (
	"time"

	"wedding-planner/internal/data/entity"
)

// PublicUser never carries the password hash
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PublicAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

type AdminAuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Admin   PublicAdmin `json:"admin"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserToPublic(user *entity.User) PublicUser {
	return PublicUser{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func AdminToPublic(admin *entity.AdminUser) PublicAdmin {
	return PublicAdmin{
		ID:    admin.ID.String(),
		Name:  admin.Name,
		Email: admin.Email,
		Role:  string(admin.Role),
	}
}

func UserToProfile(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
