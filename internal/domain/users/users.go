package users

import "time"

// User is the single identity record for admins, trainers and trainees.
// The password hash never leaves the API.
type User struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ExtID     string    `json:"ext_id" gorm:"column:ext_id;unique"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email;unique"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Role      string    `json:"role" gorm:"column:role"`
	Password  string    `json:"-" gorm:"column:password"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateTrainerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Password string `json:"password"`
}

type UpdateTrainerRequest struct {
	ExtID string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"omitempty,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type CreateTraineeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateTraineeRequest struct {
	ExtID string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"omitempty,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

// Profile is the outward representation of a user, password excluded.
type Profile struct {
	ExtID     string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterResponse struct {
	User        Profile `json:"user"`
	AccessToken string  `json:"accessToken"`
}

type SignInResponse struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`

	// RefreshToken travels as an HTTP-only cookie, never in the body.
	RefreshToken string `json:"-"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// NewProfile maps a stored user onto its outward representation.
func NewProfile(u *User) Profile {
	return Profile{
		ExtID:     u.ExtID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
