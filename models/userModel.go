package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	HouseNo  string `json:"houseNo"`
	Street   string `json:"street"`
	Landmark string `json:"landmark"`
	NearBy   string `json:"nearBy"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Role     string `json:"role" gorm:"default:customer"`
}

// PublicUser is the user record as returned to clients. The password hash
// never leaves the server.
type PublicUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	HouseNo  string `json:"houseNo"`
	Street   string `json:"street"`
	Landmark string `json:"landmark"`
	NearBy   string `json:"nearBy"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Role     string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		HouseNo:  u.HouseNo,
		Street:   u.Street,
		Landmark: u.Landmark,
		NearBy:   u.NearBy,
		City:     u.City,
		District: u.District,
		State:    u.State,
		Pincode:  u.Pincode,
		Role:     u.Role,
	}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput is a partial update: only fields present in the request
// body overwrite the stored record.
type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	HouseNo  *string `json:"houseNo"`
	Street   *string `json:"street"`
	Landmark *string `json:"landmark"`
	NearBy   *string `json:"nearBy"`
	City     *string `json:"city"`
	District *string `json:"district"`
	State    *string `json:"state"`
	Pincode  *string `json:"pincode"`
}

type AuthResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}
