package dto

// StaffRequest is the input of a back-office account creation.
type StaffRequest struct {
	Name     string `json:"name" validate:"notblank,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Role     string `json:"role" validate:"oneof=ADMIN USER"`
}
