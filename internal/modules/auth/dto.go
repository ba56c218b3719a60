package auth

// SignupForm mirrors the registration page fields.
type SignupForm struct {
	Username        string `form:"username" validate:"required,max=150,alphanum"`
	FirstName       string `form:"first_name" validate:"required,max=150"`
	Password        string `form:"password" validate:"required,min=8,max=128"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
