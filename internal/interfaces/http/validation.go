package http

import (
	"regexp"
	"strings"

	"github.com/tu-usuario/stock-control-api/internal/application/dto"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// validatePassword verifica las reglas mínimas de contraseña.
func validatePassword(field, password string) []dto.FieldError {
	var errs []dto.FieldError
	if len(password) < 6 {
		errs = append(errs, dto.FieldError{Field: field, Message: "debe tener al menos 6 caracteres"})
	}
	if !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !digitRe.MatchString(password) {
		errs = append(errs, dto.FieldError{Field: field, Message: "debe contener al menos una minúscula, una mayúscula y un número"})
	}
	return errs
}

func validateRegister(in dto.RegisterRequest) []dto.FieldError {
	var errs []dto.FieldError
	if !usernameRe.MatchString(in.Username) {
		errs = append(errs, dto.FieldError{Field: "username", Message: "debe tener entre 3 y 50 caracteres alfanuméricos o guión bajo"})
	}
	if !emailRe.MatchString(in.Email) {
		errs = append(errs, dto.FieldError{Field: "email", Message: "debe ser un correo electrónico válido"})
	}
	errs = append(errs, validatePassword("password", in.Password)...)
	if in.Role != "" && in.Role != "admin" && in.Role != "user" {
		errs = append(errs, dto.FieldError{Field: "role", Message: "debe ser admin o user"})
	}
	return errs
}

func validateLogin(in dto.LoginRequest) []dto.FieldError {
	var errs []dto.FieldError
	if strings.TrimSpace(in.Username) == "" {
		errs = append(errs, dto.FieldError{Field: "username", Message: "es requerido"})
	}
	if in.Password == "" {
		errs = append(errs, dto.FieldError{Field: "password", Message: "es requerido"})
	}
	return errs
}

func validateChangePassword(in dto.ChangePasswordRequest) []dto.FieldError {
	var errs []dto.FieldError
	if in.CurrentPassword == "" {
		errs = append(errs, dto.FieldError{Field: "current_password", Message: "es requerido"})
	}
	errs = append(errs, validatePassword("new_password", in.NewPassword)...)
	return errs
}
