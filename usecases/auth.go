package usecases

import (
	"errors"
	"time"

	"pitchcraft-server/apperr"
	"pitchcraft-server/auth"
	"pitchcraft-server/entities"
	"pitchcraft-server/repositories"

	"gorm.io/gorm"
)

// invalidCredentials is deliberately uniform so login failures never reveal
// whether the email is registered.
const invalidCredentials = "Invalid email or password"

type AuthUseCase struct {
	UserRepo    repositories.UserRepository
	JWTSecret   []byte
	TokenExpiry time.Duration
}

func NewAuthUseCase(userRepo repositories.UserRepository, jwtSecret []byte, tokenExpiry time.Duration) *AuthUseCase {
	return &AuthUseCase{
		UserRepo:    userRepo,
		JWTSecret:   jwtSecret,
		TokenExpiry: tokenExpiry,
	}
}

// Register creates an account and returns it with a fresh session token.
func (uc *AuthUseCase) Register(name, email, password string) (*entities.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperr.Validation("Please provide all required fields")
	}
	if len(password) < 6 {
		return nil, "", apperr.Validation("Password must be at least 6 characters")
	}

	existing, err := uc.UserRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.Conflict("User already exists with this email")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleStandard,
		IsActive:     true,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, uc.JWTSecret, uc.TokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the account with a session token.
func (uc *AuthUseCase) Login(email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("Please provide email and password")
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Auth(invalidCredentials)
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", apperr.Auth("Your account has been deactivated")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperr.Auth(invalidCredentials)
	}

	token, err := auth.GenerateToken(user.ID, uc.JWTSecret, uc.TokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to an active account.
func (uc *AuthUseCase) Authenticate(token string) (*entities.User, error) {
	if token == "" {
		return nil, apperr.Auth("Not authorized, no token provided")
	}

	userID, err := auth.UserIDFromToken(token, uc.JWTSecret)
	if err != nil {
		return nil, apperr.Auth("Not authorized, token failed")
	}

	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("User not found")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Auth("User account is deactivated")
	}

	return user, nil
}

// GetProfile returns the account for userID.
func (uc *AuthUseCase) GetProfile(userID string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces name, email, and/or password when provided.
func (uc *AuthUseCase) UpdateProfile(userID, name, email, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" && email != user.Email {
		existing, err := uc.UserRepo.GetByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("User already exists with this email")
		}
		user.Email = email
	}
	if password != "" {
		if len(password) < 6 {
			return nil, apperr.Validation("Password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password before accepting the new one.
func (uc *AuthUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperr.Validation("Please provide current and new password")
	}
	if len(newPassword) < 6 {
		return apperr.Validation("New password must be at least 6 characters")
	}

	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return apperr.Auth("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return uc.UserRepo.Update(user)
}
