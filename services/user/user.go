// File: services/user/user.go
package user

import (
	"fmt"
	"time"

	userRepo "boatify/database/repository/user"
	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued auth tokens.
const tokenTTL = 24 * time.Hour

// AuthResponse pairs a user with a freshly issued token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts and authentication.
type UserService interface {
	Register(input models.RegisterInput) (*AuthResponse, error)
	Authenticate(input models.LoginInput) (*AuthResponse, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, input models.ProfileUpdateInput) (*models.User, error)

	// Admin operations.
	GetAllUsers() ([]models.User, error)
	GetUserByID(id string) (*models.User, error)
	AdminUpdateUser(id string, input models.AdminUserUpdateInput) (*models.User, error)
	DeleteUser(id string) error
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(input models.RegisterInput) (*AuthResponse, error) {
	if existing, err := s.Repo.GetByEmail(input.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, svcerr.Conflict("Email already in use")
	}
	if existing, err := s.Repo.GetByUsername(input.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, svcerr.Conflict("Username already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		FamilyName:   input.FamilyName,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		Country:      input.Country,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Info("user registered",
		zap.String("user", user.ID),
		zap.String("username", user.Username),
	)
	return s.issueToken(user)
}

func (s *DefaultUserService) Authenticate(input models.LoginInput) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, svcerr.Validation("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, svcerr.Validation("Invalid credentials")
	}
	return s.issueToken(user)
}

func (s *DefaultUserService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	utils.CacheAuthToken(user.ID, token, tokenTTL)
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, svcerr.NotFound("User not found")
	}
	return user, nil
}

func (s *DefaultUserService) UpdateProfile(userID string, input models.ProfileUpdateInput) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, svcerr.NotFound("User not found")
	}

	if input.Username != "" && input.Username != user.Username {
		if existing, err := s.Repo.GetByUsername(input.Username); err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		} else if existing != nil && existing.ID != userID {
			return nil, svcerr.Conflict("Username already in use")
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if existing, err := s.Repo.GetByEmail(input.Email); err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if existing != nil && existing.ID != userID {
			return nil, svcerr.Conflict("Email already in use")
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.GetProfile(id)
}

func (s *DefaultUserService) AdminUpdateUser(id string, input models.AdminUserUpdateInput) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, svcerr.NotFound("User not found")
	}

	if input.Username != "" && input.Username != user.Username {
		if existing, err := s.Repo.GetByUsername(input.Username); err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		} else if existing != nil && existing.ID != id {
			return nil, svcerr.Conflict("Username already in use")
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if existing, err := s.Repo.GetByEmail(input.Email); err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if existing != nil && existing.ID != id {
			return nil, svcerr.Conflict("Email already in use")
		}
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) DeleteUser(id string) error {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return svcerr.NotFound("User not found")
	}
	return s.Repo.Delete(id)
}
