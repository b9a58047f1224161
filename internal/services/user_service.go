package services

import (
	"fmt"
	"log"

	"github.com/Taichi412/checklist-backend/internal/models"
	"github.com/Taichi412/checklist-backend/internal/repositories"
)

// UserService はユーザー関連のビジネスロジックを扱います。
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService は新しいUserServiceを作成します。
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Signup はパスワードをハッシュ化してユーザーを登録します。
// 挿入が失敗してもハッシュは破棄されるだけで、ロールバックは不要です。
func (s *UserService) Signup(req models.SignupRequest) (*models.User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createdUser, err := s.userRepo.Create(req.Email, hashedPassword)
	if err != nil {
		return nil, err
	}
	createdUser.PasswordHash = "" // レスポンスにパスワードを含めない
	return createdUser, nil
}

// Authenticate はユーザーを認証し、成功したらユーザーを返します。
func (s *UserService) Authenticate(req models.LoginRequest) (*models.User, error) {
	foundUser, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := VerifyPassword(foundUser.PasswordHash, req.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	foundUser.PasswordHash = "" // レスポンスにパスワードを含めない
	return foundUser, nil
}

// GetUser はIDでユーザーを取得します。
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
