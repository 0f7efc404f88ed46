package service

import (
	"fmt"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, logger logger.Logger) domain.UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserService) GetUsers() ([]*domain.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("Kullanıcılar alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar alınamadı: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Kullanıcı alınamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı alınamadı: %w", err)
	}

	return user, nil
}

// CreateUser parola özetini olduğu gibi taşır; düz metin parola bu katmana
// hiçbir zaman inmez, özetleme handler sınırında yapılır.
func (s *UserService) CreateUser(username, email, passwordHash string, roleID uuid.UUID) (*domain.User, error) {
	user, err := s.repo.Create(username, email, passwordHash, roleID)
	if err != nil {
		s.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateUser(id uuid.UUID, upd *domain.UpdateUser) (*domain.User, error) {
	user, err := s.repo.Update(id, upd)
	if err != nil {
		s.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return user, nil
}

func (s *UserService) DeleteUser(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return nil
}
