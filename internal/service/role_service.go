package service

import (
	"fmt"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

// RoleService şimdilik deposuna birebir delege eder; iş kuralları
// eklenecekse yeri burasıdır, depo veya handler değil.
type RoleService struct {
	repo   domain.RoleRepository
	logger logger.Logger
}

func NewRoleService(repo domain.RoleRepository, logger logger.Logger) domain.RoleService {
	return &RoleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *RoleService) GetRoles() ([]*domain.Role, error) {
	roles, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("Roller alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("roller alınamadı: %w", err)
	}

	return roles, nil
}

func (s *RoleService) GetRoleByID(id uuid.UUID) (*domain.Role, error) {
	role, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Rol alınamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("rol alınamadı: %w", err)
	}

	return role, nil
}

func (s *RoleService) CreateRole(roleName, description string) (*domain.Role, error) {
	role, err := s.repo.Create(roleName, description)
	if err != nil {
		s.logger.Error("Rol oluşturulamadı", map[string]interface{}{"role_name": roleName, "error": err.Error()})
		return nil, fmt.Errorf("rol oluşturulamadı: %w", err)
	}

	return role, nil
}

func (s *RoleService) UpdateRole(id uuid.UUID, upd *domain.UpdateRole) (*domain.Role, error) {
	role, err := s.repo.Update(id, upd)
	if err != nil {
		s.logger.Error("Rol güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("rol güncellenemedi: %w", err)
	}

	return role, nil
}

func (s *RoleService) DeleteRole(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Rol silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("rol silinemedi: %w", err)
	}

	return nil
}
