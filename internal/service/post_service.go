package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type PostService struct {
	repo   domain.PostRepository
	logger logger.Logger
}

func NewPostService(repo domain.PostRepository, logger logger.Logger) domain.PostService {
	return &PostService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PostService) GetPosts() ([]*domain.Post, error) {
	posts, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("Gönderiler alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("gönderiler alınamadı: %w", err)
	}

	return posts, nil
}

func (s *PostService) GetPostByID(id uuid.UUID) (*domain.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("Gönderi alınamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("gönderi alınamadı: %w", err)
	}

	return post, nil
}

func (s *PostService) GetPostsByUserID(userID uuid.UUID) ([]*domain.Post, error) {
	posts, err := s.repo.FindByUserID(userID)
	if err != nil {
		s.logger.Error("Kullanıcının gönderileri alınamadı", map[string]interface{}{"user_id": userID.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcının gönderileri alınamadı: %w", err)
	}

	return posts, nil
}

func (s *PostService) CreatePost(title, content string, status domain.PostStatus, publishedAt *time.Time, userID uuid.UUID) (*domain.Post, error) {
	post, err := s.repo.Create(title, content, status, publishedAt, userID)
	if err != nil {
		s.logger.Error("Gönderi oluşturulamadı", map[string]interface{}{"title": title, "error": err.Error()})
		return nil, fmt.Errorf("gönderi oluşturulamadı: %w", err)
	}

	return post, nil
}

func (s *PostService) UpdatePost(id uuid.UUID, upd *domain.UpdatePost) (*domain.Post, error) {
	post, err := s.repo.Update(id, upd)
	if err != nil {
		s.logger.Error("Gönderi güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("gönderi güncellenemedi: %w", err)
	}

	return post, nil
}

func (s *PostService) DeletePost(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Gönderi silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("gönderi silinemedi: %w", err)
	}

	return nil
}
