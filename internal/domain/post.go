package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostStatus saklama katmanında küçük harfli üç sabit belirteçten biri olarak
// tutulur; tanınmayan bir belirteç çözümleme hatasıdır, varsayılana düşmez.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

func ParsePostStatus(token string) (PostStatus, error) {
	switch token {
	case "draft":
		return PostStatusDraft, nil
	case "published":
		return PostStatusPublished, nil
	case "archived":
		return PostStatusArchived, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPostStatus, token)
	}
}

func (s PostStatus) String() string {
	return string(s)
}

func (s *PostStatus) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}

	parsed, err := ParsePostStatus(token)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      PostStatus `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	UserID      uuid.UUID  `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UpdatePost kısmi güncelleme isteğidir. Status ve UserID sözleşme gereği
// zorunludur; Title, Content ve PublishedAt nil ise mevcut değer korunur.
type UpdatePost struct {
	Title       *string     `json:"title"`
	Content     *string     `json:"content"`
	Status      *PostStatus `json:"status"`
	PublishedAt *time.Time  `json:"published_at"`
	UserID      *uuid.UUID  `json:"user_id"`
}

type PostRepository interface {
	FindAll() ([]*Post, error)
	FindByID(id uuid.UUID) (*Post, error)
	FindByUserID(userID uuid.UUID) ([]*Post, error)
	Create(title, content string, status PostStatus, publishedAt *time.Time, userID uuid.UUID) (*Post, error)
	Update(id uuid.UUID, upd *UpdatePost) (*Post, error)
	Delete(id uuid.UUID) error
}

type PostService interface {
	GetPosts() ([]*Post, error)
	GetPostByID(id uuid.UUID) (*Post, error)
	GetPostsByUserID(userID uuid.UUID) ([]*Post, error)
	CreatePost(title, content string, status PostStatus, publishedAt *time.Time, userID uuid.UUID) (*Post, error)
	UpdatePost(id uuid.UUID, upd *UpdatePost) (*Post, error)
	DeletePost(id uuid.UUID) error
}
