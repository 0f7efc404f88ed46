package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/identifier"
	"blogapi/pkg/logger"
)

type PostRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostRepository(db *sql.DB, logger logger.Logger) domain.PostRepository {
	return &PostRepository{
		db:     db,
		logger: logger,
	}
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		post        domain.Post
		idBytes     []byte
		userIDBytes []byte
		statusToken string
		publishedAt sql.NullTime
	)

	err := row.Scan(
		&idBytes,
		&post.Title,
		&post.Content,
		&statusToken,
		&publishedAt,
		&userIDBytes,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	id, err := identifier.Decode(idBytes)
	if err != nil {
		return nil, fmt.Errorf("gönderi kimliği çözümlenemedi: %w", err)
	}
	post.ID = id

	userID, err := identifier.Decode(userIDBytes)
	if err != nil {
		return nil, fmt.Errorf("gönderinin kullanıcı kimliği çözümlenemedi: %w", err)
	}
	post.UserID = userID

	status, err := domain.ParsePostStatus(statusToken)
	if err != nil {
		return nil, fmt.Errorf("gönderi durumu çözümlenemedi: %w", err)
	}
	post.Status = status

	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}

	return &post, nil
}

const postColumns = `id, title, content, status, published_at, user_id, created_at, updated_at`

func (r *PostRepository) FindAll() ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Gönderiler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("gönderiler listelenemedi: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *PostRepository) FindByID(id uuid.UUID) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

	post, err := scanPost(r.db.QueryRow(query, identifier.Encode(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		r.logger.Error("Gönderi ID'ye göre bulunamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("gönderi okunamadı: %w", err)
	}

	return post, nil
}

func (r *PostRepository) FindByUserID(userID uuid.UUID) ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = ?`

	rows, err := r.db.Query(query, identifier.Encode(userID))
	if err != nil {
		r.logger.Error("Kullanıcının gönderileri listelenemedi", map[string]interface{}{"user_id": userID.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcının gönderileri listelenemedi: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("gönderi satırı okunamadı: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gönderiler listelenemedi: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Create(title, content string, status domain.PostStatus, publishedAt *time.Time, userID uuid.UUID) (*domain.Post, error) {
	query := `
		INSERT INTO posts (id, title, content, status, published_at, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	post := &domain.Post{
		ID:          uuid.New(),
		Title:       title,
		Content:     content,
		Status:      status,
		PublishedAt: publishedAt,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.Exec(
		query,
		identifier.Encode(post.ID),
		post.Title,
		post.Content,
		post.Status.String(),
		post.PublishedAt,
		identifier.Encode(post.UserID),
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Gönderi oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("gönderi oluşturulamadı: %w", err)
	}

	return post, nil
}

// Update sözleşme gereği status ve user_id ister; diğer alanlar nil ise
// mevcut değer korunur.
func (r *PostRepository) Update(id uuid.UUID, upd *domain.UpdatePost) (*domain.Post, error) {
	if upd.Status == nil {
		return nil, domain.ErrPostStatusRequired
	}
	if upd.UserID == nil {
		return nil, domain.ErrPostUserRequired
	}

	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Content != nil {
		merged.Content = *upd.Content
	}
	if upd.PublishedAt != nil {
		merged.PublishedAt = upd.PublishedAt
	}
	merged.Status = *upd.Status
	merged.UserID = *upd.UserID
	merged.UpdatedAt = time.Now()

	query := `
		UPDATE posts
		SET title = ?, content = ?, status = ?, published_at = ?, user_id = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.db.Exec(
		query,
		merged.Title,
		merged.Content,
		merged.Status.String(),
		merged.PublishedAt,
		identifier.Encode(merged.UserID),
		merged.UpdatedAt,
		identifier.Encode(id),
	)
	if err != nil {
		r.logger.Error("Gönderi güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("gönderi güncellenemedi: %w", err)
	}

	return r.FindByID(id)
}

func (r *PostRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = ?`

	_, err := r.db.Exec(query, identifier.Encode(id))
	if err != nil {
		r.logger.Error("Gönderi silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("gönderi silinemedi: %w", err)
	}

	return nil
}
