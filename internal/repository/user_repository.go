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

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user        domain.User
		idBytes     []byte
		roleIDBytes []byte
	)

	err := row.Scan(
		&idBytes,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&roleIDBytes,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	id, err := identifier.Decode(idBytes)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı kimliği çözümlenemedi: %w", err)
	}
	user.ID = id

	roleID, err := identifier.Decode(roleIDBytes)
	if err != nil {
		return nil, fmt.Errorf("kullanıcının rol kimliği çözümlenemedi: %w", err)
	}
	user.RoleID = roleID

	return &user, nil
}

func (r *UserRepository) FindAll() ([]*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role_id, created_at, updated_at FROM users`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logger.Error("Kullanıcı satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("kullanıcı satırı okunamadı: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}

	return users, nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role_id, created_at, updated_at FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRow(query, identifier.Encode(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı okunamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(username, email, passwordHash string, roleID uuid.UUID) (*domain.User, error) {
	query := `
		INSERT INTO users (id, username, email, password_hash, role_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.Exec(
		query,
		identifier.Encode(user.ID),
		user.Username,
		user.Email,
		user.PasswordHash,
		identifier.Encode(user.RoleID),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	return user, nil
}

// Update mutasyondan önce satırın varlığını ayrıca doğrular; sürücünün
// etkilenen satır sayısına güvenilmez. Ön kontrol ile mutasyon arasında
// eşzamanlı bir silme yarış penceresi vardır, işlem sarmalanmaz.
func (r *UserRepository) Update(id uuid.UUID, upd *domain.UpdateUser) (*domain.User, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if upd.Username != nil {
		merged.Username = *upd.Username
	}
	if upd.Email != nil {
		merged.Email = *upd.Email
	}
	if upd.RoleID != nil {
		merged.RoleID = *upd.RoleID
	}
	merged.UpdatedAt = time.Now()

	query := `UPDATE users SET username = ?, email = ?, role_id = ?, updated_at = ? WHERE id = ?`

	_, err = r.db.Exec(
		query,
		merged.Username,
		merged.Email,
		identifier.Encode(merged.RoleID),
		merged.UpdatedAt,
		identifier.Encode(id),
	)
	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return r.FindByID(id)
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}

	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, identifier.Encode(id))
	if err != nil {
		r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return nil
}
