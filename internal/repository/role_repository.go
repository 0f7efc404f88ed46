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

type RoleRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewRoleRepository(db *sql.DB, logger logger.Logger) domain.RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: logger,
	}
}

func scanRole(row rowScanner) (*domain.Role, error) {
	var (
		role        domain.Role
		idBytes     []byte
		description sql.NullString
	)

	if err := row.Scan(&idBytes, &role.RoleName, &description, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return nil, err
	}

	id, err := identifier.Decode(idBytes)
	if err != nil {
		return nil, fmt.Errorf("rol kimliği çözümlenemedi: %w", err)
	}
	role.ID = id

	if description.Valid {
		role.Description = &description.String
	}

	return &role, nil
}

func (r *RoleRepository) FindAll() ([]*domain.Role, error) {
	query := `SELECT id, role_name, description, created_at, updated_at FROM roles`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Roller listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("roller listelenemedi: %w", err)
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			r.logger.Error("Rol satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("rol satırı okunamadı: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("roller listelenemedi: %w", err)
	}

	return roles, nil
}

func (r *RoleRepository) FindByID(id uuid.UUID) (*domain.Role, error) {
	query := `SELECT id, role_name, description, created_at, updated_at FROM roles WHERE id = ?`

	role, err := scanRole(r.db.QueryRow(query, identifier.Encode(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		r.logger.Error("Rol ID'ye göre bulunamadı", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("rol okunamadı: %w", err)
	}

	return role, nil
}

func (r *RoleRepository) Create(roleName, description string) (*domain.Role, error) {
	query := `
		INSERT INTO roles (id, role_name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	role := &domain.Role{
		ID:          uuid.New(),
		RoleName:    roleName,
		Description: &description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.Exec(
		query,
		identifier.Encode(role.ID),
		role.RoleName,
		role.Description,
		role.CreatedAt,
		role.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Rol oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("rol oluşturulamadı: %w", err)
	}

	return role, nil
}

func (r *RoleRepository) Update(id uuid.UUID, upd *domain.UpdateRole) (*domain.Role, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if upd.RoleName != nil {
		merged.RoleName = *upd.RoleName
	}
	if upd.Description != nil {
		merged.Description = upd.Description
	}
	merged.UpdatedAt = time.Now()

	query := `UPDATE roles SET role_name = ?, description = ?, updated_at = ? WHERE id = ?`

	_, err = r.db.Exec(query, merged.RoleName, merged.Description, merged.UpdatedAt, identifier.Encode(id))
	if err != nil {
		r.logger.Error("Rol güncellenemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, fmt.Errorf("rol güncellenemedi: %w", err)
	}

	return r.FindByID(id)
}

func (r *RoleRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM roles WHERE id = ?`

	_, err := r.db.Exec(query, identifier.Encode(id))
	if err != nil {
		r.logger.Error("Rol silinemedi", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return fmt.Errorf("rol silinemedi: %w", err)
	}

	return nil
}
