package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type RoleHandler struct {
	service domain.RoleService
	logger  logger.Logger
}

func NewRoleHandler(service domain.RoleService, logger logger.Logger) *RoleHandler {
	return &RoleHandler{
		service: service,
		logger:  logger,
	}
}

type createRoleRequest struct {
	RoleName    string  `json:"role_name"`
	Description *string `json:"description"`
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	role, err := h.service.CreateRole(req.RoleName, description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rol oluşturulamadı", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Rol oluşturuldu", role)
}

func (h *RoleHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetRoles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Roller getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Roller getirildi", roles)
}

func (h *RoleHandler) GetRoleByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz rol kimliği", err)
		return
	}

	role, err := h.service.GetRoleByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rol getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Rol getirildi", role)
}

func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz rol kimliği", err)
		return
	}

	var upd domain.UpdateRole
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	role, err := h.service.UpdateRole(id, &upd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rol güncellenemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Rol güncellendi", role)
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz rol kimliği", err)
		return
	}

	if err := h.service.DeleteRole(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Rol silinemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Rol silindi", nil)
}

func (h *RoleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/role", h.CreateRole)
	mux.HandleFunc("GET /api/role", h.GetRoles)
	mux.HandleFunc("GET /api/role/{id}", h.GetRoleByID)
	mux.HandleFunc("PUT /api/role/{id}", h.UpdateRole)
	mux.HandleFunc("DELETE /api/role/{id}", h.DeleteRole)
}
