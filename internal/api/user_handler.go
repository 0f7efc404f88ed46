package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type UserHandler struct {
	service     domain.UserService
	postService domain.PostService
	logger      logger.Logger
}

func NewUserHandler(service domain.UserService, postService domain.PostService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service:     service,
		postService: postService,
		logger:      logger,
	}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

// CreateUser düz metin parolayı burada özetler; servis ve depo katmanı
// yalnızca özeti görür.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Şifre özeti oluşturulamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusInternalServerError, "Şifre özeti oluşturulamadı", err)
		return
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcı oluşturulamadı", err)
		return
	}

	user, err := h.service.CreateUser(req.Username, req.Email, string(hash), roleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcı oluşturulamadı", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Kullanıcı oluşturuldu", user)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcılar getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Kullanıcılar getirildi", users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz kullanıcı kimliği", err)
		return
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcı getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Kullanıcı getirildi", user)
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	RoleID   *string `json:"role_id"`
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz kullanıcı kimliği", err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	upd := domain.UpdateUser{
		Username: req.Username,
		Email:    req.Email,
	}
	if req.RoleID != nil {
		roleID, err := uuid.Parse(*req.RoleID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Kullanıcı güncellenemedi", err)
			return
		}
		upd.RoleID = &roleID
	}

	user, err := h.service.UpdateUser(id, &upd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcı güncellenemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Kullanıcı güncellendi", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz kullanıcı kimliği", err)
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcı silinemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Kullanıcı silindi", nil)
}

func (h *UserHandler) GetPostsByUserID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz kullanıcı kimliği", err)
		return
	}

	posts, err := h.postService.GetPostsByUserID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Kullanıcının gönderileri getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Kullanıcının gönderileri getirildi", posts)
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/user", h.CreateUser)
	mux.HandleFunc("GET /api/user", h.GetUsers)
	mux.HandleFunc("GET /api/user/{id}", h.GetUserByID)
	mux.HandleFunc("PUT /api/user/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /api/user/{id}", h.DeleteUser)
	mux.HandleFunc("GET /api/user/{id}/posts", h.GetPostsByUserID)
}
