package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type PostHandler struct {
	service domain.PostService
	logger  logger.Logger
}

func NewPostHandler(service domain.PostService, logger logger.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		logger:  logger,
	}
}

type createPostRequest struct {
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Status      domain.PostStatus `json:"status"`
	PublishedAt *time.Time        `json:"published_at"`
	UserID      string            `json:"user_id"`
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderi oluşturulamadı", err)
		return
	}

	post, err := h.service.CreatePost(req.Title, req.Content, req.Status, req.PublishedAt, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderi oluşturulamadı", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Gönderi oluşturuldu", post)
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPosts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderiler getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Gönderiler getirildi", posts)
}

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz gönderi kimliği", err)
		return
	}

	post, err := h.service.GetPostByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderi getirilemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Gönderi getirildi", post)
}

type updatePostRequest struct {
	Title       *string            `json:"title"`
	Content     *string            `json:"content"`
	Status      *domain.PostStatus `json:"status"`
	PublishedAt *time.Time         `json:"published_at"`
	UserID      *string            `json:"user_id"`
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz gönderi kimliği", err)
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", err)
		return
	}

	upd := domain.UpdatePost{
		Title:       req.Title,
		Content:     req.Content,
		Status:      req.Status,
		PublishedAt: req.PublishedAt,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Gönderi güncellenemedi", err)
			return
		}
		upd.UserID = &userID
	}

	post, err := h.service.UpdatePost(id, &upd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderi güncellenemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Gönderi güncellendi", post)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz gönderi kimliği", err)
		return
	}

	if err := h.service.DeletePost(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Gönderi silinemedi", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Gönderi silindi", nil)
}

func (h *PostHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/post", h.CreatePost)
	mux.HandleFunc("GET /api/post", h.GetPosts)
	mux.HandleFunc("GET /api/post/{id}", h.GetPostByID)
	mux.HandleFunc("PUT /api/post/{id}", h.UpdatePost)
	mux.HandleFunc("DELETE /api/post/{id}", h.DeletePost)
}
