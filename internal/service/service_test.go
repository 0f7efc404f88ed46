package service

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*domain.User
	lastUpd   *domain.UpdateUser
	deletedID uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) FindAll() ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(username, email, passwordHash string, roleID uuid.UUID) (*domain.User, error) {
	u := &domain.User{ID: uuid.New(), Username: username, Email: email, PasswordHash: passwordHash, RoleID: roleID}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Update(id uuid.UUID, upd *domain.UpdateUser) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	f.lastUpd = upd
	return u, nil
}

func (f *fakeUserRepo) Delete(id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	f.deletedID = id
	delete(f.users, id)
	return nil
}

func TestUserServiceDelegatesToRepository(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	roleID := uuid.New()
	created, err := svc.CreateUser("ayse", "ayse@example.com", "$2a$10$hash", roleID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)

	found, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	upd := &domain.UpdateUser{Email: strPtr("ayse@blog.example")}
	_, err = svc.UpdateUser(created.ID, upd)
	require.NoError(t, err)
	assert.Same(t, upd, repo.lastUpd)

	require.NoError(t, svc.DeleteUser(created.ID))
	assert.Equal(t, created.ID, repo.deletedID)
}

func TestUserServicePreservesNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testLogger())

	_, err := svc.GetUserByID(uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.UpdateUser(uuid.New(), &domain.UpdateUser{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = svc.DeleteUser(uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

type fakePostRepo struct {
	posts   map[uuid.UUID]*domain.Post
	lastUpd *domain.UpdatePost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (f *fakePostRepo) FindAll() ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (f *fakePostRepo) FindByID(id uuid.UUID) (*domain.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePostRepo) FindByUserID(userID uuid.UUID) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	for _, p := range f.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Create(title, content string, status domain.PostStatus, publishedAt *time.Time, userID uuid.UUID) (*domain.Post, error) {
	p := &domain.Post{ID: uuid.New(), Title: title, Content: content, Status: status, PublishedAt: publishedAt, UserID: userID}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostRepo) Update(id uuid.UUID, upd *domain.UpdatePost) (*domain.Post, error) {
	if upd.Status == nil {
		return nil, domain.ErrPostStatusRequired
	}
	if upd.UserID == nil {
		return nil, domain.ErrPostUserRequired
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	f.lastUpd = upd
	return p, nil
}

func (f *fakePostRepo) Delete(id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func TestPostServiceDelegatesToRepository(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, testLogger())

	userID := uuid.New()
	created, err := svc.CreatePost("başlık", "içerik", domain.PostStatusDraft, nil, userID)
	require.NoError(t, err)

	posts, err := svc.GetPostsByUserID(userID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)
}

func TestPostServiceUpdateRequiresStatusAndUser(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, testLogger())

	created, err := svc.CreatePost("başlık", "içerik", domain.PostStatusDraft, nil, uuid.New())
	require.NoError(t, err)

	_, err = svc.UpdatePost(created.ID, &domain.UpdatePost{})
	assert.ErrorIs(t, err, domain.ErrPostStatusRequired)

	status := domain.PostStatusArchived
	_, err = svc.UpdatePost(created.ID, &domain.UpdatePost{Status: &status})
	assert.ErrorIs(t, err, domain.ErrPostUserRequired)
}

func strPtr(s string) *string {
	return &s
}
