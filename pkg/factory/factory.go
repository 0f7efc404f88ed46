package factory

import (
	"database/sql"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/domain"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB

	GetRoleRepository() domain.RoleRepository
	GetUserRepository() domain.UserRepository
	GetPostRepository() domain.PostRepository

	GetRoleService() domain.RoleService
	GetUserService() domain.UserService
	GetPostService() domain.PostService
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB

	roleRepository domain.RoleRepository
	userRepository domain.UserRepository
	postRepository domain.PostRepository

	roleService domain.RoleService
	userService domain.UserService
	postService domain.PostService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	factory := &AppFactory{
		config: cfg,
		logger: log,
		db:     db,
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.roleRepository = repository.NewRoleRepository(f.db, f.logger)
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.postRepository = repository.NewPostRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.roleService = service.NewRoleService(f.roleRepository, f.logger)
	f.userService = service.NewUserService(f.userRepository, f.logger)
	f.postService = service.NewPostService(f.postRepository, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetRoleRepository() domain.RoleRepository {
	return f.roleRepository
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetPostRepository() domain.PostRepository {
	return f.postRepository
}

func (f *AppFactory) GetRoleService() domain.RoleService {
	return f.roleService
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetPostService() domain.PostService {
	return f.postService
}
