package domain

import "errors"

var (
	ErrRoleNotFound       = errors.New("rol bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrPostNotFound       = errors.New("gönderi bulunamadı")
	ErrInvalidPostStatus  = errors.New("geçersiz gönderi durumu")
	ErrPostStatusRequired = errors.New("gönderi durumu zorunlu")
	ErrPostUserRequired   = errors.New("gönderi kullanıcısı zorunlu")
)
