package service

import (
	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

type Services struct {
	AuthService     AuthService
	RoleService     RoleService
	CoreEnumService CoreEnumService
	BlogService     BlogService
	BonusService    BonusService
}

func NewServices(api adapter.APIClient, provider credentials.Provider, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(api, provider, logger),
		RoleService:     NewRoleService(api, logger),
		CoreEnumService: NewCoreEnumService(api, logger),
		BlogService:     NewBlogService(api, logger),
		BonusService:    NewBonusService(api, logger),
	}
}
