package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
	"github.com/MKhiriev/go-biz-admin/models"
)

const pathRoles = "/api/roles"

type roleService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewRoleService(api adapter.APIClient, logger *logger.Logger) RoleService {
	return &roleService{
		api:       api,
		validator: validators.NewAdminValidator(),
		logger:    logger,
	}
}

func (r *roleService) List(ctx context.Context) ([]models.Role, error) {
	resp, err := r.api.Get(ctx, pathRoles)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return decodeContent[[]models.Role](resp)
}

func (r *roleService) Get(ctx context.Context, id int64) (models.Role, error) {
	path, err := idPath(pathRoles, id)
	if err != nil {
		return models.Role{}, err
	}

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return models.Role{}, fmt.Errorf("get role %d: %w", id, err)
	}
	return decodeContent[models.Role](resp)
}

func (r *roleService) Create(ctx context.Context, role models.Role) (models.Role, error) {
	if err := r.validator.Validate(ctx, role); err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}
	role.ID = 0

	resp, err := r.api.Post(ctx, pathRoles, role)
	if err != nil {
		return models.Role{}, fmt.Errorf("create role: %w", err)
	}
	return decodeContent[models.Role](resp)
}

func (r *roleService) Update(ctx context.Context, role models.Role) (models.Role, error) {
	path, err := idPath(pathRoles, role.ID)
	if err != nil {
		return models.Role{}, err
	}
	if err = r.validator.Validate(ctx, role); err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}

	resp, err := r.api.Put(ctx, path, role)
	if err != nil {
		return models.Role{}, fmt.Errorf("update role %d: %w", role.ID, err)
	}
	return decodeContent[models.Role](resp)
}

func (r *roleService) Delete(ctx context.Context, id int64) error {
	path, err := idPath(pathRoles, id)
	if err != nil {
		return err
	}

	if _, err = r.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	return nil
}
