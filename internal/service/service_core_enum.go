package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
	"github.com/MKhiriev/go-biz-admin/models"
)

const (
	pathCoreEnums       = "/api/core-enums"
	pathCoreEnumsByType = "/api/core-enums/type/"
)

type coreEnumService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewCoreEnumService(api adapter.APIClient, logger *logger.Logger) CoreEnumService {
	return &coreEnumService{
		api:       api,
		validator: validators.NewAdminValidator(),
		logger:    logger,
	}
}

func (c *coreEnumService) GetByType(ctx context.Context, enumType string) (json.RawMessage, error) {
	if err := validators.ValidateEnumPath(enumType); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidEnumType, enumType, err)
	}

	resp, err := c.api.Get(ctx, pathCoreEnumsByType+url.PathEscape(enumType))
	if err != nil {
		return nil, fmt.Errorf("get core enums of type %s: %w", enumType, err)
	}
	return resp.Content(), nil
}

func (c *coreEnumService) ListByType(ctx context.Context, enumType string) ([]models.CoreEnum, error) {
	payload, err := c.GetByType(ctx, enumType)
	if err != nil {
		return nil, err
	}

	// an envelope left in place carries null content: no values
	if models.IsEmptyEnvelope(payload) {
		return []models.CoreEnum{}, nil
	}

	var values []models.CoreEnum
	if err = json.Unmarshal(payload, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return values, nil
}

func (c *coreEnumService) List(ctx context.Context) ([]models.CoreEnum, error) {
	resp, err := c.api.Get(ctx, pathCoreEnums)
	if err != nil {
		return nil, fmt.Errorf("list core enums: %w", err)
	}
	return decodeContent[[]models.CoreEnum](resp)
}

func (c *coreEnumService) Create(ctx context.Context, enum models.CoreEnum) (models.CoreEnum, error) {
	if err := c.validator.Validate(ctx, enum); err != nil {
		return models.CoreEnum{}, fmt.Errorf("%w: %w", ErrInvalidCoreEnum, err)
	}
	enum.ID = 0

	resp, err := c.api.Post(ctx, pathCoreEnums, enum)
	if err != nil {
		return models.CoreEnum{}, fmt.Errorf("create core enum: %w", err)
	}
	return decodeContent[models.CoreEnum](resp)
}

func (c *coreEnumService) Update(ctx context.Context, enum models.CoreEnum) (models.CoreEnum, error) {
	path, err := idPath(pathCoreEnums, enum.ID)
	if err != nil {
		return models.CoreEnum{}, err
	}
	if err = c.validator.Validate(ctx, enum); err != nil {
		return models.CoreEnum{}, fmt.Errorf("%w: %w", ErrInvalidCoreEnum, err)
	}

	resp, err := c.api.Put(ctx, path, enum)
	if err != nil {
		return models.CoreEnum{}, fmt.Errorf("update core enum %d: %w", enum.ID, err)
	}
	return decodeContent[models.CoreEnum](resp)
}

func (c *coreEnumService) Delete(ctx context.Context, id int64) error {
	path, err := idPath(pathCoreEnums, id)
	if err != nil {
		return err
	}

	if _, err = c.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete core enum %d: %w", id, err)
	}
	return nil
}
