package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
	"github.com/MKhiriev/go-biz-admin/models"
)

const pathBonuses = "/api/bonuses"

type bonusService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewBonusService(api adapter.APIClient, logger *logger.Logger) BonusService {
	return &bonusService{
		api:       api,
		validator: validators.NewAdminValidator(),
		logger:    logger,
	}
}

func (b *bonusService) List(ctx context.Context, employeeID int64) ([]models.Bonus, error) {
	if employeeID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, employeeID)
	}

	query := map[string]string{}
	if employeeID > 0 {
		query["employeeId"] = strconv.FormatInt(employeeID, 10)
	}

	resp, err := b.api.Get(ctx, pathBonuses, adapter.WithQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list bonuses: %w", err)
	}
	return decodeContent[[]models.Bonus](resp)
}

func (b *bonusService) Create(ctx context.Context, bonus models.Bonus) (models.Bonus, error) {
	bonus.Currency = strings.ToUpper(strings.TrimSpace(bonus.Currency))
	if err := b.validator.Validate(ctx, bonus); err != nil {
		return models.Bonus{}, fmt.Errorf("%w: %w", ErrInvalidBonus, err)
	}
	bonus.ID = 0

	resp, err := b.api.Post(ctx, pathBonuses, bonus)
	if err != nil {
		return models.Bonus{}, fmt.Errorf("create bonus: %w", err)
	}
	return decodeContent[models.Bonus](resp)
}

func (b *bonusService) Update(ctx context.Context, bonus models.Bonus) (models.Bonus, error) {
	path, err := idPath(pathBonuses, bonus.ID)
	if err != nil {
		return models.Bonus{}, err
	}
	bonus.Currency = strings.ToUpper(strings.TrimSpace(bonus.Currency))
	if err = b.validator.Validate(ctx, bonus); err != nil {
		return models.Bonus{}, fmt.Errorf("%w: %w", ErrInvalidBonus, err)
	}

	resp, err := b.api.Put(ctx, path, bonus)
	if err != nil {
		return models.Bonus{}, fmt.Errorf("update bonus %d: %w", bonus.ID, err)
	}
	return decodeContent[models.Bonus](resp)
}

func (b *bonusService) Delete(ctx context.Context, id int64) error {
	path, err := idPath(pathBonuses, id)
	if err != nil {
		return err
	}

	if _, err = b.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete bonus %d: %w", id, err)
	}
	return nil
}
