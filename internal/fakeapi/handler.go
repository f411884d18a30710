package fakeapi

import (
	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
)

// TokenIssuer is the "iss" claim of the tokens issued by the fake API.
const TokenIssuer = "go-biz-admin-fakeapi"

type Handler struct {
	store     *Store
	validator validators.Validator
	ids       *utils.UUIDGenerator
	cfg       config.FakeAPI

	logger *logger.Logger
}

func NewHandler(store *Store, cfg config.FakeAPI, logger *logger.Logger) *Handler {
	logger.Info().Msg("fake api handler created")
	return &Handler{
		store:     store,
		validator: validators.NewAdminValidator(),
		ids:       utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}
