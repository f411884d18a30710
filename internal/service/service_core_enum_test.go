// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/mock"
	"github.com/MKhiriev/go-biz-admin/models"
)

func newTestCoreEnumSvc(t *testing.T) (CoreEnumService, *mock.MockAPIClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	return NewCoreEnumService(api, logger.Nop()), api
}

// ── GetByType ────────────────────────────────────────────────────────────────

func TestCoreEnumService_GetByType_UnwrapsContent(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums/type/GENDER").
		Return(ok(`{"content":[{"id":1,"name":"Male"}]}`), nil)

	got, err := svc.GetByType(ctx, "GENDER")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Male"}]`, string(got))
}

func TestCoreEnumService_GetByType_NullContentReturnsRawBody(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums/type/GENDER").
		Return(ok(`{"content":null}`), nil)

	got, err := svc.GetByType(ctx, "GENDER")

	require.NoError(t, err)
	assert.JSONEq(t, `{"content":null}`, string(got))
}

func TestCoreEnumService_GetByType_UnwrappedBody(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums/type/BONUS_TYPE").
		Return(ok(`[{"id":4,"name":"Quarterly"}]`), nil)

	got, err := svc.GetByType(ctx, "BONUS_TYPE")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":4,"name":"Quarterly"}]`, string(got))
}

func TestCoreEnumService_GetByType_InvalidType(t *testing.T) {
	svc, _ := newTestCoreEnumSvc(t)

	for _, enumType := range []string{"", "  ", "../roles", "a/b", ".."} {
		_, err := svc.GetByType(context.Background(), enumType)
		assert.ErrorIs(t, err, ErrInvalidEnumType, enumType)
	}
}

func TestCoreEnumService_GetByType_ForwardsAnyCase(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums/type/gender").Return(ok(`{"content":null}`), nil)
	api.EXPECT().Get(ctx, "/api/core-enums/type/Bonus%20Type").Return(ok(`[]`), nil)

	_, err := svc.GetByType(ctx, "gender")
	require.NoError(t, err)
	_, err = svc.GetByType(ctx, "Bonus Type")
	require.NoError(t, err)
}

func TestCoreEnumService_GetByType_APIError(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, gomock.Any()).Return(nil, apiErr(http.StatusNotFound, "unknown enumeration"))

	_, err := svc.GetByType(ctx, "GENDER")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	var apiError *adapter.APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, "unknown enumeration", apiError.Message)
}

// ── ListByType / CRUD ────────────────────────────────────────────────────────

func TestCoreEnumService_ListByType(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums/type/GENDER").
		Return(ok(`{"content":[{"id":1,"type":"GENDER","name":"Male","sortOrder":1,"active":true},{"id":2,"type":"GENDER","name":"Female","sortOrder":2,"active":true}]}`), nil)

	got, err := svc.ListByType(ctx, "GENDER")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.CoreEnum{ID: 1, Type: "GENDER", Name: "Male", SortOrder: 1, Active: true}, got[0])
}

func TestCoreEnumService_ListByType_NullContentIsEmpty(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, gomock.Any()).Return(ok(`{"content":null}`), nil)

	got, err := svc.ListByType(ctx, "GENDER")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCoreEnumService_ListByType_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "string", body: `"GENDER"`},
		{name: "single object content", body: `{"content":{"id":1,"name":"Male"}}`},
		{name: "unwrapped object", body: `{"id":1,"name":"Male"}`},
		{name: "null content with extra keys", body: `{"content":null,"total":0}`},
		{name: "case variant envelope", body: `{"Content":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestCoreEnumSvc(t)
			ctx := context.Background()

			api.EXPECT().Get(ctx, gomock.Any()).Return(ok(tt.body), nil)

			got, err := svc.ListByType(ctx, "GENDER")

			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrDecodingResponse)
		})
	}
}

func TestCoreEnumService_List(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/api/core-enums").Return(ok(`[{"id":1,"type":"GENDER","name":"Male"}]`), nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCoreEnumService_Create(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Post(ctx, "/api/core-enums", models.CoreEnum{Type: "GENDER", Name: "Other"}).
		Return(ok(`{"content":{"id":3,"type":"GENDER","name":"Other"}}`), nil)

	got, err := svc.Create(ctx, models.CoreEnum{ID: 99, Type: "GENDER", Name: "Other"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestCoreEnumService_Create_Invalid(t *testing.T) {
	svc, _ := newTestCoreEnumSvc(t)

	_, err := svc.Create(context.Background(), models.CoreEnum{Type: "GENDER"})

	assert.ErrorIs(t, err, ErrInvalidCoreEnum)
}

func TestCoreEnumService_Update(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()
	value := models.CoreEnum{ID: 3, Type: "GENDER", Name: "Other", Active: true}

	api.EXPECT().Put(ctx, "/api/core-enums/3", value).Return(ok(`{"content":{"id":3,"type":"GENDER","name":"Other","active":true}}`), nil)

	got, err := svc.Update(ctx, value)

	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestCoreEnumService_Delete(t *testing.T) {
	svc, api := newTestCoreEnumSvc(t)
	ctx := context.Background()

	api.EXPECT().Delete(ctx, "/api/core-enums/3").Return(&adapter.Response{StatusCode: http.StatusNoContent}, nil)

	require.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrInvalidID)
}
