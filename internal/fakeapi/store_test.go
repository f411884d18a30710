package fakeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-biz-admin/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore("Admin@Example.com", "admin")
	require.NoError(t, err)
	return s
}

func TestStore_Seed(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.Roles(), 2)

	genders := s.Enums(models.EnumTypeGender)
	require.Len(t, genders, 2)
	assert.Equal(t, "Male", genders[0].Name)
	assert.Equal(t, 1, genders[0].SortOrder)
	assert.True(t, genders[0].Active)

	assert.Empty(t, s.Enums("UNKNOWN"))
	assert.NotNil(t, s.Enums("UNKNOWN"))
}

func TestStore_Authenticate(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Authenticate(" admin@example.com ", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	_, err = s.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, errBadCredential)

	_, err = s.Authenticate("nobody@example.com", "admin")
	assert.ErrorIs(t, err, errBadCredential)

	found, err := s.User(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestStore_RoleLifecycle(t *testing.T) {
	s := newTestStore(t)

	created, err := s.SaveRole(models.Role{Name: "Support"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = s.SaveRole(models.Role{Name: "support"})
	assert.ErrorIs(t, err, errAlreadyExists)

	created.Description = "Handles tickets"
	updated, err := s.SaveRole(created)
	require.NoError(t, err)
	assert.Equal(t, "Handles tickets", updated.Description)

	_, err = s.SaveRole(models.Role{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, errNotFound)

	require.NoError(t, s.DeleteRole(created.ID))
	assert.ErrorIs(t, s.DeleteRole(created.ID), errNotFound)
	_, err = s.Role(created.ID)
	assert.ErrorIs(t, err, errNotFound)
}

func TestStore_BlogDefaults(t *testing.T) {
	s := newTestStore(t)

	b, err := s.SaveBlog(models.Blog{Title: "Hello, World!  2026", CoverURL: "/files/a.png", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2026", b.Slug)
	assert.Equal(t, models.BlogStatusDraft, b.Status)
	assert.False(t, b.CreatedAt.IsZero())

	_, err = s.SaveBlog(models.Blog{Title: "hello world 2026"})
	assert.ErrorIs(t, err, errAlreadyExists)

	edited, err := s.SaveBlog(models.Blog{ID: b.ID, Title: "Hello, World!  2026", Content: "new"})
	require.NoError(t, err)
	assert.Equal(t, b.CreatedAt, edited.CreatedAt)
	assert.Equal(t, "/files/a.png", edited.CoverURL)
	assert.Equal(t, int64(1), edited.AuthorID)

	published, err := s.PublishBlog(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusPublished, published.Status)

	assert.Len(t, s.Blogs(models.BlogFilter{Status: models.BlogStatusPublished}), 1)
	assert.Empty(t, s.Blogs(models.BlogFilter{Status: models.BlogStatusDraft}))
	assert.Len(t, s.Blogs(models.BlogFilter{Search: "NEW"}), 1)
}

func TestStore_BonusesByEmployee(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveBonus(models.Bonus{EmployeeID: 1, Amount: 10, Currency: "EUR"})
	require.NoError(t, err)
	b2, err := s.SaveBonus(models.Bonus{EmployeeID: 2, Amount: 20, Currency: "EUR"})
	require.NoError(t, err)
	assert.False(t, b2.AwardedAt.IsZero())

	assert.Len(t, s.Bonuses(0), 2)
	assert.Len(t, s.Bonuses(2), 1)
	assert.Empty(t, s.Bonuses(3))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "release-notes", slugify("  Release   notes "))
	assert.Equal(t, "q3-bonus-plan", slugify("Q3 -- bonus plan!"))
	assert.Equal(t, "", slugify("!!!"))
}
