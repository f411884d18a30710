package fakeapi

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-biz-admin/models"
)

type account struct {
	user         models.User
	passwordHash []byte
}

type storedFile struct {
	name        string
	contentType string
	data        []byte
}

// Store holds the fake API state. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	nextID   int64
	accounts map[string]account
	roles    map[int64]models.Role
	enums    map[int64]models.CoreEnum
	blogs    map[int64]models.Blog
	bonuses  map[int64]models.Bonus
	files    map[string]storedFile
}

// NewStore returns a store seeded with one administrator, the default roles
// and the well-known core enumerations.
func NewStore(adminEmail, adminPassword string) (*Store, error) {
	s := &Store{
		accounts: make(map[string]account),
		roles:    make(map[int64]models.Role),
		enums:    make(map[int64]models.CoreEnum),
		blogs:    make(map[int64]models.Blog),
		bonuses:  make(map[int64]models.Bonus),
		files:    make(map[string]storedFile),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}
	admin := models.User{ID: s.id(), Email: strings.ToLower(adminEmail), Name: "Administrator", Roles: []string{"ADMIN"}}
	s.accounts[admin.Email] = account{user: admin, passwordHash: hash}

	for _, r := range []models.Role{
		{Name: "ADMIN", Description: "Full access", Permissions: []string{"*"}},
		{Name: "EDITOR", Description: "Manages blog posts", Permissions: []string{"blog.read", "blog.write"}},
	} {
		r.ID = s.id()
		s.roles[r.ID] = r
	}

	seed := map[string][]string{
		models.EnumTypeGender:     {"Male", "Female"},
		models.EnumTypeBlogStatus: {models.BlogStatusDraft, models.BlogStatusPublished, models.BlogStatusArchived},
		models.EnumTypeBonusType:  {"ANNUAL", "QUARTERLY", "SPOT"},
		models.EnumTypeCurrency:   {"EUR", "USD"},
	}
	types := make([]string, 0, len(seed))
	for t := range seed {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		for i, name := range seed[t] {
			e := models.CoreEnum{ID: s.id(), Type: t, Name: name, Code: strings.ToUpper(name), SortOrder: i + 1, Active: true}
			s.enums[e.ID] = e
		}
	}

	return s, nil
}

// id must be called with mu held for writing.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Authenticate checks the credentials of an account.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()

	if !ok {
		return models.User{}, errBadCredential
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, errBadCredential
	}
	return acc.user, nil
}

// User returns the account with the given id.
func (s *Store) User(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.accounts {
		if acc.user.ID == id {
			return acc.user, nil
		}
	}
	return models.User{}, errNotFound
}

// ── roles ────────────────────────────────────────────────────────────────────

func (s *Store) Roles() []models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.roles, func(r models.Role) int64 { return r.ID })
}

func (s *Store) Role(id int64) (models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.roles, id)
}

func (s *Store) SaveRole(role models.Role) (models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.roles {
		if existing.ID != role.ID && strings.EqualFold(existing.Name, role.Name) {
			return models.Role{}, errAlreadyExists
		}
	}
	return save(s, s.roles, role.ID, func(id int64) models.Role { role.ID = id; return role })
}

func (s *Store) DeleteRole(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.roles, id)
}

// ── core enums ───────────────────────────────────────────────────────────────

func (s *Store) Enums(enumType string) []models.CoreEnum {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := sortedValues(s.enums, func(e models.CoreEnum) int64 { return e.ID })
	if enumType == "" {
		return all
	}

	out := make([]models.CoreEnum, 0, len(all))
	for _, e := range all {
		if e.Type == enumType {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (s *Store) SaveEnum(e models.CoreEnum) (models.CoreEnum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.enums {
		if existing.ID != e.ID && existing.Type == e.Type && strings.EqualFold(existing.Name, e.Name) {
			return models.CoreEnum{}, errAlreadyExists
		}
	}
	return save(s, s.enums, e.ID, func(id int64) models.CoreEnum { e.ID = id; return e })
}

func (s *Store) DeleteEnum(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.enums, id)
}

// ── blogs ────────────────────────────────────────────────────────────────────

func (s *Store) Blogs(filter models.BlogFilter) []models.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := sortedValues(s.blogs, func(b models.Blog) int64 { return b.ID })
	out := make([]models.Blog, 0, len(all))
	search := strings.ToLower(filter.Search)
	for _, b := range all {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Tag != "" && !contains(b.Tags, filter.Tag) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Title+" "+b.Content), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (s *Store) Blog(id int64) (models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.blogs, id)
}

// SaveBlog creates the post when b.ID is zero and replaces it otherwise,
// keeping the creation time, author and uploaded files of the old version
// unless b carries new ones.
func (s *Store) SaveBlog(b models.Blog) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if b.Slug == "" {
		b.Slug = slugify(b.Title)
	}
	if b.Status == "" {
		b.Status = models.BlogStatusDraft
	}
	b.UpdatedAt = now

	if b.ID != 0 {
		old, err := lookup(s.blogs, b.ID)
		if err != nil {
			return models.Blog{}, err
		}
		b.CreatedAt = old.CreatedAt
		b.AuthorID = old.AuthorID
		if b.CoverURL == "" {
			b.CoverURL = old.CoverURL
		}
		if len(b.Attachments) == 0 {
			b.Attachments = old.Attachments
		}
	} else {
		b.CreatedAt = now
	}

	for _, existing := range s.blogs {
		if existing.ID != b.ID && existing.Slug == b.Slug {
			return models.Blog{}, errAlreadyExists
		}
	}
	return save(s, s.blogs, b.ID, func(id int64) models.Blog { b.ID = id; return b })
}

func (s *Store) PublishBlog(id int64) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := lookup(s.blogs, id)
	if err != nil {
		return models.Blog{}, err
	}
	b.Status = models.BlogStatusPublished
	b.UpdatedAt = time.Now().UTC()
	s.blogs[id] = b
	return b, nil
}

func (s *Store) DeleteBlog(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.blogs, id)
}

// ── bonuses ──────────────────────────────────────────────────────────────────

func (s *Store) Bonuses(employeeID int64) []models.Bonus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := sortedValues(s.bonuses, func(b models.Bonus) int64 { return b.ID })
	if employeeID == 0 {
		return all
	}
	out := make([]models.Bonus, 0, len(all))
	for _, b := range all {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) SaveBonus(b models.Bonus) (models.Bonus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.AwardedAt.IsZero() {
		b.AwardedAt = time.Now().UTC()
	}
	return save(s, s.bonuses, b.ID, func(id int64) models.Bonus { b.ID = id; return b })
}

func (s *Store) DeleteBonus(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.bonuses, id)
}

// ── files ────────────────────────────────────────────────────────────────────

func (s *Store) SaveFile(name, contentType string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = storedFile{name: name, contentType: contentType, data: data}
}

func (s *Store) File(name string) (storedFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[name]
	if !ok {
		return storedFile{}, errNotFound
	}
	return f, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func lookup[T any](m map[int64]T, id int64) (T, error) {
	v, ok := m[id]
	if !ok {
		var zero T
		return zero, errNotFound
	}
	return v, nil
}

// save inserts under a fresh id when id is zero, otherwise replaces an
// existing row. Callers hold s.mu for writing.
func save[T any](s *Store, m map[int64]T, id int64, withID func(int64) T) (T, error) {
	if id == 0 {
		id = s.id()
	} else if _, ok := m[id]; !ok {
		var zero T
		return zero, errNotFound
	}
	v := withID(id)
	m[id] = v
	return v, nil
}

func remove[T any](m map[int64]T, id int64) error {
	if _, ok := m[id]; !ok {
		return errNotFound
	}
	delete(m, id)
	return nil
}

func sortedValues[T any](m map[int64]T, idOf func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return idOf(out[i]) < idOf(out[j]) })
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
