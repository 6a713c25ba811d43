package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/gemini"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/storage"
)

type memoryStore struct {
	mu      sync.Mutex
	records map[string]models.AnalysisRecord
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]models.AnalysisRecord)}
}

func (s *memoryStore) CreateAnalysis(_ context.Context, r *models.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.New().String()
	s.records[r.ID] = *r
	return nil
}

func (s *memoryStore) GetAnalysis(_ context.Context, id string) (*models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, storage.ErrAnalysisNotFound
	}
	return &r, nil
}

func (s *memoryStore) UpdateAnalysis(_ context.Context, r *models.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = *r
	return nil
}

func (s *memoryStore) ListAnalyses(_ context.Context, userID string, offset, limit int) ([]*models.AnalysisRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owned []*models.AnalysisRecord
	for _, r := range s.records {
		if r.UserID == userID {
			r := r
			owned = append(owned, &r)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].UploadedAt.After(owned[j].UploadedAt) })
	if offset >= len(owned) {
		return []*models.AnalysisRecord{}, false, nil
	}
	end := offset + limit
	if end >= len(owned) {
		return owned[offset:], false, nil
	}
	return owned[offset:end], true, nil
}

func (s *memoryStore) DeleteAnalysis(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(context.Context, gemini.Request) (string, error) {
	return f.reply, f.err
}

func (f *fakeGenerator) Model() string { return "gemini-fake" }
func (f *fakeGenerator) Close() error  { return nil }

type fakeArchive struct {
	objects map[string][]byte
}

func (a *fakeArchive) UploadExport(_ context.Context, objectName string, content []byte, _ string) (string, error) {
	a.objects[objectName] = content
	return objectName, nil
}

func (a *fakeArchive) GetSignedURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.example/" + objectName + "?sig=1", nil
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]models.User)}
}

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return storage.ErrUserExists
	}
	user.ID = user.Email
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUsers) GetUserByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID == googleID {
			return &u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (f *fakeUsers) UpdateUser(_ context.Context, email string, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	if v, ok := updates["googleId"].(string); ok {
		u.GoogleID = v
	}
	if v, ok := updates["name"].(string); ok {
		u.Name = v
	}
	f.users[email] = u
	return nil
}

func (f *fakeUsers) UpdateUserProfile(ctx context.Context, email string, name string) error {
	if name == "" {
		return nil
	}
	return f.UpdateUser(ctx, email, map[string]interface{}{"name": name})
}

type fakeGoogle struct {
	info *auth.GoogleUserInfo
	err  error
}

func (f *fakeGoogle) VerifyIDToken(context.Context, string) (*auth.GoogleUserInfo, error) {
	if f.info == nil && f.err == nil {
		return nil, errors.New("invalid token")
	}
	return f.info, f.err
}
