package application

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// --- In-memory fakes for the driven ports ---

type fakePassphraseStore struct {
	hash     string
	set      bool
	seeded   []string
	hashErr  error
	setCalls int
}

func (f *fakePassphraseStore) InitializeIfAbsent(_ context.Context, defaultHash string, categories []string) (bool, error) {
	if f.set {
		return false, nil
	}
	f.hash, f.set = defaultHash, true
	f.seeded = append(f.seeded, categories...)
	return true, nil
}

func (f *fakePassphraseStore) Set(_ context.Context, hash string) error {
	f.setCalls++
	if f.set {
		return driven.ErrPassphraseAlreadySet
	}
	f.hash, f.set = hash, true
	return nil
}

func (f *fakePassphraseStore) Hash(_ context.Context) (string, bool, error) {
	if f.hashErr != nil {
		return "", false, f.hashErr
	}
	return f.hash, f.set, nil
}

type fakeCategoryStore struct {
	categories []model.Category
	calls      int
}

func (f *fakeCategoryStore) Create(_ context.Context, name string) (model.Category, error) {
	f.calls++
	c := model.Category{ID: int64(len(f.categories) + 1), Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeCategoryStore) ListAll(_ context.Context) ([]model.Category, error) {
	f.calls++
	return f.categories, nil
}

type fakeSecretStore struct {
	secrets []model.Secret
	nextID  int64
	calls   int
}

func (f *fakeSecretStore) Create(_ context.Context, s model.Secret) (model.Secret, error) {
	f.calls++
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	f.secrets = append(f.secrets, s)
	return s, nil
}

func (f *fakeSecretStore) ListAll(_ context.Context) ([]model.SecretView, error) {
	f.calls++
	views := make([]model.SecretView, 0, len(f.secrets))
	for _, s := range f.secrets {
		views = append(views, model.SecretView{Secret: s})
	}
	return views, nil
}

func (f *fakeSecretStore) Delete(_ context.Context, id int64) (bool, error) {
	f.calls++
	for i, s := range f.secrets {
		if s.ID == id {
			f.secrets = append(f.secrets[:i], f.secrets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storeWithPassphrase returns a passphrase store holding the digest of p.
func storeWithPassphrase(p string) *fakePassphraseStore {
	return &fakePassphraseStore{hash: DigestPassphrase(p), set: true}
}
