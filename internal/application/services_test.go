package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategoryService_Gated(t *testing.T) {
	categories := &fakeCategoryStore{}
	svc := NewCategoryService(NewGate(storeWithPassphrase("pw")), categories)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Gaming", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.List(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, categories.calls, "store must not be touched when unauthorized")

	created, err := svc.Create(ctx, "Gaming", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Gaming", created.Name)

	all, err := svc.List(ctx, "pw")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestSecretService_Gated(t *testing.T) {
	secrets := &fakeSecretStore{}
	svc := NewSecretService(NewGate(storeWithPassphrase("pw")), secrets, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, NewSecret{Name: "Mail", Email: "a@b.com", Password: "xyz"}, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.List(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "wrong"), ErrUnauthorized)
	assert.Zero(t, secrets.calls, "store must not be touched when unauthorized")
}

func TestSecretService_CreateListDelete(t *testing.T) {
	secrets := &fakeSecretStore{}
	svc := NewSecretService(NewGate(storeWithPassphrase("pw")), secrets, discardLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, NewSecret{
		Name:     "Mail",
		Email:    "a@b.com",
		URL:      strPtr("https://mail.example.com"),
		Password: "xyz",
	}, "pw")
	require.NoError(t, err)
	assert.Equal(t, "Mail", created.Name)
	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, "xyz", created.Password)
	assert.Nil(t, created.CategoryID)

	all, err := svc.List(ctx, "pw")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	require.NoError(t, svc.Delete(ctx, created.ID, "pw"))
	require.NoError(t, svc.Delete(ctx, created.ID, "pw"), "deleting a missing id succeeds")

	all, err = svc.List(ctx, "pw")
	require.NoError(t, err)
	assert.Empty(t, all)
}
