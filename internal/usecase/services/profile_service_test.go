package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterCreatesProfileAndDefaultWallet(t *testing.T) {
	stores, uow := newTestStores()
	svc := NewProfileService(stores, uow)

	resp, err := svc.Register(context.Background(), models.RegisterProfileRequest{
		Kind:     "borrower",
		Email:    "Ana@Example.com",
		FullName: "Ana Souza",
		Password: "hunter2hunter2",
		Document: "123.456.789-00",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "ana@example.com", resp.Data.Email)
	assert.Equal(t, "borrower", resp.Data.Kind)
	assert.Equal(t, 0, resp.Data.CalculatedScore)

	profile, err := stores.Profiles.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("hunter2hunter2")))

	wallet, err := stores.Wallets.GetByOwner(context.Background(), profile.Ref(), "BRL")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	stores, uow := newTestStores()
	svc := NewProfileService(stores, uow)

	req := models.RegisterProfileRequest{
		Kind:     "investor",
		Email:    "dup@example.com",
		FullName: "First",
		Password: "hunter2hunter2",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.FullName = "Second"
	resp, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrDuplicateRecord))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "Email already registered")
}

func TestRegisterValidation(t *testing.T) {
	stores, uow := newTestStores()
	svc := NewProfileService(stores, uow)

	resp, err := svc.Register(context.Background(), models.RegisterProfileRequest{
		Kind:     "admin",
		Email:    "not-an-email",
		FullName: "",
		Password: "short",
	})
	require.Error(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
}

func TestGetProfileKindMustMatch(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	svc := NewProfileService(stores, uow)

	resp, err := svc.GetProfile(context.Background(), "borrower", borrower.ID)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = svc.GetProfile(context.Background(), "investor", borrower.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrRecordNotFound))
}
