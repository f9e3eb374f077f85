package contacts

import (
	"context"
	"testing"

	"github.com/angelmondragon/zencrm-backend/pkg/db"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *Repository, uuid.UUID) {
	t.Helper()

	conn := setupContactsTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(ServiceParams{
		Repo: repo,
		Tx:   db.NewWithConn(conn),
	})
	require.NoError(t, err)
	return svc, repo, uuid.New()
}

func TestServiceCreateDefaultsToLead(t *testing.T) {
	svc, _, owner := newTestService(t)

	contact, err := svc.Create(context.Background(), owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.ContactStatusLead, contact.Status)
	assert.Equal(t, owner, contact.OwnerID)
}

func TestServiceCreateRejectsInvalidStatus(t *testing.T) {
	svc, _, owner := newTestService(t)

	bad := enums.ContactStatus("vip")
	_, err := svc.Create(context.Background(), owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Status:    &bad,
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceGetCrossOwnerIsNotFound(t *testing.T) {
	svc, _, owner := newTestService(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, uuid.New(), contact.ID)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, _, owner := newTestService(t)
	ctx := context.Background()

	email := "ada@example.com"
	company := "Analytical Engines Ltd"
	contact, err := svc.Create(ctx, owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     &email,
		Company:   &company,
	})
	require.NoError(t, err)

	status := enums.ContactStatusCustomer
	updated, err := svc.Update(ctx, owner, contact.ID, UpdateContactInput{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.ContactStatusCustomer, updated.Status)
	require.NotNil(t, updated.Email)
	assert.Equal(t, email, *updated.Email)
	require.NotNil(t, updated.Company)
	assert.Equal(t, company, *updated.Company)
	assert.Equal(t, "Ada", updated.FirstName)
}

func TestServiceUpdateCrossOwnerIsNotFound(t *testing.T) {
	svc, _, owner := newTestService(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	name := "Hacker"
	_, err = svc.Update(ctx, uuid.New(), contact.ID, UpdateContactInput{FirstName: &name})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceDeleteCrossOwnerIsNotFound(t *testing.T) {
	svc, _, owner := newTestService(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, owner, CreateContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), contact.ID)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	// Still visible to its owner.
	_, err = svc.GetByID(ctx, owner, contact.ID)
	require.NoError(t, err)
}

func TestServiceListRejectsInvalidStatusFilter(t *testing.T) {
	svc, _, owner := newTestService(t)

	bad := enums.ContactStatus("vip")
	page, err := pagination.Normalize(0, 0)
	require.NoError(t, err)

	_, err = svc.List(context.Background(), owner, ListContactsFilter{Status: &bad}, page)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}
