package deals

import (
	"context"
	"testing"

	"github.com/angelmondragon/zencrm-backend/internal/contacts"
	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDealsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	contactsTable := `
CREATE TABLE IF NOT EXISTS contacts (
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT,
  phone TEXT,
  company TEXT,
  position TEXT,
  status TEXT NOT NULL DEFAULT 'lead',
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	dealsTable := `
CREATE TABLE IF NOT EXISTS deals (
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  contact_id TEXT NOT NULL,
  title TEXT NOT NULL,
  value NUMERIC,
  stage TEXT NOT NULL DEFAULT 'prospecting',
  probability INTEGER,
  expected_close_date DATETIME,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(contactsTable).Error)
	require.NoError(t, db.Exec(dealsTable).Error)
	return db
}

func newDealService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(db),
		Contacts: contacts.NewRepository(db),
	})
	require.NoError(t, err)
	return svc
}

func seedContact(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *models.Contact {
	t.Helper()
	contact := &models.Contact{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Status:    enums.ContactStatusProspect,
	}
	require.NoError(t, db.Create(contact).Error)
	return contact
}

func mustPage(t *testing.T) pagination.Params {
	t.Helper()
	page, err := pagination.Normalize(0, 0)
	require.NoError(t, err)
	return page
}

func TestCreateDefaultsToProspecting(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	value := decimal.NewFromFloat(2500.50)
	deal, err := svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
		Value:     &value,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.DealStageProspecting, deal.Stage)
	require.NotNil(t, deal.Value)
	assert.True(t, deal.Value.Equal(value))
}

func TestCreateStampsOwner(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	deal, err := svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
	})
	require.NoError(t, err)
	assert.Equal(t, owner, deal.OwnerID)

	var stored models.Deal
	require.NoError(t, db.First(&stored, "id = ?", deal.ID).Error)
	assert.Equal(t, owner, stored.OwnerID)
}

func TestCreateRequiresOwnedContact(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	foreign := seedContact(t, db, uuid.New())

	_, err := svc.Create(ctx, uuid.New(), CreateDealInput{
		ContactID: foreign.ID,
		Title:     "Enterprise plan",
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestCreateRejectsNegativeValueAndBadStage(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	negative := decimal.NewFromInt(-100)
	_, err := svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
		Value:     &negative,
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	bad := enums.DealStage("limbo")
	_, err = svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
		Stage:     &bad,
	})
	require.Error(t, err)
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestListFiltersByStageAndContact(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	first := seedContact(t, db, owner)
	second := seedContact(t, db, owner)
	foreign := seedContact(t, db, uuid.New())

	won := enums.DealStageClosedWon
	_, err := svc.Create(ctx, owner, CreateDealInput{ContactID: first.ID, Title: "One", Stage: &won})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, CreateDealInput{ContactID: second.ID, Title: "Two"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Deal{
		ID:        uuid.New(),
		OwnerID:   foreign.OwnerID,
		ContactID: foreign.ID,
		Title:     "Other tenant",
		Stage:     enums.DealStageClosedWon,
	}).Error)

	all, err := svc.List(ctx, owner, ListDealsFilter{}, mustPage(t))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byStage, err := svc.List(ctx, owner, ListDealsFilter{Stage: &won}, mustPage(t))
	require.NoError(t, err)
	require.Len(t, byStage, 1)
	assert.Equal(t, "One", byStage[0].Title)

	byContact, err := svc.List(ctx, owner, ListDealsFilter{ContactID: &second.ID}, mustPage(t))
	require.NoError(t, err)
	require.Len(t, byContact, 1)
	assert.Equal(t, "Two", byContact[0].Title)
}

func TestUpdateMergesStageAndValue(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	deal, err := svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
	})
	require.NoError(t, err)

	stage := enums.DealStageNegotiation
	value := decimal.NewFromInt(10000)
	updated, err := svc.Update(ctx, owner, deal.ID, UpdateDealInput{
		Stage: &stage,
		Value: &value,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.DealStageNegotiation, updated.Stage)
	require.NotNil(t, updated.Value)
	assert.True(t, updated.Value.Equal(value))
	assert.Equal(t, "Enterprise plan", updated.Title)
}

func TestGetAndDeleteScopeToOwner(t *testing.T) {
	db := setupDealsTestDB(t)
	svc := newDealService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	deal, err := svc.Create(ctx, owner, CreateDealInput{
		ContactID: contact.ID,
		Title:     "Enterprise plan",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, uuid.New(), deal.ID)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	err = svc.Delete(ctx, uuid.New(), deal.ID)
	require.Error(t, err)

	require.NoError(t, svc.Delete(ctx, owner, deal.ID))
}
