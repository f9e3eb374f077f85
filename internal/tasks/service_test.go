package tasks

import (
	"context"
	"testing"

	"github.com/angelmondragon/zencrm-backend/internal/contacts"
	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTasksTestDB(t *testing.T) *gorm.DB {
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
	tasksTable := `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  contact_id TEXT,
  title TEXT NOT NULL,
  description TEXT,
  due_date DATETIME,
  priority TEXT NOT NULL DEFAULT 'medium',
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(contactsTable).Error)
	require.NoError(t, db.Exec(tasksTable).Error)
	return db
}

func newTaskService(t *testing.T, db *gorm.DB) Service {
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
		Status:    enums.ContactStatusLead,
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

func TestCreateDefaultsPriorityAndStatus(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)

	task, err := svc.Create(context.Background(), uuid.New(), CreateTaskInput{
		Title: "Call Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.TaskPriorityMedium, task.Priority)
	assert.Equal(t, enums.TaskStatusPending, task.Status)
	assert.Nil(t, task.ContactID)
}

func TestCreateRejectsForeignContactLink(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)
	ctx := context.Background()

	foreign := seedContact(t, db, uuid.New())

	_, err := svc.Create(ctx, uuid.New(), CreateTaskInput{
		Title:     "Call Ada",
		ContactID: &foreign.ID,
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestCreateLinksOwnedContact(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	contact := seedContact(t, db, owner)

	task, err := svc.Create(ctx, owner, CreateTaskInput{
		Title:     "Call Ada",
		ContactID: &contact.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.ContactID)
	assert.Equal(t, contact.ID, *task.ContactID)
}

func TestListFiltersByStatusAndPriority(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	urgent := enums.TaskPriorityUrgent
	completed := enums.TaskStatusCompleted

	_, err := svc.Create(ctx, owner, CreateTaskInput{Title: "One", Priority: &urgent})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, CreateTaskInput{Title: "Two", Status: &completed})
	require.NoError(t, err)
	_, err = svc.Create(ctx, uuid.New(), CreateTaskInput{Title: "Other tenant"})
	require.NoError(t, err)

	all, err := svc.List(ctx, owner, ListTasksFilter{}, mustPage(t))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byPriority, err := svc.List(ctx, owner, ListTasksFilter{Priority: &urgent}, mustPage(t))
	require.NoError(t, err)
	require.Len(t, byPriority, 1)
	assert.Equal(t, "One", byPriority[0].Title)

	byStatus, err := svc.List(ctx, owner, ListTasksFilter{Status: &completed}, mustPage(t))
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Two", byStatus[0].Title)
}

func TestUpdateMergesAndValidates(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	task, err := svc.Create(ctx, owner, CreateTaskInput{Title: "Call Ada"})
	require.NoError(t, err)

	status := enums.TaskStatusInProgress
	updated, err := svc.Update(ctx, owner, task.ID, UpdateTaskInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, enums.TaskStatusInProgress, updated.Status)
	assert.Equal(t, "Call Ada", updated.Title)

	bad := enums.TaskStatus("archived")
	_, err = svc.Update(ctx, owner, task.ID, UpdateTaskInput{Status: &bad})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestDeleteScopesToOwner(t *testing.T) {
	db := setupTasksTestDB(t)
	svc := newTaskService(t, db)
	ctx := context.Background()

	owner := uuid.New()
	task, err := svc.Create(ctx, owner, CreateTaskInput{Title: "Call Ada"})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), task.ID)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	require.NoError(t, svc.Delete(ctx, owner, task.ID))
}
