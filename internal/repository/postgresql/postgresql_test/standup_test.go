package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// requireTestDB connects lazily so the suite is skipped, not failed, on
// machines without a provisioned test database.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}
	return testDB
}

func cleanupTestData(t *testing.T, db *database.DB) {
	ctx := context.Background()

	for _, table := range []string{"daily_standups", "leave_requests", "deliverables", "users", "departments"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestDepartment(t *testing.T, ctx context.Context, db *database.DB) string {
	var departmentID string
	err := db.QueryRow(ctx, `
		INSERT INTO departments (name)
		VALUES ('Engineering')
		RETURNING id
	`).Scan(&departmentID)
	require.NoError(t, err)
	return departmentID
}

func createTestMember(t *testing.T, ctx context.Context, db *database.DB, departmentID, email string) string {
	var userID string
	err := db.QueryRow(ctx, `
		INSERT INTO users (department_id, email, name, role, preferred_method, is_active)
		VALUES ($1, $2, 'Test Member', 'member', 'text', TRUE)
		RETURNING id
	`, departmentID, email).Scan(&userID)
	require.NoError(t, err)
	return userID
}

// ===== STANDUP REPOSITORY TESTS =====

func TestStandupRepository_Create_Success(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	userID := createTestMember(t, ctx, db, departmentID, "member@example.com")
	repo := postgresql.NewStandupRepository(db)

	created, err := repo.Create(ctx, standup.Standup{
		UserID:       userID,
		DepartmentID: &departmentID,
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		SubmittedAt:  time.Now(),
		Yesterday:    "Finished the report endpoint",
		Today:        "Start on the dashboard",
		Method:       "text",
		Status:       "submitted",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "submitted", created.Status)
}

func TestStandupRepository_GetByUserAndDate_NilWhenAbsent(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	userID := createTestMember(t, ctx, db, departmentID, "member@example.com")
	repo := postgresql.NewStandupRepository(db)

	record, err := repo.GetByUserAndDate(ctx, userID, "2026-03-02")

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestStandupRepository_GetSubmittedDates_ExcludesMissed(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	userID := createTestMember(t, ctx, db, departmentID, "member@example.com")
	repo := postgresql.NewStandupRepository(db)

	for _, day := range []struct {
		date   string
		status string
	}{
		{"2026-03-02", "submitted"},
		{"2026-03-03", "missed"},
		{"2026-03-04", "submitted"},
	} {
		_, err := db.Exec(ctx, `
			INSERT INTO daily_standups (user_id, department_id, date, submitted_at, yesterday, today, method, status)
			VALUES ($1, $2, $3, NOW(), 'y', 't', 'text', $4)
		`, userID, departmentID, day.date, day.status)
		require.NoError(t, err)
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	dates, err := repo.GetSubmittedDates(ctx, userID, from, to)

	assert.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, 2, dates[0].Day())
	assert.Equal(t, 4, dates[1].Day())
}

func TestStandupRepository_MarkMissed_SkipsSubmittedAndOnLeave(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	submitted := createTestMember(t, ctx, db, departmentID, "submitted@example.com")
	onLeave := createTestMember(t, ctx, db, departmentID, "onleave@example.com")
	createTestMember(t, ctx, db, departmentID, "silent@example.com")
	repo := postgresql.NewStandupRepository(db)

	_, err := db.Exec(ctx, `
		INSERT INTO daily_standups (user_id, department_id, date, submitted_at, yesterday, today, method, status)
		VALUES ($1, $2, '2026-03-02', NOW(), 'y', 't', 'text', 'submitted')
	`, submitted, departmentID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO leave_requests (user_id, date, reason, status)
		VALUES ($1, '2026-03-02', 'dentist', 'approved')
	`, onLeave)
	require.NoError(t, err)

	marked, err := repo.MarkMissed(ctx, "2026-03-02")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	// Rerunning the sweep is a no-op
	marked, err = repo.MarkMissed(ctx, "2026-03-02")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), marked)
}

// ===== LEAVE REPOSITORY TESTS =====

func TestLeaveRepository_UpdateStatus_AlreadyProcessed(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	userID := createTestMember(t, ctx, db, departmentID, "member@example.com")
	reviewerID := createTestMember(t, ctx, db, departmentID, "manager@example.com")
	repo := postgresql.NewLeaveRepository(db)

	created, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: userID,
		Date:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Reason: "appointment",
		Status: leave.StatusPending,
	})
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, created.ID, leave.StatusApproved, reviewerID, nil)
	assert.NoError(t, err)

	note := "already handled"
	err = repo.UpdateStatus(ctx, created.ID, leave.StatusRejected, reviewerID, &note)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveRepository_GetApprovedByUserAndDate_IgnoresPending(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, db)
	userID := createTestMember(t, ctx, db, departmentID, "member@example.com")
	repo := postgresql.NewLeaveRepository(db)

	_, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: userID,
		Date:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Reason: "appointment",
		Status: leave.StatusPending,
	})
	require.NoError(t, err)

	record, err := repo.GetApprovedByUserAndDate(ctx, userID, "2026-03-09")

	assert.NoError(t, err)
	assert.Nil(t, record)
}
