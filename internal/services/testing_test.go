package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillconnect/skillconnect-backend/internal/database"
	"github.com/skillconnect/skillconnect-backend/internal/models"
)

// setupTestDB opens a fresh in-memory sqlite database and runs the same
// migrations production uses. The pool is pinned to a single connection
// because each sqlite :memory: connection is its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createSkill(t *testing.T, db *gorm.DB, name string) *models.Skill {
	t.Helper()
	skill := &models.Skill{Name: name}
	require.NoError(t, db.Create(skill).Error)
	return skill
}

func createFreelancerProfile(t *testing.T, db *gorm.DB, userID uint, skills ...models.Skill) *models.FreelancerProfile {
	t.Helper()
	profile := &models.FreelancerProfile{UserID: userID, Skills: skills}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createRecruiterProfile(t *testing.T, db *gorm.DB, userID uint, companyName string) *models.RecruiterProfile {
	t.Helper()
	profile := &models.RecruiterProfile{UserID: userID, CompanyName: companyName}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createJob(t *testing.T, db *gorm.DB, recruiterID uint, title string, skills ...models.Skill) *models.Job {
	t.Helper()
	job := &models.Job{
		RecruiterID:  recruiterID,
		Title:        title,
		PayPerHour:   40,
		Requirements: "general requirements",
		WorkMode:     models.WorkModeRemote,
		Skills:       skills,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func createApplication(t *testing.T, db *gorm.DB, jobID, freelancerID uint, status string) *models.Application {
	t.Helper()
	app := &models.Application{
		JobID:        jobID,
		FreelancerID: freelancerID,
		Status:       status,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

// fakeGenerator satisfies TextGenerator without a live backend and records
// the last prompt it was handed.
type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
