package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: &model.User{
				Username:            "peanut_free_pete",
				City:                "Manchester",
				County:              "Greater Manchester",
				PostCode:            "M1 1AE",
				ActivePeanutAllergy: true,
			},
			wantErr: false,
		},
		{
			name: "Duplicate username",
			user: &model.User{
				Username: "peanut_free_pete",
				City:     "Leeds",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Username:         "egg_aware_emma",
		City:             "Leeds",
		PostCode:         "LS1 1UR",
		ActiveEggAllergy: true,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "Existing user",
			username: "egg_aware_emma",
			wantErr:  false,
		},
		{
			name:     "Non-existing user",
			username: "nobody",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByUsername(tt.username)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, user.Username, found.Username)
				assert.True(t, found.ActiveEggAllergy)
			}
		})
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.Create(&model.User{Username: "dairy_dodger_dan"})
	require.NoError(t, err)

	exists, err := repo.ExistsByUsername("dairy_dodger_dan")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername("nobody")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Update(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{Username: "mover", City: "Leeds"}
	require.NoError(t, repo.Create(user))

	user.City = "Manchester"
	user.ActivePeanutAllergy = true
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByUsername("mover")
	require.NoError(t, err)
	assert.Equal(t, "Manchester", found.City)
	assert.True(t, found.ActivePeanutAllergy)
}
