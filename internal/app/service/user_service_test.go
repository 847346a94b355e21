package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
)

func setupUserServiceTest(t *testing.T) *UserService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewUserService(repository.NewUserRepository(testDB))
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestUserService_CreateUser(t *testing.T) {
	userService := setupUserServiceTest(t)

	user := &model.User{Username: "peanut_free_pete", City: "Manchester"}
	err := userService.CreateUser(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	// Same username again is a conflict
	err = userService.CreateUser(&model.User{Username: "peanut_free_pete"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	userService := setupUserServiceTest(t)

	require.NoError(t, userService.CreateUser(&model.User{Username: "egg_aware_emma"}))

	found, err := userService.GetUserByUsername("egg_aware_emma")
	require.NoError(t, err)
	assert.Equal(t, "egg_aware_emma", found.Username)

	_, err = userService.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	userService := setupUserServiceTest(t)

	require.NoError(t, userService.CreateUser(&model.User{
		Username: "dairy_dodger_dan",
		City:     "Leeds",
		County:   "West Yorkshire",
	}))

	updated, err := userService.UpdateUser("dairy_dodger_dan", UpdateUserInput{
		City:               strPtr("Manchester"),
		ActiveDairyAllergy: boolPtr(true),
	})
	require.NoError(t, err)

	// Only the supplied fields change
	assert.Equal(t, "Manchester", updated.City)
	assert.Equal(t, "West Yorkshire", updated.County)
	assert.True(t, updated.ActiveDairyAllergy)
	assert.Equal(t, "dairy_dodger_dan", updated.Username)

	_, err = userService.UpdateUser("nobody", UpdateUserInput{City: strPtr("Leeds")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
