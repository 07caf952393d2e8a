package configs

import (
	"testing"

	"github.com/AlexMaina05/Comande/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedAdmin(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedadmin?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	cfg := &Config{AdminUsername: "admin", AdminPassword: "s3cret"}
	require.NoError(t, SeedAdmin(db, cfg))

	var user entity.User
	require.NoError(t, db.Where("username = ?", "admin").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

	// second run is a no-op, not a duplicate
	require.NoError(t, SeedAdmin(db, cfg))
	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedskip?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	require.NoError(t, SeedAdmin(db, &Config{}))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
