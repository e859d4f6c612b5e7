package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleStudent))
	assert.True(t, ValidRole(RoleInstructor))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(Role("instructor")))
	assert.False(t, ValidRole(Role("SUPERUSER")))
	assert.False(t, ValidRole(Role("")))
}

func TestCourseStatusDerivedFromPublished(t *testing.T) {
	assert.Equal(t, "published", (&Course{Published: true}).Status())
	assert.Equal(t, "draft", (&Course{}).Status())
}

func TestUserJSONHidesPassword(t *testing.T) {
	data, err := json.Marshal(&User{ID: 1, Name: "Jane", Email: "jane@edumaster.com", Password: "hashed", Role: RoleStudent})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hashed")
	assert.NotContains(t, string(data), "password")
}
