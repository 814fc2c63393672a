package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewIdentity(t *testing.T) {
	id := primitive.NewObjectID()

	user, ok := NewIdentity(id, RoleUser)
	require.True(t, ok)
	assert.IsType(t, UserIdentity{}, user)
	assert.Equal(t, id, user.ID())
	assert.Equal(t, RoleUser, user.Role())

	admin, ok := NewIdentity(id, RoleAdmin)
	require.True(t, ok)
	assert.IsType(t, AdminIdentity{}, admin)
	assert.Equal(t, RoleAdmin, admin.Role())

	_, ok = NewIdentity(id, Role("owner"))
	assert.False(t, ok)
}
