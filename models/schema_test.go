package models_test

import (
	"sync"
	"testing"

	"fieldpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func modelIndexes(t *testing.T, model interface{}) map[string]*schema.Index {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	indexes := make(map[string]*schema.Index)
	for _, idx := range s.ParseIndexes() {
		indexes[idx.Name] = idx
	}
	return indexes
}

// The unique indexes on users and clients are partial so that a soft-deleted
// row does not block reuse of its email or phone.
func TestUserUniqueIndexesArePartial(t *testing.T) {
	indexes := modelIndexes(t, &models.User{})

	for _, name := range []string{"idx_users_email", "idx_users_phone"} {
		idx, ok := indexes[name]
		require.True(t, ok, "index %s not declared", name)
		assert.Equal(t, "UNIQUE", idx.Class)
		assert.Equal(t, "deleted_at IS NULL", idx.Where)
	}
}

func TestClientPhoneUniquePerExecutor(t *testing.T) {
	indexes := modelIndexes(t, &models.Client{})

	idx, ok := indexes["idx_executor_phone"]
	require.True(t, ok, "index idx_executor_phone not declared")
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "deleted_at IS NULL", idx.Where)

	require.Len(t, idx.Fields, 2)
	assert.Equal(t, "ExecutorID", idx.Fields[0].Name)
	assert.Equal(t, "Phone", idx.Fields[1].Name)
}
