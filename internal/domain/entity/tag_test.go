package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestNewTag_Valido(t *testing.T) {
	tag, err := entity.NewTag("  oferta  ")
	require.NoError(t, err)

	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, "oferta", tag.Name)
	assert.Empty(t, tag.ProductID, "un tag recién creado no está asignado a ningún producto")
	assert.False(t, tag.IsDeleted())
}

func TestNewTag_NombreInvalido(t *testing.T) {
	_, err := entity.NewTag("")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = entity.NewTag("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = entity.NewTag(strings.Repeat("x", entity.MaxTagNameLen+1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTagAssignUnassign(t *testing.T) {
	tag, err := entity.NewTag("oferta")
	require.NoError(t, err)

	// Unassign sin asignación previa es un no-op.
	require.NoError(t, tag.Unassign())
	assert.Empty(t, tag.ProductID)

	require.NoError(t, tag.AssignToProduct("prod-1"))
	assert.Equal(t, "prod-1", tag.ProductID)

	// Reasignar a otro producto es válido (a lo sumo un producto a la vez).
	require.NoError(t, tag.AssignToProduct("prod-2"))
	assert.Equal(t, "prod-2", tag.ProductID)

	assert.ErrorIs(t, tag.AssignToProduct(""), domain.ErrInvalidArgument)

	require.NoError(t, tag.Unassign())
	assert.Empty(t, tag.ProductID)
}

func TestTagDeleteRestore(t *testing.T) {
	tag, err := entity.NewTag("oferta")
	require.NoError(t, err)

	assert.ErrorIs(t, tag.Restore(), domain.ErrNotDeleted)

	require.NoError(t, tag.Delete())
	assert.True(t, tag.IsDeleted())
	assert.ErrorIs(t, tag.Delete(), domain.ErrAlreadyDeleted)

	require.NoError(t, tag.Restore())
	assert.False(t, tag.IsDeleted())
}

func TestTagEliminado_BloqueaMutaciones(t *testing.T) {
	tag, err := entity.NewTag("oferta")
	require.NoError(t, err)
	require.NoError(t, tag.Delete())

	assert.ErrorIs(t, tag.Rename("otro"), domain.ErrEntityDeleted)
	assert.ErrorIs(t, tag.AssignToProduct("prod-1"), domain.ErrEntityDeleted)
	assert.ErrorIs(t, tag.Unassign(), domain.ErrEntityDeleted)
}
