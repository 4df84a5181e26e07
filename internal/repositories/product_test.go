package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewProductWriteRepository(db)
	ctx := context.Background()

	product, err := repo.Save(ctx, "Café", 9.99, true)
	assert.NoError(t, err)
	assert.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Café", product.Name)
	assert.Equal(t, 9.99, product.Price)
	assert.True(t, product.InStock)
}

func TestProductReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProductWriteRepository(db)
	readRepo := NewProductReadRepository(db)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		products, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("two products", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "Café", 9.99, true)
		assert.NoError(t, err)
		_, err = writeRepo.Save(ctx, "Chá", 4.5, false)
		assert.NoError(t, err)

		products, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})
}

func TestProductReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProductWriteRepository(db)
	readRepo := NewProductReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "Café", 9.99, true)
	assert.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		product, err := readRepo.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, created.ID, product.ID)
		assert.Equal(t, "Café", product.Name)
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		product, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestProductWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProductWriteRepository(db)
	readRepo := NewProductReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "Café", 9.99, true)
	assert.NoError(t, err)

	deleted, err := writeRepo.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Row is gone
	product, err := readRepo.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, product)

	// Deleting again reports no rows affected
	deleted, err = writeRepo.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
