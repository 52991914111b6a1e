package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var productColumns = []string{
	"id", "name", "description", "price", "category", "location",
	"status", "image_url", "owner_id", "created_at", "updated_at",
}

func TestProductRepository_Update_NonOwnerMatchesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	name := "Pixel 8"
	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$\d+ AND owner_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), uuid.New(), uuid.New(), entity.ProductUpdate{Name: &name})

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Update_StaleTimestampIsScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	ownerID, productID := uuid.New(), uuid.New()
	expected := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	status := entity.ProductSold

	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$\d+ AND owner_id = \$\d+ AND updated_at <= \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
			productID, "Galaxy S23", nil, "1250000.00", "smartphones", nil,
			"sold", nil, ownerID, expected, expected.Add(time.Minute),
		))

	product, err := repo.Update(context.Background(), ownerID, productID, entity.ProductUpdate{
		Status:            &status,
		ExpectedUpdatedAt: &expected,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProductSold, product.Status)
	assert.True(t, decimal.RequireFromString("1250000").Equal(product.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	err := repo.Create(context.Background(), &entity.Product{
		Name:     "Broken",
		Price:    decimal.NewFromInt(-1),
		Category: entity.CategoryTVs,
		Status:   entity.ProductAvailable,
		OwnerID:  uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete_NonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1 AND owner_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddOrIncrement_UsesSingleUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	userID, productID, itemID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO "cart_items" .* ON CONFLICT \("user_id","product_id"\) DO UPDATE SET "quantity"=cart_items\.quantity \+ EXCLUDED\.quantity`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id = \$1 AND product_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at"}).
			AddRow(itemID, userID, productID, 3, now))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
			productID, "MacBook Air", nil, "1800000.00", "laptops", nil,
			"available", nil, uuid.New(), now, now,
		))

	item, err := repo.AddOrIncrement(context.Background(), &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, "MacBook Air", item.Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_ListByUser_MissingProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	userID, productID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at"}).
			AddRow(uuid.New(), userID, productID, 2, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	items, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Unavailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_SetQuantity_OtherUsersLine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`UPDATE "cart_items" SET "quantity"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.SetQuantity(context.Background(), uuid.New(), uuid.New(), 4)

	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindOrCreate_KeepsExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO "profiles" .* ON CONFLICT \("id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "avatar_url", "phone", "location", "created_at", "updated_at"}).
			AddRow(userID, "buyer@example.com", "Existing Name", nil, nil, "Seoul", now, now))

	profile, err := repo.FindOrCreate(context.Background(), &entity.Profile{ID: userID, Email: "buyer@example.com"})

	require.NoError(t, err)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Existing Name", *profile.FullName)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "Seoul", *profile.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRoleRepository_Upsert(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	roleColumns := []string{"id", "user_id", "role", "created_at", "updated_at"}

	t.Run("stale token", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRoleRepository(db)
		expected := now.Add(-time.Hour)

		mock.ExpectExec(`INSERT INTO "user_roles" .* ON CONFLICT \("user_id"\) DO UPDATE SET .* WHERE user_roles\.updated_at <= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Upsert(context.Background(), userID, entity.RoleAdmin, &expected)

		assert.ErrorIs(t, err, repository.ErrUserRoleStale)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unconditional", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRoleRepository(db)

		mock.ExpectExec(`INSERT INTO "user_roles" .* ON CONFLICT \("user_id"\) DO UPDATE SET "role"="excluded"."role","updated_at"="excluded"."updated_at"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "user_roles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(roleColumns).AddRow(uuid.New(), userID, "admin", now, now))

		role, err := repo.Upsert(context.Background(), userID, entity.RoleAdmin, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, role.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown stored value reads as user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRoleRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "user_roles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(roleColumns).AddRow(uuid.New(), userID, "moderator", now, now))

		role, err := repo.FindByUserID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, role.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSwapRequestRepository_ListByProductIDs_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSwapRequestRepository(db)

	requests, err := repo.ListByProductIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewCartRepository().DeleteByUser(context.Background(), uuid.New()); err != nil {
			return err
		}

		return domainerrors.ErrCartEmpty
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
