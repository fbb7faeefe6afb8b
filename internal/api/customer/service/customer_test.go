package customerservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	customerdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/dto"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
)

func TestCreateIfAbsent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	input := &customerdto.CreateCustomerInput{
		Email:        "Alice@Example.com",
		CustomerName: "Alice",
		LastLogin:    1700000000000,
	}

	mt.Run("first call inserts", func(mt *mtest.T) {
		stored := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "alice@example.com"},
			{Key: "customerName", Value: "Alice"},
			{Key: "role", Value: "customer"},
			{Key: "lastLogin", Value: int64(1700000000000)},
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "trustlife_db.customers", mtest.FirstBatch, stored),
		)

		service := NewCustomerService(mt.Coll)
		account, inserted, err := service.CreateIfAbsent(context.Background(), input)
		require.NoError(mt, err)
		assert.True(mt, inserted)
		assert.Equal(mt, "alice@example.com", account.Email)
		assert.Equal(mt, customermodels.RoleCustomer, account.Role)
	})

	mt.Run("second call returns existing document", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "alice@example.com"},
			{Key: "customerName", Value: "Alice"},
			{Key: "role", Value: "customer"},
			{Key: "lastLogin", Value: int64(1600000000000)},
		}
		mt.AddMockResponses(
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Code:    11000,
				Message: "E11000 duplicate key error collection: trustlife_db.customers index: uniq_email",
			}),
			mtest.CreateCursorResponse(0, "trustlife_db.customers", mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		service := NewCustomerService(mt.Coll)
		account, inserted, err := service.CreateIfAbsent(context.Background(), input)
		require.NoError(mt, err)
		assert.False(mt, inserted)
		assert.Equal(mt, "alice@example.com", account.Email)
		assert.Equal(mt, "Alice", account.CustomerName)
		// The login that triggered the repeat call is reflected back.
		assert.Equal(mt, int64(1700000000000), account.LastLogin)
	})
}
