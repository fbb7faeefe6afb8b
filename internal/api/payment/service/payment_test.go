package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	applicationservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/service"
	paymentdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/dto"
	policyservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

func newTestPaymentService(mt *mtest.T) *PaymentService {
	policies := policyservice.NewPolicyService(mt.Coll)
	applications := applicationservice.NewApplicationService(mt.Coll, policies)
	return NewPaymentService(mt.Coll, applications, "")
}

func approvedApplicationDoc(id primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: "alice@example.com"},
		{Key: "policyId", Value: primitive.NewObjectID().Hex()},
		{Key: "customerName", Value: "Alice"},
		{Key: "status", Value: "approved"},
	}
}

func TestRecord(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	appID := primitive.NewObjectID()
	input := &paymentdto.RecordPaymentInput{
		ApplicationID: appID.Hex(),
		Email:         "alice@example.com",
		Amount:        120.50,
		TransactionID: "txn_1",
	}

	mt.Run("records and flips the application to paid", func(mt *mtest.T) {
		paymentDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "applicationId", Value: appID.Hex()},
			{Key: "email", Value: "alice@example.com"},
			{Key: "amount", Value: 120.50},
			{Key: "currency", Value: "usd"},
			{Key: "transactionId", Value: "txn_1"},
			{Key: "status", Value: "paid"},
		}
		paidDoc := approvedApplicationDoc(appID)
		paidDoc[4] = bson.E{Key: "status", Value: "paid"}

		mt.AddMockResponses(
			// Lookup of the owning application.
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, approvedApplicationDoc(appID)),
			// Payment insert plus the read-back of the stored row.
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "trustlife_db.payments", mtest.FirstBatch, paymentDoc),
			// Guarded status flip plus its read-back.
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, paidDoc),
		)

		service := newTestPaymentService(mt)
		stored, err := service.Record(context.Background(), input)
		require.NoError(mt, err)
		assert.Equal(mt, "txn_1", stored.TransactionID)
		assert.Equal(mt, "paid", stored.Status)
	})

	mt.Run("replayed transaction stops at the insert with a conflict", func(mt *mtest.T) {
		// Only two responses are queued. If the replay reached the
		// application update, the service would surface a mock-exhaustion
		// error instead of the duplicate.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, approvedApplicationDoc(appID)),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Code:    11000,
				Message: "E11000 duplicate key error collection: trustlife_db.payments index: uniq_transaction",
			}),
		)

		service := newTestPaymentService(mt)
		_, err := service.Record(context.Background(), input)
		require.Error(mt, err)
		assert.True(mt, errors.Is(err, common.ErrDuplicate))

		var appErr *common.Error
		require.True(mt, errors.As(err, &appErr))
		assert.Equal(mt, common.StatusConflict, appErr.StatusCode)
	})

	mt.Run("unknown application is rejected", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch),
		)

		service := newTestPaymentService(mt)
		_, err := service.Record(context.Background(), input)
		require.Error(mt, err)

		var appErr *common.Error
		require.True(mt, errors.As(err, &appErr))
		assert.Equal(mt, common.StatusBadRequest, appErr.StatusCode)
	})

	mt.Run("pending application cannot be paid", func(mt *mtest.T) {
		pendingDoc := approvedApplicationDoc(appID)
		pendingDoc[4] = bson.E{Key: "status", Value: "pending"}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, pendingDoc),
		)

		service := newTestPaymentService(mt)
		_, err := service.Record(context.Background(), input)
		assert.True(mt, errors.Is(err, common.ErrInvalidState))
	})

	mt.Run("someone else's application is forbidden", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, approvedApplicationDoc(appID)),
		)

		service := newTestPaymentService(mt)
		_, err := service.Record(context.Background(), &paymentdto.RecordPaymentInput{
			ApplicationID: appID.Hex(),
			Email:         "mallory@example.com",
			Amount:        120.50,
			TransactionID: "txn_2",
		})
		assert.True(mt, errors.Is(err, common.ErrForbidden))
	})
}
