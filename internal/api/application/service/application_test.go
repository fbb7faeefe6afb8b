package applicationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	applicationdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/dto"
	applicationmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/models"
	policyservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

func stageAt(t *testing.T, pipeline []bson.D, i int) (string, any) {
	t.Helper()
	require.Greater(t, len(pipeline), i)
	require.Len(t, pipeline[i], 1)
	return pipeline[i][0].Key, pipeline[i][0].Value
}

func TestClaimRequestsPipeline_Shape(t *testing.T) {
	pipeline, err := ClaimRequestsPipeline("Agent@Example.com")
	require.NoError(t, err)

	// match, policy join (cast+lookup+unwind+unset), payment join (same), project
	require.Len(t, pipeline, 10)

	key, value := stageAt(t, pipeline, 0)
	assert.Equal(t, "$match", key)
	match := value.(bson.M)
	assert.Equal(t, "agent@example.com", match["agentEmail"])

	key, _ = stageAt(t, pipeline, 1)
	assert.Equal(t, "$addFields", key)

	key, value = stageAt(t, pipeline, 2)
	assert.Equal(t, "$lookup", key)
	assert.Equal(t, "policies", value.(bson.M)["from"])

	key, _ = stageAt(t, pipeline, 3)
	assert.Equal(t, "$unwind", key)

	key, value = stageAt(t, pipeline, 6)
	assert.Equal(t, "$lookup", key)
	assert.Equal(t, "payments", value.(bson.M)["from"])
	assert.Equal(t, "applicationId", value.(bson.M)["foreignField"])

	key, value = stageAt(t, pipeline, 9)
	assert.Equal(t, "$project", key)
	project := value.(bson.M)
	assert.Equal(t, "$policy.title", project["policyTitle"])
	assert.Equal(t, "$payment.amount", project["paidAmount"])
	assert.Equal(t, bson.M{"$toString": "$_id"}, project["_id"])
}

func TestClaimRequestsPipeline_MatchesOnlyFiledClaims(t *testing.T) {
	pipeline, err := ClaimRequestsPipeline("agent@example.com")
	require.NoError(t, err)

	_, value := stageAt(t, pipeline, 0)
	match := value.(bson.M)
	assert.EqualValues(t, "claimed", match["claimStatus"])
}

func TestCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	policyID := primitive.NewObjectID()
	input := &applicationdto.CreateApplicationInput{
		Email:        "Alice@Example.com",
		PolicyID:     policyID.Hex(),
		CustomerName: "Alice",
	}

	mt.Run("submits as pending", func(mt *mtest.T) {
		storedID := primitive.NewObjectID()
		mt.AddMockResponses(
			// Policy existence check.
			mtest.CreateCursorResponse(0, "trustlife_db.policies", mtest.FirstBatch, bson.D{{Key: "_id", Value: policyID}}),
			// Insert plus the read-back of the stored application.
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "trustlife_db.applications", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: storedID},
				{Key: "email", Value: "alice@example.com"},
				{Key: "policyId", Value: policyID.Hex()},
				{Key: "customerName", Value: "Alice"},
				{Key: "status", Value: "pending"},
			}),
		)

		service := NewApplicationService(mt.Coll, policyservice.NewPolicyService(mt.Coll))
		created, err := service.Create(context.Background(), input)
		require.NoError(mt, err)
		assert.Equal(mt, "alice@example.com", created.Email)
		assert.Equal(mt, applicationmodels.StatusPending, created.Status)
	})

	mt.Run("unknown policy is rejected", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.policies", mtest.FirstBatch),
		)

		service := NewApplicationService(mt.Coll, policyservice.NewPolicyService(mt.Coll))
		_, err := service.Create(context.Background(), input)
		require.Error(mt, err)

		var appErr *common.Error
		require.True(mt, errors.As(err, &appErr))
		assert.Equal(mt, common.StatusBadRequest, appErr.StatusCode)
	})

	mt.Run("repeat submission for the same policy conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "trustlife_db.policies", mtest.FirstBatch, bson.D{{Key: "_id", Value: policyID}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Code:    11000,
				Message: "E11000 duplicate key error collection: trustlife_db.applications index: uniq_email_policy",
			}),
		)

		service := NewApplicationService(mt.Coll, policyservice.NewPolicyService(mt.Coll))
		_, err := service.Create(context.Background(), input)
		assert.True(mt, errors.Is(err, common.ErrDuplicate))
	})

	mt.Run("malformed policy id is rejected", func(mt *mtest.T) {
		service := NewApplicationService(mt.Coll, policyservice.NewPolicyService(mt.Coll))
		_, err := service.Create(context.Background(), &applicationdto.CreateApplicationInput{
			Email:        "alice@example.com",
			PolicyID:     "not-a-hex-id",
			CustomerName: "Alice",
		})
		assert.True(mt, errors.Is(err, common.ErrInvalidFormat))
	})
}
