package baseservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func TestJoinSpec_Compile_Simple(t *testing.T) {
	spec := JoinSpec{
		From:         "policies",
		LocalField:   "policyId",
		ForeignField: "_id",
		As:           "policy",
	}

	pipeline, err := spec.Compile()
	require.NoError(t, err)
	require.Len(t, pipeline, 1)
	assert.Equal(t, "$lookup", stageKey(t, pipeline[0]))

	lookup := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, "policies", lookup["from"])
	assert.Equal(t, "policyId", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])
	assert.Equal(t, "policy", lookup["as"])
}

func TestJoinSpec_Compile_WithCastAndUnwind(t *testing.T) {
	spec := JoinSpec{
		From:                "policies",
		LocalField:          "policyId",
		ForeignField:        "_id",
		As:                  "policy",
		CastLocalToObjectID: true,
		Unwind:              true,
		PreserveEmpty:       true,
	}

	pipeline, err := spec.Compile()
	require.NoError(t, err)
	require.Len(t, pipeline, 4)

	assert.Equal(t, "$addFields", stageKey(t, pipeline[0]))
	assert.Equal(t, "$lookup", stageKey(t, pipeline[1]))
	assert.Equal(t, "$unwind", stageKey(t, pipeline[2]))
	assert.Equal(t, "$unset", stageKey(t, pipeline[3]))

	addFields := pipeline[0][0].Value.(bson.M)
	cast := addFields[spec.castedField()].(bson.M)
	assert.Equal(t, "$policyId", cast["$toObjectId"])

	lookup := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, spec.castedField(), lookup["localField"])

	unwind := pipeline[2][0].Value.(bson.M)
	assert.Equal(t, "$policy", unwind["path"])
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])

	assert.Equal(t, spec.castedField(), pipeline[3][0].Value)
}

func TestJoinSpec_Compile_WithStringCast(t *testing.T) {
	spec := JoinSpec{
		From:              "payments",
		LocalField:        "_id",
		ForeignField:      "applicationId",
		As:                "payment",
		CastLocalToString: true,
		Unwind:            true,
		PreserveEmpty:     true,
	}

	pipeline, err := spec.Compile()
	require.NoError(t, err)
	require.Len(t, pipeline, 4)

	addFields := pipeline[0][0].Value.(bson.M)
	cast := addFields[spec.castedField()].(bson.M)
	assert.Equal(t, "$_id", cast["$toString"])
}

func TestJoinSpec_Compile_MissingFields(t *testing.T) {
	_, err := JoinSpec{From: "policies"}.Compile()
	assert.Error(t, err)
}

func TestJoinSpec_Compile_ConflictingCasts(t *testing.T) {
	_, err := JoinSpec{
		From:                "policies",
		LocalField:          "policyId",
		ForeignField:        "_id",
		As:                  "policy",
		CastLocalToObjectID: true,
		CastLocalToString:   true,
	}.Compile()
	assert.Error(t, err)
}

func TestJoinSpec_AppendTo(t *testing.T) {
	base := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": "approved"}}},
	}

	spec := JoinSpec{
		From:         "customers",
		LocalField:   "email",
		ForeignField: "email",
		As:           "customer",
	}

	pipeline, err := spec.AppendTo(base)
	require.NoError(t, err)
	require.Len(t, pipeline, 2)
	assert.Equal(t, "$match", stageKey(t, pipeline[0]))
	assert.Equal(t, "$lookup", stageKey(t, pipeline[1]))
}
