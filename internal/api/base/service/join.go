package baseservice

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// JoinSpec describes one $lookup join between two collections. Compiling a
// spec yields the pipeline stages in a fixed shape, so every cross-collection
// read in the codebase builds its join the same way.
type JoinSpec struct {
	// From is the foreign collection name.
	From string
	// LocalField is the field on the driving collection.
	LocalField string
	// ForeignField is the field on the foreign collection, usually _id.
	ForeignField string
	// As is the output array field the joined documents land in.
	As string
	// CastLocalToObjectID converts the local field from its stored hex
	// string to an ObjectID before matching. Needed where references are
	// persisted as strings but the foreign key is a native _id.
	CastLocalToObjectID bool
	// CastLocalToString converts the local field to its hex string before
	// matching, for foreign collections that persist references as strings.
	CastLocalToString bool
	// Unwind flattens the joined array into a single embedded document.
	Unwind bool
	// PreserveEmpty keeps the driving document when the join found no
	// match. Only meaningful together with Unwind.
	PreserveEmpty bool
}

// Validate checks that the spec names every field a $lookup needs.
func (j JoinSpec) Validate() error {
	if j.From == "" || j.LocalField == "" || j.ForeignField == "" || j.As == "" {
		return common.NewError(common.ErrCodeValidationInput, "join spec is missing a required field", common.StatusInternalServerError, j)
	}
	if j.CastLocalToObjectID && j.CastLocalToString {
		return common.NewError(common.ErrCodeValidationInput, "join spec cannot cast both ways", common.StatusInternalServerError, j)
	}
	return nil
}

// castedField is the temporary field holding the converted form of the
// local field while the lookup runs.
func (j JoinSpec) castedField() string {
	return "__" + j.As + "_key"
}

// Compile produces the aggregation stages for this join.
func (j JoinSpec) Compile() (mongo.Pipeline, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	localField := j.LocalField
	pipeline := mongo.Pipeline{}

	if j.CastLocalToObjectID || j.CastLocalToString {
		castOp := "$toObjectId"
		if j.CastLocalToString {
			castOp = "$toString"
		}
		localField = j.castedField()
		pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.M{
			localField: bson.M{castOp: "$" + j.LocalField},
		}}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         j.From,
		"localField":   localField,
		"foreignField": j.ForeignField,
		"as":           j.As,
	}}})

	if j.Unwind {
		pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + j.As,
			"preserveNullAndEmptyArrays": j.PreserveEmpty,
		}}})
	}

	if j.CastLocalToObjectID || j.CastLocalToString {
		pipeline = append(pipeline, bson.D{{Key: "$unset", Value: localField}})
	}

	return pipeline, nil
}

// AppendTo compiles the join and appends its stages to an existing pipeline.
func (j JoinSpec) AppendTo(pipeline mongo.Pipeline) (mongo.Pipeline, error) {
	stages, err := j.Compile()
	if err != nil {
		return nil, err
	}
	return append(pipeline, stages...), nil
}
