package applicationservice

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	applicationdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/dto"
	applicationmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/models"
	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	policyservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/database"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
)

// ApplicationService manages the application lifecycle from submission to
// claim resolution.
type ApplicationService struct {
	baseservice.BaseServiceMongo[applicationmodels.Application]
	policies *policyservice.PolicyService
}

// NewApplicationService wires the service over the applications collection.
// The policy service is needed to bump purchase counters on agent approval.
func NewApplicationService(collection *mongo.Collection, policies *policyservice.PolicyService) *ApplicationService {
	return &ApplicationService{
		BaseServiceMongo: baseservice.NewBaseServiceMongo[applicationmodels.Application](collection),
		policies:         policies,
	}
}

// Create submits an application with status pending. The referenced
// policy must exist; the unique (email, policyId) index turns a repeat
// submission into a 409.
func (s *ApplicationService) Create(ctx context.Context, input *applicationdto.CreateApplicationInput) (applicationmodels.Application, error) {
	policyID, err := primitive.ObjectIDFromHex(input.PolicyID)
	if err != nil {
		return applicationmodels.Application{}, common.ErrInvalidFormat
	}
	exists, err := s.policies.DocumentExists(ctx, bson.M{"_id": policyID})
	if err != nil {
		return applicationmodels.Application{}, err
	}
	if !exists {
		return applicationmodels.Application{}, common.NewError(
			common.ErrCodeBusinessOperation, "unknown policy", common.StatusBadRequest,
			map[string]string{"policyId": input.PolicyID})
	}

	model := applicationmodels.Application{
		Email:            strings.ToLower(strings.TrimSpace(input.Email)),
		PolicyID:         input.PolicyID,
		CustomerName:     input.CustomerName,
		Address:          input.Address,
		NomineeName:      input.NomineeName,
		NomineeRelation:  input.NomineeRelation,
		HealthConditions: input.HealthConditions,
		Status:           applicationmodels.StatusPending,
	}
	return s.InsertOne(ctx, model)
}

// List returns one admin page, optionally filtered by status.
func (s *ApplicationService) List(ctx context.Context, status string, page, limit int64) (*basemodels.PaginateResult[applicationmodels.Application], error) {
	filter := bson.M{}
	if status != "" {
		if !applicationmodels.ApplicationStatus(status).Valid() {
			return nil, common.NewError(
				common.ErrCodeValidationInput, "unknown status filter", common.StatusBadRequest,
				map[string]string{"status": status})
		}
		filter["status"] = status
	}
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// ListByEmail returns one customer's applications.
func (s *ApplicationService) ListByEmail(ctx context.Context, email string) ([]applicationmodels.Application, error) {
	return s.Find(ctx, bson.M{"email": strings.ToLower(email)}, nil)
}

// ListAssigned returns the applications assigned to an agent.
func (s *ApplicationService) ListAssigned(ctx context.Context, agentEmail string) ([]applicationmodels.Application, error) {
	return s.Find(ctx, bson.M{"agentEmail": strings.ToLower(agentEmail)}, nil)
}

// conditionalUpdate applies set where filter matches. When nothing matched
// it distinguishes a missing document (404) from a state conflict (400).
func (s *ApplicationService) conditionalUpdate(ctx context.Context, id primitive.ObjectID, filter bson.M, set bson.M) (applicationmodels.Application, error) {
	filter["_id"] = id
	_, err := s.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err == nil {
		return s.FindOneByID(ctx, id)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return applicationmodels.Application{}, err
	}

	if _, findErr := s.FindOneByID(ctx, id); findErr != nil {
		return applicationmodels.Application{}, findErr
	}
	return applicationmodels.Application{}, common.ErrInvalidState
}

// AssignAgent moves a pending application to approved and hands it to an
// agent for review.
func (s *ApplicationService) AssignAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) (applicationmodels.Application, error) {
	return s.conditionalUpdate(ctx, id,
		bson.M{"status": applicationmodels.StatusPending},
		bson.M{
			"status":      applicationmodels.StatusApproved,
			"agentEmail":  strings.ToLower(agentEmail),
			"agentStatus": applicationmodels.AgentStatusPending,
		})
}

// UpdateStatus applies the admin decision on a pending application.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status applicationmodels.ApplicationStatus) (applicationmodels.Application, error) {
	if !applicationmodels.StatusPending.CanTransitionTo(status) {
		return applicationmodels.Application{}, common.NewError(
			common.ErrCodeBusinessState, "status must be approved or rejected", common.StatusBadRequest,
			map[string]string{"status": string(status)})
	}
	return s.conditionalUpdate(ctx, id,
		bson.M{"status": applicationmodels.StatusPending},
		bson.M{"status": status})
}

// ApproveByAgent records the assigned agent's approval and bumps the
// policy's purchase counter. The counter moves at most once because the
// guarded update only matches agentStatus=pending.
func (s *ApplicationService) ApproveByAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) (applicationmodels.Application, error) {
	updated, err := s.conditionalUpdate(ctx, id,
		bson.M{
			"agentEmail":  strings.ToLower(agentEmail),
			"agentStatus": applicationmodels.AgentStatusPending,
		},
		bson.M{"agentStatus": applicationmodels.AgentStatusApproved})
	if err != nil {
		return applicationmodels.Application{}, err
	}

	policyID, err := primitive.ObjectIDFromHex(updated.PolicyID)
	if err == nil {
		if _, incErr := s.policies.IncrementPurchased(ctx, policyID); incErr != nil {
			logger.GetAppLogger().WithError(incErr).
				WithField("policyId", updated.PolicyID).
				Warn("Failed to bump purchase counter after agent approval")
		}
	}
	return updated, nil
}

// MarkPaid flips an approved application to paid once its payment has been
// recorded.
func (s *ApplicationService) MarkPaid(ctx context.Context, id primitive.ObjectID) (applicationmodels.Application, error) {
	return s.conditionalUpdate(ctx, id,
		bson.M{"status": applicationmodels.StatusApproved},
		bson.M{"status": applicationmodels.StatusPaid})
}

// SubmitClaim files a claim on a paid application owned by email.
func (s *ApplicationService) SubmitClaim(ctx context.Context, id primitive.ObjectID, email string, input *applicationdto.ClaimInput) (applicationmodels.Application, error) {
	return s.conditionalUpdate(ctx, id,
		bson.M{
			"email":       strings.ToLower(email),
			"status":      applicationmodels.StatusPaid,
			"claimStatus": bson.M{"$in": bson.A{"", nil}},
		},
		bson.M{
			"claimStatus":   applicationmodels.ClaimStatusClaimed,
			"claimReason":   input.ClaimReason,
			"claimDocument": input.ClaimDocument,
		})
}

// ApproveClaim resolves a filed claim. Only the assigned agent can approve.
func (s *ApplicationService) ApproveClaim(ctx context.Context, id primitive.ObjectID, agentEmail string) (applicationmodels.Application, error) {
	return s.conditionalUpdate(ctx, id,
		bson.M{
			"agentEmail":  strings.ToLower(agentEmail),
			"claimStatus": applicationmodels.ClaimStatusClaimed,
		},
		bson.M{"claimStatus": applicationmodels.ClaimStatusApproved})
}

// ClaimRequestsPipeline builds the agent claim-queue aggregation: filed
// claims on the agent's applications, left-joined to the policy catalog
// and to the recorded payment, flattened for the dashboard table.
func ClaimRequestsPipeline(agentEmail string) (mongo.Pipeline, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"agentEmail":  strings.ToLower(agentEmail),
			"claimStatus": applicationmodels.ClaimStatusClaimed,
		}}},
	}

	policyJoin := baseservice.JoinSpec{
		From:                database.ColPolicies,
		LocalField:          "policyId",
		ForeignField:        "_id",
		As:                  "policy",
		CastLocalToObjectID: true,
		Unwind:              true,
		PreserveEmpty:       true,
	}
	pipeline, err := policyJoin.AppendTo(pipeline)
	if err != nil {
		return nil, err
	}

	paymentJoin := baseservice.JoinSpec{
		From:              database.ColPayments,
		LocalField:        "_id",
		ForeignField:      "applicationId",
		As:                "payment",
		CastLocalToString: true,
		Unwind:            true,
		PreserveEmpty:     true,
	}
	pipeline, err = paymentJoin.AppendTo(pipeline)
	if err != nil {
		return nil, err
	}

	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":            bson.M{"$toString": "$_id"},
		"email":          1,
		"customerName":   1,
		"policyId":       1,
		"policyTitle":    "$policy.title",
		"policyCategory": "$policy.category",
		"claimStatus":    1,
		"claimReason":    1,
		"claimDocument":  1,
		"paidAmount":     "$payment.amount",
		"transactionId":  "$payment.transactionId",
	}}})

	return pipeline, nil
}

// ClaimRequests runs the claim-queue aggregation for an agent.
func (s *ApplicationService) ClaimRequests(ctx context.Context, agentEmail string) ([]applicationdto.ClaimRequestView, error) {
	pipeline, err := ClaimRequestsPipeline(agentEmail)
	if err != nil {
		return nil, err
	}
	return baseservice.Aggregate[applicationdto.ClaimRequestView](ctx, s.Collection(), pipeline)
}
