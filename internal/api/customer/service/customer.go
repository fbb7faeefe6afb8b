package customerservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	customerdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/dto"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// CustomerService manages accounts and serves as the role source for the
// authorization middleware.
type CustomerService struct {
	baseservice.BaseServiceMongo[customermodels.Customer]
}

// NewCustomerService wires the service over the customers collection.
func NewCustomerService(collection *mongo.Collection) *CustomerService {
	return &CustomerService{
		BaseServiceMongo: baseservice.NewBaseServiceMongo[customermodels.Customer](collection),
	}
}

// CreateIfAbsent inserts an account on first login. The unique email index
// is the source of truth: a concurrent or repeated call hits the duplicate
// key and falls back to returning the stored document with inserted=false.
func (s *CustomerService) CreateIfAbsent(ctx context.Context, input *customerdto.CreateCustomerInput) (customermodels.Customer, bool, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	lastLogin := input.LastLogin
	if lastLogin == 0 {
		lastLogin = time.Now().UnixMilli()
	}

	model := customermodels.Customer{
		Email:        email,
		CustomerName: input.CustomerName,
		PhotoURL:     input.PhotoURL,
		Role:         customermodels.RoleCustomer,
		LastLogin:    lastLogin,
	}

	created, err := s.InsertOne(ctx, model)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, common.ErrDuplicate) {
		return customermodels.Customer{}, false, err
	}

	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return customermodels.Customer{}, false, err
	}
	// Record the login that triggered the call.
	_, _ = s.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"lastLogin": lastLogin}})
	existing.LastLogin = lastLogin
	return existing, false, nil
}

// FindByEmail returns the account for email.
func (s *CustomerService) FindByEmail(ctx context.Context, email string) (customermodels.Customer, error) {
	return s.FindOne(ctx, bson.M{"email": strings.ToLower(email)}, nil)
}

// RoleByEmail resolves the stored role for email, defaulting to customer
// for unknown accounts. Satisfies middleware.RoleResolver.
func (s *CustomerService) RoleByEmail(ctx context.Context, email string) (string, error) {
	account, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return string(customermodels.RoleCustomer), nil
		}
		return "", err
	}
	if account.Role == "" {
		return string(customermodels.RoleCustomer), nil
	}
	return string(account.Role), nil
}

// UpdateRoleByEmail promotes or demotes an account. Only the assignable
// roles pass; anything else is rejected at the boundary.
func (s *CustomerService) UpdateRoleByEmail(ctx context.Context, email string, role customermodels.Role) (customermodels.Customer, error) {
	if !role.Assignable() {
		return customermodels.Customer{}, common.NewError(
			common.ErrCodeValidationInput, "unknown role", common.StatusBadRequest,
			map[string]string{"role": string(role)})
	}

	_, err := s.UpdateOne(ctx, bson.M{"email": strings.ToLower(email)}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return customermodels.Customer{}, err
	}
	return s.FindByEmail(ctx, email)
}

// List returns one page of accounts, optionally filtered by role.
func (s *CustomerService) List(ctx context.Context, role string, page, limit int64) (*basemodels.PaginateResult[customermodels.Customer], error) {
	filter := bson.M{}
	if role != "" {
		if !customermodels.Role(role).Valid() {
			return nil, common.NewError(
				common.ErrCodeValidationInput, "unknown role filter", common.StatusBadRequest,
				map[string]string{"role": role})
		}
		filter["role"] = role
	}
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// ListAgents returns every account holding the agent role.
func (s *CustomerService) ListAgents(ctx context.Context) ([]customermodels.Customer, error) {
	return s.Find(ctx, bson.M{"role": customermodels.RoleAgent}, nil)
}
