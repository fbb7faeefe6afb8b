package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/config"
	applicationhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/handler"
	applicationrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/router"
	applicationservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/auth"
	bloghandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/handler"
	blogrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/router"
	blogservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/service"
	customerhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/handler"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	customerrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/router"
	customerservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/service"
	engagementhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/handler"
	engagementrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/router"
	engagementservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	paymenthandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/handler"
	paymentrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/router"
	paymentservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/service"
	policyhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/handler"
	policyrouter "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/router"
	policyservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/system"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/database"
)

// App bundles everything a running server needs.
type App struct {
	Config *config.Configuration
	Client *mongo.Client
	Store  *database.Store
	Fiber  *fiber.App
}

// NewApp connects the store, builds the services and mounts every route.
func NewApp(cfg *config.Configuration) (*App, error) {
	client, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	store, err := database.NewStore(client, cfg.MongoDBName)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureIndexes(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Services.
	customers := customerservice.NewCustomerService(store.Collection(database.ColCustomers))
	policies := policyservice.NewPolicyService(store.Collection(database.ColPolicies))
	applications := applicationservice.NewApplicationService(store.Collection(database.ColApplications), policies)
	payments := paymentservice.NewPaymentService(store.Collection(database.ColPayments), applications, cfg.StripeSecretKey)
	blogs := blogservice.NewBlogService(store.Collection(database.ColBlogs))
	engagement := engagementservice.NewEngagementService(
		store.Collection(database.ColReviews),
		store.Collection(database.ColNewsletterSubscriptions))

	// Auth.
	verifier := auth.NewJWTVerifier(cfg.JwtSecret, "trustlife")
	guard := middleware.NewAuthGuard(verifier, customers, string(customermodels.RoleAdmin))

	// HTTP.
	fiberApp := newFiberApp(cfg)
	r := router.NewRouter(fiberApp)
	prefix := router.NewRoutePrefix()

	policyrouter.Register(r, prefix, guard, policyhandler.NewPolicyHandler(policies))
	customerrouter.Register(r, prefix, guard, customerhandler.NewCustomerHandler(customers))
	applicationrouter.Register(r, prefix, guard, applicationhandler.NewApplicationHandler(applications))
	paymentrouter.Register(r, prefix, guard, paymenthandler.NewPaymentHandler(payments))
	blogrouter.Register(r, prefix, guard, bloghandler.NewBlogHandler(blogs, customers))
	engagementrouter.Register(r, prefix, guard, engagementhandler.NewEngagementHandler(engagement))
	system.Register(r, system.NewHealthHandler(client))

	return &App{
		Config: cfg,
		Client: client,
		Store:  store,
		Fiber:  fiberApp,
	}, nil
}
