package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/registry"
)

// Collection names used by the marketplace.
const (
	ColPolicies                = "policies"
	ColCustomers               = "customers"
	ColApplications            = "applications"
	ColPayments                = "payments"
	ColBlogs                   = "blogs"
	ColReviews                 = "reviews"
	ColNewsletterSubscriptions = "newsletter_subscriptions"
)

// AllCollections lists every collection the server registers at startup.
var AllCollections = []string{
	ColPolicies,
	ColCustomers,
	ColApplications,
	ColPayments,
	ColBlogs,
	ColReviews,
	ColNewsletterSubscriptions,
}

// Store bundles the MongoDB client, database handle and the collection
// registry. Services receive their collection handles from here instead of
// reaching for package-level globals.
type Store struct {
	Client      *mongo.Client
	DB          *mongo.Database
	Collections *registry.Registry[*mongo.Collection]
}

// NewStore builds a Store over an established client and registers all
// known collections.
func NewStore(client *mongo.Client, dbName string) (*Store, error) {
	s := &Store{
		Client:      client,
		DB:          client.Database(dbName),
		Collections: registry.NewRegistry[*mongo.Collection](),
	}
	for _, name := range AllCollections {
		if _, err := s.Collections.Register(name, s.DB.Collection(name)); err != nil {
			return nil, fmt.Errorf("failed to register collection %s: %w", name, err)
		}
	}
	return s, nil
}

// Collection returns the registered handle for name. It panics on an
// unregistered name, which indicates a programming error at wiring time.
func (s *Store) Collection(name string) *mongo.Collection {
	col, exists := s.Collections.Get(name)
	if !exists {
		panic(fmt.Sprintf("collection %s is not registered", name))
	}
	return col
}

// EnsureIndexes creates the unique indexes that back the marketplace's
// conflict semantics. Creation is idempotent, so this runs on every boot.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			// One application per (applicant, policy).
			collection: ColApplications,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}, {Key: "policyId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email_policy"),
			},
		},
		{
			// One account per email.
			collection: ColCustomers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			// Replayed gateway transactions must not double-record.
			collection: ColPayments,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "transactionId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_transaction"),
			},
		},
	}

	for _, spec := range specs {
		name, err := s.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", spec.collection, err)
		}
		logger.GetAppLogger().WithField("collection", spec.collection).
			WithField("index", name).Debug("Index ensured")
	}
	return nil
}
