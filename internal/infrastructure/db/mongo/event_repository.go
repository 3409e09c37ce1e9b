package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lionscafe/storefront/internal/core/domain"
)

const paymentEventsCollection = "payment_events"

// PaymentEventRepository keeps the audit trail of payment webhooks in MongoDB.
type PaymentEventRepository struct {
	coll *mongo.Collection
}

// NewPaymentEventRepository creates a PaymentEventRepository on db.
func NewPaymentEventRepository(db *mongo.Database) *PaymentEventRepository {
	return &PaymentEventRepository{coll: db.Collection(paymentEventsCollection)}
}

// EnsureIndexes creates the lookup indexes used by support tooling.
func (r *PaymentEventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetName("event_id")},
		{Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "received_at", Value: -1}}, Options: options.Index().SetName("order_received")},
	})
	if err != nil {
		return fmt.Errorf("ensure payment event indexes: %w", err)
	}
	return nil
}

// InsertEvent appends one processed webhook to the audit collection.
func (r *PaymentEventRepository) InsertEvent(ctx context.Context, rec *domain.PaymentEventRecord) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert payment event: %w", err)
	}
	return nil
}
