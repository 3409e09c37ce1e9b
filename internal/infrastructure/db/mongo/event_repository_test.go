package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/lionscafe/storefront/internal/core/domain"
)

func TestPaymentEventRepository_InsertEvent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := &PaymentEventRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.InsertEvent(context.Background(), &domain.PaymentEventRecord{
			EventID:    "evt_1",
			Type:       domain.EventPaymentSucceeded,
			OrderID:    "order-1",
			Outcome:    domain.OutcomeConfirmed,
			ReceivedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "insert" {
			t.Fatalf("expected an insert command, got %+v", started)
		}
		doc := started.Command.Lookup("documents").Array().Index(0).Value().Document()
		if got := doc.Lookup("event_id").StringValue(); got != "evt_1" {
			t.Errorf("event_id = %q", got)
		}
		if got := doc.Lookup("outcome").StringValue(); got != domain.OutcomeConfirmed {
			t.Errorf("outcome = %q", got)
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := &PaymentEventRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		if err := repo.InsertEvent(context.Background(), &domain.PaymentEventRecord{EventID: "evt_1"}); err == nil {
			t.Fatal("expected error")
		}
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := &PaymentEventRepository{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}})

		if err := repo.EnsureIndexes(context.Background()); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
	})
}
