package repositories

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestMongoDeleteOfMalformedIDMatchesNothing(t *testing.T) {
	// The client is never connected; a malformed id returns before any round trip.
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	repo := NewMongoProductRepository(client.Database("catalog_test"))

	for _, id := range []string{"does-not-exist", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if err := repo.Delete(context.Background(), id); err != nil {
			t.Errorf("Delete(%q) returned error: %v", id, err)
		}
	}
}
