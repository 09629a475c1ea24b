// Package audit stores computed fee quotes in MongoDB for later review.
package audit

import (
	"context"
	"fmt"
	"time"

	"acquiring/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuoteLog records fee quotes.
type QuoteLog interface {
	Record(ctx context.Context, quote *models.FeeQuote) error
	ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]models.FeeQuote, int64, error)
}

type MongoConfig struct {
	URI      string
	Database string
}

// Connect opens and pings a MongoDB client.
func Connect(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	opts := options.
		Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxConnIdleTime(30 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

type mongoQuoteLog struct {
	coll *mongo.Collection
}

// NewMongoQuoteLog uses coll and makes sure the merchant lookup index exists.
func NewMongoQuoteLog(ctx context.Context, coll *mongo.Collection) (QuoteLog, error) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "merchant_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quote index: %w", err)
	}
	return &mongoQuoteLog{coll: coll}, nil
}

func (l *mongoQuoteLog) Record(ctx context.Context, quote *models.FeeQuote) error {
	if _, err := l.coll.InsertOne(ctx, toDocument(quote)); err != nil {
		return fmt.Errorf("failed to record fee quote: %w", err)
	}
	return nil
}

func (l *mongoQuoteLog) ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]models.FeeQuote, int64, error) {
	filter := bson.M{"merchant_id": merchantID}

	total, err := l.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count fee quotes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := l.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find fee quotes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []quoteDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode fee quotes: %w", err)
	}

	out := make([]models.FeeQuote, 0, len(docs))
	for _, doc := range docs {
		q, err := doc.toModel()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, q)
	}
	return out, total, nil
}
