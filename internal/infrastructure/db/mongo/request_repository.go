package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

const requestCollection = "service_requests"

type MongoRequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{coll: db.Collection(requestCollection)}
}

type requestDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID   string             `bson:"customer_id"`
	CustomerName string             `bson:"customer_name"`
	ServiceID    string             `bson:"service_id"`
	ServiceName  string             `bson:"service_name"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d requestDoc) toDomain() domain.ServiceRequest {
	return domain.ServiceRequest{
		ID:           d.ID.Hex(),
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		ServiceID:    d.ServiceID,
		ServiceName:  d.ServiceName,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (r *MongoRequestRepository) Insert(ctx context.Context, req *domain.ServiceRequest) (string, error) {
	doc := requestDoc{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		ServiceName:  req.ServiceName,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", storageErr("insert request", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (r *MongoRequestRepository) FindByCustomer(ctx context.Context, customerID string) ([]domain.ServiceRequest, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *MongoRequestRepository) FindByStatus(ctx context.Context, status string) ([]domain.ServiceRequest, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoRequestRepository) find(ctx context.Context, filter bson.M) ([]domain.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storageErr("find requests", err)
	}
	defer cursor.Close(ctx)

	requests := []domain.ServiceRequest{}
	for cursor.Next(ctx) {
		var doc requestDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, storageErr("decode request", err)
		}
		requests = append(requests, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storageErr("iterate requests", err)
	}
	return requests, nil
}

func (r *MongoRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidRequestID
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return storageErr("update request", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
