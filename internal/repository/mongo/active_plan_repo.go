package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	progressCollectionName = "progress"

	// activePlanKey is the well-known _id of the single progress record.
	// There is never more than one active plan, so the whole record lives
	// under one fixed key.
	activePlanKey = "active_plan"
)

// activePlanDocument is the stored shape of the progress record. The plan
// itself is kept as an opaque JSON payload rather than a BSON sub-document, so
// schema changes in the payload never require a migration: an undecodable
// payload is simply treated as "no active plan".
type activePlanDocument struct {
	ID        string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoActivePlanRepository implements repository.ActivePlanRepository.
type mongoActivePlanRepository struct {
	collection *mongo.Collection
}

// NewMongoActivePlanRepository creates the active plan repository backed by
// the given database.
func NewMongoActivePlanRepository(db *mongo.Database) repository.ActivePlanRepository {
	return &mongoActivePlanRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// Get loads the active plan record. It returns repository.ErrNotFound when no
// plan is active, and also when the stored payload cannot be decoded (e.g. a
// payload written by an older app version): malformed state degrades to "no
// active plan" instead of propagating a decode error to every caller.
func (r *mongoActivePlanRepository) Get(ctx context.Context) (*domain.ActivePlan, error) {
	var doc activePlanDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": activePlanKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var plan domain.ActivePlan
	if err := json.Unmarshal([]byte(doc.Payload), &plan); err != nil {
		log.Printf("WARN: discarding undecodable active plan payload: %v", err)
		return nil, repository.ErrNotFound
	}
	if plan.CompletedWorkouts == nil {
		plan.CompletedWorkouts = []domain.CompletedWorkout{}
	}
	return &plan, nil
}

// Put upserts the active plan record. The write is synchronous: callers may
// only consider a mutation applied once Put has returned nil.
func (r *mongoActivePlanRepository) Put(ctx context.Context, plan *domain.ActivePlan) error {
	if plan == nil {
		return errors.New("active plan is required")
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	doc := activePlanDocument{
		ID:        activePlanKey,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": activePlanKey}, doc, opts); err != nil {
		return err
	}
	return nil
}

// Clear removes the active plan record. Deleting an absent record is not an
// error, so Clear is idempotent.
func (r *mongoActivePlanRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": activePlanKey})
	return err
}
