package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

const eventCollection = "issue_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{coll: db.Collection(eventCollection)}
}

// Append persists one activity event.
func (r *EventRepository) Append(ctx context.Context, event *domain.IssueEvent) error {
	doc := bson.M{
		"issue_id":  event.IssueID,
		"type":      string(event.Type),
		"actor":     event.Actor,
		"timestamp": event.Timestamp.UTC(),
	}
	if event.Status != "" {
		doc["status"] = string(event.Status)
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert issue event: %w", err)
	}
	return nil
}

// FindByIssue returns all events for issueID in chronological order.
func (r *EventRepository) FindByIssue(ctx context.Context, issueID string) ([]*domain.IssueEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"issue_id": issueID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list issue events: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]*domain.IssueEvent, 0)
	for cur.Next(ctx) {
		var raw struct {
			ID        primitive.ObjectID `bson:"_id"`
			IssueID   string             `bson:"issue_id"`
			Type      string             `bson:"type"`
			Status    string             `bson:"status"`
			Actor     string             `bson:"actor"`
			Timestamp primitive.DateTime `bson:"timestamp"`
		}
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode issue event: %w", err)
		}
		events = append(events, &domain.IssueEvent{
			ID:        raw.ID.Hex(),
			IssueID:   raw.IssueID,
			Type:      domain.IssueEventType(raw.Type),
			Status:    domain.IssueStatus(raw.Status),
			Actor:     raw.Actor,
			Timestamp: raw.Timestamp.Time().UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list issue events: %w", err)
	}
	return events, nil
}
