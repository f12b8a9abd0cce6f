package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

const issueCollection = "issues"

type IssueRepository struct {
	coll *mongo.Collection
}

func NewIssueRepository(db *mongo.Database) *IssueRepository {
	return &IssueRepository{coll: db.Collection(issueCollection)}
}

type mongoIssue struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty"`
	Title            string              `bson:"title"`
	Description      string              `bson:"description"`
	Category         string              `bson:"category"`
	Status           string              `bson:"status"`
	Location         *domain.Coordinates `bson:"location,omitempty"`
	ImageURL         string              `bson:"image_url,omitempty"`
	ReporterID       string              `bson:"reporter_id"`
	ReporterUsername string              `bson:"reporter_username"`
	CreatedAt        time.Time           `bson:"created_at"`
}

// Create inserts a new issue document and returns it with its generated ID.
func (r *IssueRepository) Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error) {
	doc := mongoIssue{
		Title:            issue.Title,
		Description:      issue.Description,
		Category:         issue.Category,
		Status:           string(issue.Status),
		Location:         issue.Location,
		ImageURL:         issue.ImageURL,
		ReporterID:       issue.ReporterID,
		ReporterUsername: issue.ReporterUsername,
		CreatedAt:        issue.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert issue: %w", err)
	}

	created := *issue
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIssueNotFound
	}

	var mi mongoIssue
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}
	return mi.toDomain(), nil
}

// FindAll returns every issue, newest first.
func (r *IssueRepository) FindAll(ctx context.Context) ([]*domain.Issue, error) {
	return r.find(ctx, bson.M{})
}

// FindByReporter returns the issues submitted by reporterID, newest first.
func (r *IssueRepository) FindByReporter(ctx context.Context, reporterID string) ([]*domain.Issue, error) {
	return r.find(ctx, bson.M{"reporter_id": reporterID})
}

func (r *IssueRepository) find(ctx context.Context, filter bson.M) ([]*domain.Issue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer cur.Close(ctx)

	issues := make([]*domain.Issue, 0)
	for cur.Next(ctx) {
		var mi mongoIssue
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode issue: %w", err)
		}
		issues = append(issues, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return issues, nil
}

func (r *IssueRepository) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) (*domain.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIssueNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return nil, fmt.Errorf("update issue status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrIssueNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrIssueNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIssueNotFound
	}
	return nil
}

func (mi *mongoIssue) toDomain() *domain.Issue {
	return &domain.Issue{
		ID:               mi.ID.Hex(),
		Title:            mi.Title,
		Description:      mi.Description,
		Category:         mi.Category,
		Status:           domain.IssueStatus(mi.Status),
		Location:         mi.Location,
		ImageURL:         mi.ImageURL,
		ReporterID:       mi.ReporterID,
		ReporterUsername: mi.ReporterUsername,
		CreatedAt:        mi.CreatedAt.UTC(),
	}
}
