package repository

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database"
	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Body      string             `bson:"body"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *reviewDocument) toModel() models.Review {
	return models.Review{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Body:   d.Body,
		Rating: d.Rating,
	}
}

// MongoReviewRepository stores reviews in their own collection
type MongoReviewRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ ReviewRepositoryInterface = (*MongoReviewRepository)(nil)

// NewMongoReviewRepository creates a review repository over db
func NewMongoReviewRepository(db *mongo.Database, timeout time.Duration) *MongoReviewRepository {
	return &MongoReviewRepository{
		coll:    db.Collection(database.ReviewsCollection),
		timeout: timeout,
	}
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := reviewDocument{
		ID:        primitive.NewObjectID(),
		Body:      review.Body,
		Rating:    review.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}

	*review = doc.toModel()
	return nil
}

func (r *MongoReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReviewNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc reviewDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	review := doc.toModel()
	return &review, nil
}

// GetByIDs fetches the referenced reviews with a single $in query
func (r *MongoReviewRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Review, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []models.Review{}, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	for cur.Next(ctx) {
		var doc reviewDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return orderReviews(ids, reviews), nil
}

func (r *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrReviewNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

func (r *MongoReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
