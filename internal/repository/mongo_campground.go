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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type campgroundDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Location    string               `bson:"location"`
	Description string               `bson:"description"`
	Price       float64              `bson:"price"`
	Image       string               `bson:"image"`
	Reviews     []primitive.ObjectID `bson:"reviews"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d *campgroundDocument) toModel() models.Campground {
	ids := make([]string, 0, len(d.Reviews))
	for _, rid := range d.Reviews {
		ids = append(ids, rid.Hex())
	}
	return models.Campground{
		BaseModel: models.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:       d.Title,
		Location:    d.Location,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		ReviewIDs:   ids,
	}
}

// MongoCampgroundRepository stores campgrounds as documents holding an array
// of review ObjectIDs
type MongoCampgroundRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ CampgroundRepositoryInterface = (*MongoCampgroundRepository)(nil)

// NewMongoCampgroundRepository creates a campground repository over db
func NewMongoCampgroundRepository(db *mongo.Database, timeout time.Duration) *MongoCampgroundRepository {
	return &MongoCampgroundRepository{
		coll:    db.Collection(database.CampgroundsCollection),
		timeout: timeout,
	}
}

func (r *MongoCampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	reviews, err := objectIDs(campground.ReviewIDs)
	if err != nil {
		return err
	}
	doc := campgroundDocument{
		ID:          primitive.NewObjectID(),
		Title:       campground.Title,
		Location:    campground.Location,
		Description: campground.Description,
		Price:       campground.Price,
		Image:       campground.Image,
		Reviews:     reviews,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}

	*campground = doc.toModel()
	return nil
}

func (r *MongoCampgroundRepository) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc campgroundDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, err
	}
	campground := doc.toModel()
	return &campground, nil
}

func (r *MongoCampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	campgrounds := []models.Campground{}
	for cur.Next(ctx) {
		var doc campgroundDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		campgrounds = append(campgrounds, doc.toModel())
	}
	return campgrounds, cur.Err()
}

func (r *MongoCampgroundRepository) Update(ctx context.Context, campground *models.Campground) error {
	oid, err := primitive.ObjectIDFromHex(campground.ID)
	if err != nil {
		return apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":       campground.Title,
		"location":    campground.Location,
		"description": campground.Description,
		"price":       campground.Price,
		"image":       campground.Image,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

func (r *MongoCampgroundRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

func (r *MongoCampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddReview pushes reviewID onto the reviews array
func (r *MongoCampgroundRepository) AddReview(ctx context.Context, campgroundID, reviewID string) error {
	oid, err := primitive.ObjectIDFromHex(campgroundID)
	if err != nil {
		return apperrors.ErrCampgroundNotFound
	}
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return apperrors.ErrReviewNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"reviews": rid},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// RemoveReview pulls every occurrence of reviewID from the reviews array
func (r *MongoCampgroundRepository) RemoveReview(ctx context.Context, campgroundID, reviewID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(campgroundID)
	if err != nil {
		return false, apperrors.ErrCampgroundNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	// a malformed review id can never be referenced
	if rid, err := primitive.ObjectIDFromHex(reviewID); err == nil {
		res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "reviews": rid}, bson.M{
			"$pull": bson.M{"reviews": rid},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
		if err != nil {
			return false, err
		}
		if res.ModifiedCount > 0 {
			return true, nil
		}
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, apperrors.ErrCampgroundNotFound
	}
	return false, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.NewValidationError("reviews", "invalid review id "+id)
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
