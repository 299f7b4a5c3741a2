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

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

const collectionStalls = "stalls"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionStalls)}
}

// bookingDocument omits pitchNo when the booking is unassigned. Older
// documents may still carry "-1" or ""; both decode as unassigned.
type bookingDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Name      string              `bson:"name"`
	Business  string              `bson:"business"`
	Email     string              `bson:"email"`
	Telephone string              `bson:"telephone"`
	Type      string              `bson:"type"`
	Comments  string              `bson:"comments"`
	Status    string              `bson:"status"`
	PitchNo   string              `bson:"pitchNo,omitempty"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty"`
}

func (d *bookingDocument) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Business:  d.Business,
		Email:     d.Email,
		Telephone: d.Telephone,
		Type:      d.Type,
		Comments:  d.Comments,
		Status:    d.Status,
		Pitch:     domain.ParsePitch(d.PitchNo),
	}
	if d.UserID != nil {
		b.UserID = d.UserID.Hex()
	}
	return b
}

func newBookingDocument(b *domain.Booking) (bookingDocument, error) {
	doc := bookingDocument{
		Name:      b.Name,
		Business:  b.Business,
		Email:     b.Email,
		Telephone: b.Telephone,
		Type:      b.Type,
		Comments:  b.Comments,
		Status:    b.Status,
		PitchNo:   b.Pitch.Number(),
	}
	if b.UserID != "" {
		oid, err := objectID(b.UserID)
		if err != nil {
			return doc, err
		}
		doc.UserID = &oid
	}
	return doc, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	doc, err := newBookingDocument(b)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPitchTaken
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) List(ctx context.Context, f ports.BookingFilter) ([]*domain.Booking, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.UserID != "" {
		oid, err := objectID(f.UserID)
		if err != nil {
			return nil, err
		}
		filter["userId"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	out := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, id string, up ports.BookingUpdate) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update, err := bookingUpdateDocument(up)
	if err != nil {
		return err
	}
	if len(update) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPitchTaken
		}
		return fmt.Errorf("update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// bookingUpdateDocument builds the $set/$unset document for a partial update.
// Releasing a pitch removes the field so the unique index ignores it.
func bookingUpdateDocument(up ports.BookingUpdate) (bson.M, error) {
	set := bson.M{}
	unset := bson.M{}

	fields := []struct {
		key string
		val *string
	}{
		{"name", up.Name},
		{"business", up.Business},
		{"email", up.Email},
		{"telephone", up.Telephone},
		{"type", up.Type},
		{"comments", up.Comments},
		{"status", up.Status},
	}
	for _, f := range fields {
		if f.val != nil {
			set[f.key] = *f.val
		}
	}

	if up.Pitch != nil {
		if up.Pitch.Assigned() {
			set["pitchNo"] = up.Pitch.Number()
		} else {
			unset["pitchNo"] = ""
		}
	}

	if up.UserID != nil {
		if *up.UserID == "" {
			unset["userId"] = ""
		} else {
			oid, err := objectID(*up.UserID)
			if err != nil {
				return nil, err
			}
			set["userId"] = oid
		}
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) PitchTaken(ctx context.Context, pitchNo string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"pitchNo": pitchNo}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count pitch: %w", err)
	}
	return n > 0, nil
}

// legacyPitchSentinels are the unassigned markers older writers stored.
var legacyPitchSentinels = bson.A{"-1", ""}

// legacyPitchFilter matches documents still carrying a sentinel pitchNo.
func legacyPitchFilter() bson.M {
	return bson.M{"pitchNo": bson.M{"$in": legacyPitchSentinels}}
}

// legacyPitchUnset rewrites a sentinel pitchNo to the absent field.
func legacyPitchUnset() bson.M {
	return bson.M{"$unset": bson.M{"pitchNo": ""}}
}

func bookingLookupIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}
}

// pitchUniqueIndex covers only documents with a string pitchNo, so it
// requires legacy sentinels to be unset first.
func pitchUniqueIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "pitchNo", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"pitchNo": bson.M{"$type": "string"}}),
	}
}

// EnsureIndexes normalises legacy unassigned pitches and creates the indexes
// on the stalls collection. The lookup indexes are created independently of
// the unique pitch index, so a duplicate assigned pitch only costs the latter.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var errs []error

	if _, err := r.col.UpdateMany(ctx, legacyPitchFilter(), legacyPitchUnset()); err != nil {
		errs = append(errs, fmt.Errorf("normalise legacy pitches: %w", err))
	}
	if _, err := r.col.Indexes().CreateMany(ctx, bookingLookupIndexes()); err != nil {
		errs = append(errs, fmt.Errorf("create lookup indexes: %w", err))
	}
	if _, err := r.col.Indexes().CreateOne(ctx, pitchUniqueIndex()); err != nil {
		errs = append(errs, fmt.Errorf("create pitch index: %w", err))
	}

	return errors.Join(errs...)
}
