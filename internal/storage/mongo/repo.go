package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hotels_api/internal/domain"
)

// Repo is generic CRUD over one collection. Documents are keyed by the
// entity id stored under _id.
type Repo[T domain.Entity] struct {
	coll *mongo.Collection
}

func NewRepo[T domain.Entity](coll *mongo.Collection) *Repo[T] {
	return &Repo[T]{coll: coll}
}

func (r *Repo[T]) All(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.D{})
}

func (r *Repo[T]) AllWhere(ctx context.Context, pred func(T) bool) ([]T, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, e := range all {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *Repo[T]) ByID(ctx context.Context, id string) (*T, error) {
	var e T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo[T]) Create(ctx context.Context, e T) error {
	_, err := r.coll.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateID
	}
	return err
}

func (r *Repo[T]) Update(ctx context.Context, id string, e T) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, e)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// AllInRange translates the half-open range to a $gte/$lt filter so the scan
// can use an index on the date field.
func (r *Repo[T]) AllInRange(ctx context.Context, f domain.DateRange) ([]T, error) {
	return r.find(ctx, bson.M{f.Field: bson.M{"$gte": f.From, "$lt": f.To}})
}

func (r *Repo[T]) find(ctx context.Context, filter any) ([]T, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var e T
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}
