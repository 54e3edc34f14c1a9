package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/ports"
)

const (
	moviesCollection   = "movies"
	countersCollection = "counters"
	movieCounterID     = "movie_id"
)

type MovieRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{
		coll:     db.Collection(moviesCollection),
		counters: db.Collection(countersCollection),
	}
}

// nextID allocates the next sequential movie ID from the counters collection.
func (r *MovieRepository) nextID(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": movieCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate movie id: %w", err)
	}
	return counter.Seq, nil
}

// Create inserts a new movie with a freshly allocated ID. A duplicate title
// trips the unique index and maps to domain.ErrMovieExists.
func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := *m
	movie.ID = id
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, movie); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return &movie, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var movie domain.Movie
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &movie, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]*domain.Movie, 0)
	for cursor.Next(ctx) {
		var m domain.Movie
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, &m)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Update applies a partial $set built from the non-nil patch fields and
// returns the updated document.
func (r *MovieRepository) Update(ctx context.Context, id int, patch ports.UpdateMovieInput) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.EpisodeID != nil {
		set["episode_id"] = *patch.EpisodeID
	}
	if patch.OpeningCrawl != nil {
		set["opening_crawl"] = *patch.OpeningCrawl
	}
	if patch.Director != nil {
		set["director"] = *patch.Director
	}
	if patch.Producer != nil {
		set["producer"] = *patch.Producer
	}
	if patch.ReleaseDate != nil {
		set["release_date"] = *patch.ReleaseDate
	}
	if patch.Characters != nil {
		set["characters"] = patch.Characters
	}
	if patch.Planets != nil {
		set["planets"] = patch.Planets
	}
	if patch.Starships != nil {
		set["starships"] = patch.Starships
	}
	if patch.Vehicles != nil {
		set["vehicles"] = patch.Vehicles
	}
	if patch.Species != nil {
		set["species"] = patch.Species
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}

	var movie domain.Movie
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return &movie, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// EnsureIndexes creates the unique title index on the movies collection.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
