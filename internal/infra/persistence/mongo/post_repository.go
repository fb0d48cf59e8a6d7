package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	"blogd/internal/errors"
)

// postDocument is the persisted shape of a blog post.
type postDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	AuthorID  string             `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// postRepository implements the repository.PostRepository interface on MongoDB.
type postRepository struct {
	coll *mongo.Collection
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *mongo.Database) repository.PostRepository {
	return &postRepository{coll: db.Collection(blogsCollection)}
}

// parseObjectID converts a hex identifier into an ObjectID, surfacing
// malformed identifiers as their own error class.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrMalformedID
	}

	return oid, nil
}

// Create persists a new post and fills in its store-assigned id.
func (repo *postRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	doc := fromPostDomain(post)

	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert post")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid.Hex()
	}

	return nil
}

// FindAll retrieves every post. Ordering follows the store's native order;
// no ordering contract is guaranteed.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.BlogPost, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode posts")
	}

	posts := make([]*entity.BlogPost, 0, len(docs))
	for i := range docs {
		posts = append(posts, toPostDomain(&docs[i]))
	}

	return posts, nil
}

// FindByID retrieves a single post by its hex id.
func (repo *postRepository) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc postDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post by id")
	}

	return toPostDomain(&doc), nil
}

// Update applies a partial update. The matched count distinguishes a missing
// post, the modified count an update with no effective delta.
func (repo *postRepository) Update(ctx context.Context, id string, update *entity.PostUpdate) (*entity.BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.AuthorID != nil {
		set["author_id"] = *update.AuthorID
	}
	if update.UpdatedAt != nil {
		set["updated_at"] = *update.UpdatedAt
	}
	if len(set) == 0 {
		return nil, repository.ErrNoChange
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}
	if res.MatchedCount == 0 {
		return nil, repository.ErrPostNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, repository.ErrNoChange
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a post. Its comments are left in place (orphaned).
func (repo *postRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}
	if res.DeletedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a post document to a domain BlogPost entity.
func toPostDomain(data *postDocument) *entity.BlogPost {
	if data == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:        data.ID.Hex(),
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain BlogPost entity to a post document.
func fromPostDomain(data *entity.BlogPost) *postDocument {
	if data == nil {
		return nil
	}

	return &postDocument{
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
