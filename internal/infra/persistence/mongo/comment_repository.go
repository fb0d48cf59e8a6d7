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

// commentDocument is the persisted shape of a comment. The post reference is
// stored as the post's hex id and served by a secondary index.
type commentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	Content   string             `bson:"content"`
	AuthorID  string             `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// commentRepository implements the repository.CommentRepository interface on MongoDB.
type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{coll: db.Collection(commentsCollection)}
}

// Create persists a new comment and fills in its store-assigned id.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	doc := fromCommentDomain(comment)

	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert comment")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid.Hex()
	}

	return nil
}

// FindByPostID retrieves all comments referencing the given post.
func (repo *commentRepository) FindByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"post_id": postID})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode comments")
	}

	comments := make([]*entity.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, toCommentDomain(&docs[i]))
	}

	return comments, nil
}

// FindByID retrieves a single comment by its hex id.
func (repo *commentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc commentDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment by id")
	}

	return toCommentDomain(&doc), nil
}

// Update applies a partial update, mirroring the post update semantics.
func (repo *commentRepository) Update(ctx context.Context, id string, update *entity.CommentUpdate) (*entity.Comment, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.AuthorID != nil {
		set["author_id"] = *update.AuthorID
	}
	if len(set) == 0 {
		return nil, repository.ErrNoChange
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}
	if res.MatchedCount == 0 {
		return nil, repository.ErrCommentNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, repository.ErrNoChange
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a comment.
func (repo *commentRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}
	if res.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain converts a comment document to a domain Comment entity.
func toCommentDomain(data *commentDocument) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID.Hex(),
		PostID:    data.PostID,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a comment document.
func fromCommentDomain(data *entity.Comment) *commentDocument {
	if data == nil {
		return nil
	}

	return &commentDocument{
		PostID:    data.PostID,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
	}
}
