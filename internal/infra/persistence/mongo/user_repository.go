package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	"blogd/internal/errors"
)

// userDocument is the persisted shape of a user account.
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Email          string             `bson:"email"`
	FullName       string             `bson:"full_name"`
	HashedPassword string             `bson:"hashed_password"`
	Disabled       bool               `bson:"disabled"`
}

// userRepository implements the repository.UserRepository interface on MongoDB.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var doc userDocument
	err := repo.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		// If no document matched, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&doc), nil
}

// Create persists a new user. Username uniqueness is enforced by the store's
// unique index; violations surface as ErrDuplicateUsername.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := fromUserDomain(user)

	res, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUsername
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a user document to a domain User entity.
func toUserDomain(data *userDocument) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID.Hex(),
		Username:       data.Username,
		Email:          data.Email,
		FullName:       data.FullName,
		HashedPassword: data.HashedPassword,
		Disabled:       data.Disabled,
	}
}

// fromUserDomain converts a domain User entity to a user document for persistence.
func fromUserDomain(data *entity.User) *userDocument {
	if data == nil {
		return nil
	}

	return &userDocument{
		Username:       data.Username,
		Email:          data.Email,
		FullName:       data.FullName,
		HashedPassword: data.HashedPassword,
		Disabled:       data.Disabled,
	}
}
