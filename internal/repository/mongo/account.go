package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dtroode/gophtodo-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type accountDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d accountDocument) toModel() model.Account {
	return model.Account{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) ([]model.Account, error) {
	accounts, err := r.findBy(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts by email: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) ([]model.Account, error) {
	accounts, err := r.findBy(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts by username: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) findBy(ctx context.Context, filter bson.M) ([]model.Account, error) {
	cursor, err := r.db.accounts().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(docs))
	for _, doc := range docs {
		accounts = append(accounts, doc.toModel())
	}
	return accounts, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (model.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Account{}, model.ErrNotFound
	}

	var doc accountDocument
	err = r.db.accounts().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return doc.toModel(), nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (string, error) {
	res, err := r.db.accounts().InsertOne(ctx, accountDocument{
		Username: account.Username,
		Email:    account.Email,
		Password: account.PasswordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", model.ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, patch model.AccountPatch) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := r.db.accounts().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": accountPatchDocument(patch)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("failed to update account: %w", err)
	}

	return res.MatchedCount, nil
}

func accountPatchDocument(patch model.AccountPatch) bson.M {
	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	return set
}
