package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
)

// ErrMongoNotReady is returned when no connection attempt succeeds.
var ErrMongoNotReady = errors.New("mongodb did not become ready within the given time period")

const defaultCollection = "totp_credentials"

// credentialDoc is the stored document shape.
type credentialDoc struct {
	UserName       string    `bson:"_id"`
	Secret         string    `bson:"secret"`
	ValidationCode int       `bson:"validation_code"`
	ScratchCodes   []int     `bson:"scratch_codes"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// Connect creates a client and verifies the connection, retrying up to
// cfg.RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	for i := 0; i < cfg.RetryAttempts; i++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrMongoNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrMongoNotReady
}

// Store persists credentials in a MongoDB collection.
type Store struct {
	coll *mongo.Collection
}

var _ authenticator.CredentialStore = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	collection string
}

// WithCollection overrides the default "totp_credentials" collection name.
func WithCollection(name string) StoreOption {
	return func(c *storeConfig) { c.collection = name }
}

// New builds a credential store on top of the given database.
func New(db *mongo.Database, opts ...StoreOption) *Store {
	cfg := storeConfig{collection: defaultCollection}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{coll: db.Collection(cfg.collection)}
}

// GetSecret implements authenticator.CredentialStore.
func (s *Store) GetSecret(ctx context.Context, userName string) (string, error) {
	var doc credentialDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": userName}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return "", err
	}
	return doc.Secret, nil
}

// Save implements authenticator.CredentialStore with a replace-upsert.
func (s *Store) Save(ctx context.Context, userName, secret string, validationCode int, scratchCodes []int) error {
	codes := make([]int, len(scratchCodes))
	copy(codes, scratchCodes)

	doc := credentialDoc{
		UserName:       userName,
		Secret:         secret,
		ValidationCode: validationCode,
		ScratchCodes:   codes,
		UpdatedAt:      time.Now().UTC(),
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": userName}, doc, options.Replace().SetUpsert(true))
	return err
}

// ScratchCodes returns the stored scratch codes of a user.
func (s *Store) ScratchCodes(ctx context.Context, userName string) ([]int, error) {
	var doc credentialDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": userName}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return nil, err
	}
	return doc.ScratchCodes, nil
}
