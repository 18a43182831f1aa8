package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/testhub/client/internal/core/ports"
)

const storageCollection = "local_storage"

// Storage keeps client-local storage as one document per (namespace, key).
type Storage struct {
	client    *mongo.Client
	coll      *mongo.Collection
	namespace string
}

var _ ports.Storage = (*Storage)(nil)

type storageItem struct {
	Namespace string    `bson:"namespace"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewStorage wraps a connected client and database.
func NewStorage(client *mongo.Client, db *mongo.Database, namespace string) *Storage {
	return &Storage{client: client, coll: db.Collection(storageCollection), namespace: namespace}
}

// EnsureIndexes creates the unique (namespace, key) index.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "namespace", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create storage index: %w", err)
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item storageItem
	err := s.coll.FindOne(ctx, s.filter(key)).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item: %w", err)
	}
	return item.Value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	update := bson.M{"$set": storageItem{
		Namespace: s.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}}
	if _, err := s.coll.UpdateOne(ctx, s.filter(key), update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, s.filter(key)); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return err
	}
	return s.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *Storage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Storage) filter(key string) bson.M {
	return bson.M{"namespace": s.namespace, "key": key}
}
