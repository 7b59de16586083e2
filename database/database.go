package database

import (
	"context"
	"log"
	"time"

	"blogfolio/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB bundles the Mongo client with the collection handles the handlers use.
type DB struct {
	Client *mongo.Client
	Users  *mongo.Collection
	Blogs  *mongo.Collection
}

// Connect opens the Mongo connection, pings it and prepares the unique
// indexes the collections rely on.
func Connect(cfg config.MongoConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := &DB{
		Client: client,
		Users:  client.Database(cfg.Database).Collection("users"),
		Blogs:  client.Database(cfg.Database).Collection("blogs"),
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB successfully")
	return db, nil
}

// ensureIndexes enforces global uniqueness of email, username and blog_id.
// Duplicate inserts surface as duplicate-key errors in the handlers.
func (db *DB) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "personal_info.email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "personal_info.username", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = db.Blogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "blog_id", Value: 1}},
		Options: unique,
	})
	return err
}

// Disconnect closes the underlying client.
func (db *DB) Disconnect() error {
	if db == nil || db.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
