package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BlogContent is the rich-editor document. Blocks are opaque to the server;
// only their presence is validated when publishing.
type BlogContent struct {
	Time    int64            `bson:"time,omitempty" json:"time,omitempty"`
	Blocks  []map[string]any `bson:"blocks" json:"blocks"`
	Version string           `bson:"version,omitempty" json:"version,omitempty"`
}

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BlogID      string             `bson:"blog_id" json:"blog_id"`
	Title       string             `bson:"title" json:"title"`
	Des         string             `bson:"des" json:"des"`
	Banner      string             `bson:"banner" json:"banner"`
	Content     BlogContent        `bson:"content" json:"content"`
	Tags        []string           `bson:"tags" json:"tags"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	Draft       bool               `bson:"draft" json:"draft"`
	PublishedAt int64              `bson:"publishedAt" json:"publishedAt"`
}
