package model

import (
	"time"

	"staffdir/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Organization 租戶組織；VisibleFields 決定查詢結果可回傳的員工欄位
type Organization struct {
	ID            int64       `bson:"_id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	VisibleFields []string    `bson:"visibleFields" json:"visible_fields"`
	Status        core.Status `bson:"status" json:"status"`
	CreatedAt     time.Time   `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updated_at"`
}

func (Organization) IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
}
