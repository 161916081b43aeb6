package model

import (
	"time"

	"staffdir/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactInfo 員工聯絡方式
type ContactInfo struct {
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Employee 員工資料；_id 為遞增整數，游標分頁以 _id 排序
type Employee struct {
	ID          int64       `bson:"_id" json:"id"`
	TenantID    int64       `bson:"tenantId" json:"tenant_id"`
	Name        string      `bson:"name" json:"name"`
	Department  string      `bson:"department" json:"department"`
	Location    string      `bson:"location" json:"location"`
	Position    string      `bson:"position" json:"position"`
	Company     string      `bson:"company" json:"company"`
	Status      core.Status `bson:"status" json:"status"`
	ContactInfo ContactInfo `bson:"contactInfo" json:"contact_info"`
	CreatedAt   time.Time   `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updated_at"`
}

// IndexModels 租戶優先的複合索引，涵蓋各查詢條件欄位
func (Employee) IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "status", Value: 1}, {Key: "_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "location", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "company", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "department", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "position", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "contactInfo.email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
}
