package repository

import (
	"context"
	"time"

	"staffdir/internal/core"
	client "staffdir/internal/database/client"
	"staffdir/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationRepository struct {
	collection  *mongo.Collection
	counterRepo *CounterRepository
}

func NewOrganizationRepository(mongoClient *client.MongoClient, counterRepo *CounterRepository) *OrganizationRepository {
	repository := &OrganizationRepository{
		collection:  mongoClient.Client().Database(string(core.MongoDBStaffdir)).Collection(string(core.MongoCollectionOrganizations)),
		counterRepo: counterRepo,
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *OrganizationRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.Organization{}.IndexModels())
	return nil
}

func (repository *OrganizationRepository) Create(contextValue context.Context, organization *model.Organization) (_ *model.Organization, returnedError error) {
	nowUTC := time.Now().UTC()
	if organization.ID == 0 {
		nextID, idError := repository.counterRepo.NextID(contextValue, string(core.MongoCollectionOrganizations))
		if idError != nil {
			return nil, idError
		}
		organization.ID = nextID
	}
	organization.CreatedAt = nowUTC
	organization.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, organization); insertError != nil {
		return nil, insertError
	}
	return organization, nil
}

func (repository *OrganizationRepository) GetByID(contextValue context.Context, organizationIdentifier int64) (_ *model.Organization, returnedError error) {
	var organization model.Organization
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": organizationIdentifier}).Decode(&organization); returnedError != nil {
		return nil, returnedError
	}
	return &organization, nil
}

// ListActive 列出所有啟用中的組織（快取預熱用）
func (repository *OrganizationRepository) ListActive(contextValue context.Context) (_ []*model.Organization, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{"status": core.StatusActive})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Organization
	for cursor.Next(contextValue) {
		var organization model.Organization
		if decodeError := cursor.Decode(&organization); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &organization)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// UpdateVisibleFields 更新組織可見欄位設定
func (repository *OrganizationRepository) UpdateVisibleFields(contextValue context.Context, organizationIdentifier int64, visibleFields []string) (returnedError error) {
	result, updateError := repository.collection.UpdateOne(
		contextValue,
		bson.M{"_id": organizationIdentifier},
		withUpdatedAt(bson.M{"$set": bson.M{"visibleFields": visibleFields}}),
	)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
