package repository

import (
	"context"
	"time"

	"staffdir/internal/core"
	client "staffdir/internal/database/client"
	"staffdir/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepository struct {
	collection  *mongo.Collection
	counterRepo *CounterRepository
}

func NewEmployeeRepository(mongoClient *client.MongoClient, counterRepo *CounterRepository) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection:  mongoClient.Client().Database(string(core.MongoDBStaffdir)).Collection(string(core.MongoCollectionEmployees)),
		counterRepo: counterRepo,
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.Employee{}.IndexModels())
	return nil
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID == 0 {
		nextID, idError := repository.counterRepo.NextID(contextValue, string(core.MongoCollectionEmployees))
		if idError != nil {
			return nil, idError
		}
		employee.ID = nextID
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, employee); insertError != nil {
		return nil, insertError
	}
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier int64) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// FindPage 偏移分頁：_id 升冪排序後 skip + limit
func (repository *EmployeeRepository) FindPage(contextValue context.Context, filter bson.M, offset int64, limit int64) (_ []*model.Employee, returnedError error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	return repository.findAll(contextValue, filter, findOptions)
}

// FindAfter 游標分頁：補上 _id > cursor 條件後取 limit 筆
func (repository *EmployeeRepository) FindAfter(contextValue context.Context, filter bson.M, cursor int64, limit int64) (_ []*model.Employee, returnedError error) {
	filterWithCursor := bson.M{}
	for key, value := range filter {
		filterWithCursor[key] = value
	}
	filterWithCursor["_id"] = bson.M{"$gt": cursor}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)
	return repository.findAll(contextValue, filterWithCursor, findOptions)
}

func (repository *EmployeeRepository) findAll(contextValue context.Context, filter bson.M, findOptions *options.FindOptions) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EmployeeRepository) Count(contextValue context.Context, filter bson.M) (returnedCount int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *EmployeeRepository) UpdateByID(contextValue context.Context, employeeIdentifier int64, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": employeeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier int64) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	return returnedError
}
