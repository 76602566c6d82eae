// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"hr-dashboard-api/internal/store"
	"hr-dashboard-api/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeesCollection = "employees"
	tasksCollection     = "tasks"
)

// Store is a MongoDB-backed store.Store. Documents use the record's UUID string as _id.
type Store struct {
	client    *mongo.Client
	employees *mongo.Collection
	tasks     *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the connection and ensures indexes on database dbName.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client:    client,
		employees: db.Collection(employeesCollection),
		tasks:     db.Collection(tasksCollection),
	}

	_, err = s.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "employeeId", Value: 1}}})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create task index: %w", err)
	}
	return s, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (T, error) {
	var v T
	if err := coll.FindOne(ctx, byID(id)).Decode(&v); err != nil {
		var zero T
		return zero, notFound(err)
	}
	return v, nil
}

// replace loads the document, runs apply on it and writes the whole document back by id.
// Nothing guards the gap between the load and the write: last write wins.
func replace[T any](ctx context.Context, coll *mongo.Collection, id string, apply func(*T) error) (T, error) {
	var zero T
	v, err := findOne[T](ctx, coll, id)
	if err != nil {
		return zero, err
	}
	if err := apply(&v); err != nil {
		return zero, err
	}
	res, err := coll.ReplaceOne(ctx, byID(id), v)
	if err != nil {
		return zero, err
	}
	if res.MatchedCount == 0 {
		return zero, store.ErrNotFound
	}
	return v, nil
}

func deleteOne[T any](ctx context.Context, coll *mongo.Collection, id string) (T, error) {
	var v T
	if err := coll.FindOneAndDelete(ctx, byID(id)).Decode(&v); err != nil {
		var zero T
		return zero, notFound(err)
	}
	return v, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return findAll[models.Employee](ctx, s.employees, bson.M{})
}

func (s *Store) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	return findOne[models.Employee](ctx, s.employees, id)
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) error {
	_, err := s.employees.InsertOne(ctx, e)
	return err
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, apply func(*models.Employee) error) (models.Employee, error) {
	return replace(ctx, s.employees, id, apply)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (models.Employee, error) {
	return deleteOne[models.Employee](ctx, s.employees, id)
}

func (s *Store) EmployeesByID(ctx context.Context, ids []string) ([]models.Employee, error) {
	if len(ids) == 0 {
		return []models.Employee{}, nil
	}
	return findAll[models.Employee](ctx, s.employees, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	return findAll[models.Task](ctx, s.tasks, bson.M{})
}

func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	return findOne[models.Task](ctx, s.tasks, id)
}

func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	_, err := s.tasks.InsertOne(ctx, t)
	return err
}

func (s *Store) UpdateTask(ctx context.Context, id string, apply func(*models.Task) error) (models.Task, error) {
	return replace(ctx, s.tasks, id, apply)
}

func (s *Store) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	return deleteOne[models.Task](ctx, s.tasks, id)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
