// Package sqlstore implements store.Store on GORM (SQLite, Postgres or MySQL).
package sqlstore

import (
	"context"
	"errors"

	"hr-dashboard-api/internal/store"
	"hr-dashboard-api/pkg/models"

	"gorm.io/gorm"
)

// Store is a GORM-backed store.Store.
type Store struct {
	db *gorm.DB
}

// New wraps an opened and migrated *gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var e models.Employee
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return models.Employee{}, notFound(err)
	}
	return e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, apply func(*models.Employee) error) (models.Employee, error) {
	var e models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&e).Error; err != nil {
			return notFound(err)
		}
		if err := apply(&e); err != nil {
			return err
		}
		return tx.Save(&e).Error
	})
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (models.Employee, error) {
	var e models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&e).Error; err != nil {
			return notFound(err)
		}
		return tx.Delete(&e).Error
	})
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

func (s *Store) EmployeesByID(ctx context.Context, ids []string) ([]models.Employee, error) {
	employees := []models.Employee{}
	if len(ids) == 0 {
		return employees, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	var t models.Task
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return models.Task{}, notFound(err)
	}
	return t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Store) UpdateTask(ctx context.Context, id string, apply func(*models.Task) error) (models.Task, error) {
	var t models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&t).Error; err != nil {
			return notFound(err)
		}
		if err := apply(&t); err != nil {
			return err
		}
		return tx.Save(&t).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	var t models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&t).Error; err != nil {
			return notFound(err)
		}
		return tx.Delete(&t).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
