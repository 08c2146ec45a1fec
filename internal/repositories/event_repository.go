package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"barrio/internal/models/db_models"
	"barrio/pkg/utils"
)

// EventFilter is the typed replacement for stringly filter maps: exclusion is
// an explicit field, and URL matching uses array-overlap semantics.
type EventFilter struct {
	AccountID         string
	City              string
	Categories        []string
	ExcludeCategories []string
	IsPublic          *bool
	URLs              []string
}

// ChildSet carries the applied form of a reconciliation plan for one child
// collection: rows to create, ids to retain, ids to remove.
type ChildSet[T any] struct {
	Create []T
	Keep   []string
	Delete []string
}

// EventChildrenUpdate gathers the per-collection plans of one event update.
// A nil collection leaves that collection untouched; TagIDs is a full
// replacement set when ReplaceTags is true.
type EventChildrenUpdate struct {
	Activities  *ChildSet[db_models.Activity]
	Tickets     *ChildSet[db_models.Ticket]
	Files       *ChildSet[db_models.File]
	TagIDs      []string
	ReplaceTags bool
}

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event, tagIDs []string) error
	FindByID(ctx context.Context, id string) (*db_models.Event, error)
	Find(ctx context.Context, filter EventFilter) ([]db_models.Event, error)
	Update(ctx context.Context, event *db_models.Event, children EventChildrenUpdate) error
	Delete(ctx context.Context, event *db_models.Event) error
	FindDueRecurring(ctx context.Context, now time.Time) ([]db_models.Event, error)
	Save(ctx context.Context, event *db_models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (e *eventRepository) Insert(ctx context.Context, event *db_models.Event, tagIDs []string) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(event).Error; err != nil {
			return err
		}
		if len(tagIDs) > 0 {
			tags, err := fetchTags(tx, tagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(event).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *eventRepository) FindByID(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).
		Preload("Activities").
		Preload("Tickets").
		Preload("Files").
		Preload("Tags").
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (e *eventRepository) Find(ctx context.Context, filter EventFilter) ([]db_models.Event, error) {
	query := e.db.WithContext(ctx).
		Preload("Activities").
		Preload("Tickets").
		Preload("Files").
		Preload("Tags")

	if filter.AccountID != "" {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if len(filter.ExcludeCategories) > 0 {
		query = query.Where("category NOT IN ?", filter.ExcludeCategories)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if len(filter.URLs) > 0 {
		query = query.Where("urls && ?", pq.Array(filter.URLs))
	}

	var events []db_models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update persists the merged scalar fields and applies every child-collection
// plan inside ONE transaction, so a failure mid-apply rolls the whole update
// back instead of leaving the event with a mixed child set.
func (e *eventRepository) Update(ctx context.Context, event *db_models.Event, children EventChildrenUpdate) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(event).Error; err != nil {
			return err
		}

		if children.Activities != nil {
			if err := applyChildSet(tx, *children.Activities, &db_models.Activity{}, utils.ErrActivityNotFound); err != nil {
				return err
			}
		}
		if children.Tickets != nil {
			if err := applyChildSet(tx, *children.Tickets, &db_models.Ticket{}, utils.ErrTicketNotFound); err != nil {
				return err
			}
		}
		if children.Files != nil {
			if err := applyChildSet(tx, *children.Files, &db_models.File{}, utils.ErrFileNotFound); err != nil {
				return err
			}
		}
		if children.ReplaceTags {
			tags, err := fetchTags(tx, children.TagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(event).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fresh, err := e.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	*event = *fresh
	return nil
}

func (e *eventRepository) Delete(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).
		Select("Activities", "Tickets", "Files").
		Delete(event).Error
}

func (e *eventRepository) FindDueRecurring(ctx context.Context, now time.Time) ([]db_models.Event, error) {
	var events []db_models.Event
	err := e.db.WithContext(ctx).
		Preload("Activities").
		Where("frequency <> ?", db_models.FrequencyNone).
		Where("end_date < ?", now).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (e *eventRepository) Save(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Omit(clause.Associations).Save(event).Error
}

// applyChildSet deletes, creates and verifies one child collection within the
// caller's transaction. A kept id that resolves to nothing aborts with the
// entity's not-found error.
func applyChildSet[T any](tx *gorm.DB, set ChildSet[T], model *T, notFound error) error {
	if len(set.Delete) > 0 {
		if err := tx.Where("id IN ?", set.Delete).Delete(model).Error; err != nil {
			return err
		}
	}
	for i := range set.Create {
		if err := tx.Create(&set.Create[i]).Error; err != nil {
			return err
		}
	}
	if len(set.Keep) > 0 {
		var count int64
		if err := tx.Model(model).Where("id IN ?", set.Keep).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(set.Keep)) {
			return notFound
		}
	}
	return nil
}

func fetchTags(tx *gorm.DB, ids []string) ([]db_models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []db_models.Tag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, utils.ErrTagNotFound
	}
	return tags, nil
}
