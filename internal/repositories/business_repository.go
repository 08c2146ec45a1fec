package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"barrio/internal/models/db_models"
	"barrio/pkg/utils"
)

type BusinessFilter struct {
	AccountID         string
	City              string
	Categories        []string
	ExcludeCategories []string
	IsPublic          *bool
	URLs              []string
}

type BusinessChildrenUpdate struct {
	SocialNetworks *ChildSet[db_models.SocialNetwork]
	Files          *ChildSet[db_models.File]
	TagIDs         []string
	ReplaceTags    bool
}

type BusinessRepository interface {
	Insert(ctx context.Context, business *db_models.Business, tagIDs []string) error
	FindByID(ctx context.Context, id string) (*db_models.Business, error)
	Find(ctx context.Context, filter BusinessFilter) ([]db_models.Business, error)
	Update(ctx context.Context, business *db_models.Business, children BusinessChildrenUpdate) error
	Delete(ctx context.Context, business *db_models.Business) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (b *businessRepository) Insert(ctx context.Context, business *db_models.Business, tagIDs []string) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(business).Error; err != nil {
			return err
		}
		if len(tagIDs) > 0 {
			tags, err := fetchTags(tx, tagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(business).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *businessRepository) FindByID(ctx context.Context, id string) (*db_models.Business, error) {
	var business db_models.Business
	err := b.db.WithContext(ctx).
		Preload("SocialNetworks").
		Preload("Files").
		Preload("Tags").
		First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (b *businessRepository) Find(ctx context.Context, filter BusinessFilter) ([]db_models.Business, error) {
	query := b.db.WithContext(ctx).
		Preload("SocialNetworks").
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

	var businesses []db_models.Business
	if err := query.Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

// Update runs the scalar save and every child-collection plan in one
// transaction; see eventRepository.Update for the rationale.
func (b *businessRepository) Update(ctx context.Context, business *db_models.Business, children BusinessChildrenUpdate) error {
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(business).Error; err != nil {
			return err
		}

		if children.SocialNetworks != nil {
			if err := applyChildSet(tx, *children.SocialNetworks, &db_models.SocialNetwork{}, utils.ErrSocialNetworkNotFound); err != nil {
				return err
			}
		}
		if children.Files != nil {
			if err := b.applyFiles(tx, business, *children.Files); err != nil {
				return err
			}
		}
		if children.ReplaceTags {
			tags, err := fetchTags(tx, children.TagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(business).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fresh, err := b.FindByID(ctx, business.ID)
	if err != nil {
		return err
	}
	*business = *fresh
	return nil
}

// applyFiles differs from the has-many collections: business files go through
// a join table, so the surviving rows are re-attached with an association
// replace after the deletes and creates.
func (b *businessRepository) applyFiles(tx *gorm.DB, business *db_models.Business, set ChildSet[db_models.File]) error {
	if len(set.Delete) > 0 {
		if err := tx.Model(business).Association("Files").Delete(toFileRefs(set.Delete)); err != nil {
			return err
		}
		if err := tx.Where("id IN ?", set.Delete).Delete(&db_models.File{}).Error; err != nil {
			return err
		}
	}

	for i := range set.Create {
		if err := tx.Create(&set.Create[i]).Error; err != nil {
			return err
		}
	}

	attached := make([]db_models.File, 0, len(set.Create)+len(set.Keep))
	attached = append(attached, set.Create...)

	if len(set.Keep) > 0 {
		var kept []db_models.File
		if err := tx.Where("id IN ?", set.Keep).Find(&kept).Error; err != nil {
			return err
		}
		if len(kept) != len(set.Keep) {
			return utils.ErrFileNotFound
		}
		attached = append(attached, kept...)
	}

	return tx.Model(business).Association("Files").Replace(attached)
}

func toFileRefs(ids []string) []db_models.File {
	refs := make([]db_models.File, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, db_models.File{ID: id})
	}
	return refs
}

func (b *businessRepository) Delete(ctx context.Context, business *db_models.Business) error {
	return b.db.WithContext(ctx).
		Select("SocialNetworks").
		Delete(business).Error
}
