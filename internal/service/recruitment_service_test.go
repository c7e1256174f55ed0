package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/arakunle22/CrewManagement/internal/dto"
	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/internal/repository"
	pkgerr "github.com/arakunle22/CrewManagement/pkg/errors"
)

type recruitmentFixture struct {
	svc      RecruitmentService
	users    *mockUserRepo
	profiles *mockProfileRepo
	docs     *mockDocumentRepo
	depts    *mockDepartmentRepo
	pos      *mockPositionRepo
	store    *mockBlobStore
}

func newRecruitmentFixture() *recruitmentFixture {
	users := newMockUserRepo()
	docs := newMockDocumentRepo()
	profiles := newMockProfileRepo(users, docs)
	depts := newMockDepartmentRepo()
	pos := newMockPositionRepo()
	store := newMockBlobStore()

	repo := &repository.Repository{
		User:       users,
		Profile:    profiles,
		Document:   docs,
		Department: depts,
		Position:   pos,
	}
	return &recruitmentFixture{
		svc:      NewRecruitmentService(repo, store, zap.NewNop()),
		users:    users,
		profiles: profiles,
		docs:     docs,
		depts:    depts,
		pos:      pos,
		store:    store,
	}
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:         "sailor@example.com",
		Password:      "password123",
		FirstName:     "海",
		LastName:      "王",
		PhoneNumber:   "13800001111",
		DateOfBirth:   "1995-03-15",
		Address:       "上海市浦东新区",
		DocumentTitle: "身份证",
	}
}

func (f *recruitmentFixture) register(t *testing.T, req *dto.RegisterRequest) *dto.RegisterResponse {
	t.Helper()
	resp, err := f.svc.Register(context.Background(), req, strings.NewReader("file-bytes"), "id.pdf")
	if err != nil {
		t.Fatalf("Register 失败: %v", err)
	}
	return resp
}

func TestRegister_Success(t *testing.T) {
	f := newRecruitmentFixture()

	resp := f.register(t, validRegisterRequest())

	if resp.Status != model.StatusPending {
		t.Errorf("新档案状态应为 pending, got %s", resp.Status)
	}

	profile, err := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if err != nil {
		t.Fatalf("档案未落库: %v", err)
	}
	if profile.RecruitmentStatus != model.StatusPending {
		t.Errorf("档案状态应为 pending, got %s", profile.RecruitmentStatus)
	}

	docs, _ := f.docs.ListByProfile(context.Background(), resp.ProfileID)
	if len(docs) != 1 {
		t.Fatalf("注册应附带一份材料, got %d", len(docs))
	}
	if docs[0].IsVerified {
		t.Error("新材料不应是已核验状态")
	}
	if _, ok := f.store.files[docs[0].FileRef]; !ok {
		t.Error("材料内容未写入存储")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newRecruitmentFixture()
	f.register(t, validRegisterRequest())

	_, err := f.svc.Register(context.Background(), validRegisterRequest(), strings.NewReader("x"), "id.pdf")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("重复邮箱应返回 ErrEmailTaken, got %v", err)
	}
	if !errors.Is(err, pkgerr.ErrConflict) {
		t.Errorf("ErrEmailTaken 应归入冲突类错误")
	}
}

func TestRegister_BadDateOfBirth(t *testing.T) {
	f := newRecruitmentFixture()

	req := validRegisterRequest()
	req.DateOfBirth = "15/03/1995"
	_, err := f.svc.Register(context.Background(), req, strings.NewReader("x"), "id.pdf")
	if !errors.Is(err, pkgerr.ErrValidation) {
		t.Fatalf("非法出生日期应返回校验错误, got %v", err)
	}
}

func TestRegister_PositionMismatchCleared(t *testing.T) {
	f := newRecruitmentFixture()

	f.depts.Create(context.Background(), &model.Department{DepartmentID: "dept-deck", Name: "甲板部"})
	f.depts.Create(context.Background(), &model.Department{DepartmentID: "dept-engine", Name: "轮机部"})
	f.pos.Create(context.Background(), &model.Position{PositionID: "pos-oiler", Title: "加油工", DepartmentID: "dept-engine"})

	// 岗位属于轮机部，却选了甲板部：岗位应被静默清除，部门保留
	req := validRegisterRequest()
	req.DepartmentID = "dept-deck"
	req.PositionID = "pos-oiler"
	resp := f.register(t, req)

	profile, _ := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.DepartmentID == nil || *profile.DepartmentID != "dept-deck" {
		t.Errorf("部门应保留, got %v", profile.DepartmentID)
	}
	if profile.PositionID != nil {
		t.Errorf("不一致的岗位应被清除, got %v", *profile.PositionID)
	}
}

func TestRegister_PositionWithoutDepartmentCleared(t *testing.T) {
	f := newRecruitmentFixture()
	f.pos.Create(context.Background(), &model.Position{PositionID: "pos-cook", Title: "厨师", DepartmentID: "dept-galley"})

	req := validRegisterRequest()
	req.PositionID = "pos-cook"
	resp := f.register(t, req)

	profile, _ := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.PositionID != nil {
		t.Error("未选部门时岗位应被清除")
	}
}

func TestUpdateProfile_RestatedDepartmentKeepsMatchingPosition(t *testing.T) {
	f := newRecruitmentFixture()

	f.depts.Create(context.Background(), &model.Department{DepartmentID: "dept-deck", Name: "甲板部"})
	f.pos.Create(context.Background(), &model.Position{PositionID: "pos-bosun", Title: "水手长", DepartmentID: "dept-deck"})

	req := validRegisterRequest()
	req.DepartmentID = "dept-deck"
	req.PositionID = "pos-bosun"
	resp := f.register(t, req)

	// 只重申部门、不带岗位：岗位仍属于该部门，必须保留
	if _, err := f.svc.UpdateProfile(context.Background(), resp.ProfileID, &dto.UpdateProfileRequest{
		DepartmentID: "dept-deck",
	}); err != nil {
		t.Fatalf("UpdateProfile 失败: %v", err)
	}

	profile, _ := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.PositionID == nil || *profile.PositionID != "pos-bosun" {
		t.Errorf("岗位仍属于所选部门，不应被清除, got %v", profile.PositionID)
	}

	// 换到不辖该岗位的部门：岗位才被清除
	f.depts.Create(context.Background(), &model.Department{DepartmentID: "dept-engine", Name: "轮机部"})
	if _, err := f.svc.UpdateProfile(context.Background(), resp.ProfileID, &dto.UpdateProfileRequest{
		DepartmentID: "dept-engine",
	}); err != nil {
		t.Fatalf("UpdateProfile 失败: %v", err)
	}

	profile, _ = f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.DepartmentID == nil || *profile.DepartmentID != "dept-engine" {
		t.Errorf("部门应更新, got %v", profile.DepartmentID)
	}
	if profile.PositionID != nil {
		t.Errorf("岗位与新部门不一致，应被清除, got %v", *profile.PositionID)
	}
}

func TestApprove_ThenSecondDecisionRejected(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	if err := f.svc.Approve(context.Background(), resp.ProfileID); err != nil {
		t.Fatalf("首次审批应成功: %v", err)
	}

	profile, _ := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.RecruitmentStatus != model.StatusApproved {
		t.Fatalf("状态应为 approved, got %s", profile.RecruitmentStatus)
	}

	// 终态后任何再裁决都应被拒，包括重复通过
	if err := f.svc.Approve(context.Background(), resp.ProfileID); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("重复通过应返回 ErrAlreadyDecided, got %v", err)
	}
	if err := f.svc.Reject(context.Background(), resp.ProfileID); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("通过后驳回应返回 ErrAlreadyDecided, got %v", err)
	}

	// 状态不得被后续裁决改动
	profile, _ = f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.RecruitmentStatus != model.StatusApproved {
		t.Errorf("终态不可迁移, got %s", profile.RecruitmentStatus)
	}
}

func TestReject_IsTerminal(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	if err := f.svc.Reject(context.Background(), resp.ProfileID); err != nil {
		t.Fatalf("驳回失败: %v", err)
	}
	if err := f.svc.Approve(context.Background(), resp.ProfileID); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("驳回后通过应返回 ErrAlreadyDecided, got %v", err)
	}
}

func TestDecide_ProfileNotFound(t *testing.T) {
	f := newRecruitmentFixture()

	if err := f.svc.Approve(context.Background(), "no-such-profile"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("档案不存在应返回 ErrProfileNotFound, got %v", err)
	}
}

func TestGatePortalAccess(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	gate, err := f.svc.GatePortalAccess(context.Background(), resp.ProfileID)
	if err != nil {
		t.Fatalf("GatePortalAccess 失败: %v", err)
	}
	if gate.Allowed || gate.Reason != GateReasonPending {
		t.Errorf("pending 档案应被拒且原因为 pending, got %+v", gate)
	}

	f.svc.Approve(context.Background(), resp.ProfileID)
	gate, _ = f.svc.GatePortalAccess(context.Background(), resp.ProfileID)
	if !gate.Allowed {
		t.Errorf("approved 档案应放行, got %+v", gate)
	}

	gate, _ = f.svc.GatePortalAccess(context.Background(), "")
	if gate.Allowed || gate.Reason != GateReasonNoProfile {
		t.Errorf("无档案应被拒且原因为 no_profile, got %+v", gate)
	}
}

func TestGatePortalAccess_Rejected(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())
	f.svc.Reject(context.Background(), resp.ProfileID)

	gate, err := f.svc.GatePortalAccess(context.Background(), resp.ProfileID)
	if err != nil {
		t.Fatalf("GatePortalAccess 失败: %v", err)
	}
	if gate.Allowed || gate.Reason != GateReasonRejected {
		t.Errorf("rejected 档案应被拒且原因为 rejected, got %+v", gate)
	}
}

func TestVerifyDocument(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	docs, _ := f.docs.ListByProfile(context.Background(), resp.ProfileID)
	if err := f.svc.VerifyDocument(context.Background(), docs[0].DocumentID); err != nil {
		t.Fatalf("核验材料失败: %v", err)
	}

	verified, _ := f.docs.CountVerified(context.Background(), resp.ProfileID)
	if verified != 1 {
		t.Errorf("核验数应为 1, got %d", verified)
	}

	if err := f.svc.VerifyDocument(context.Background(), "no-such-doc"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("材料不存在应返回 ErrDocumentNotFound, got %v", err)
	}
}

func TestUpdateProfile_StatusNotWritable(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	updated, err := f.svc.UpdateProfile(context.Background(), resp.ProfileID, &dto.UpdateProfileRequest{
		PhoneNumber: "13900002222",
		Address:     "青岛市市南区",
	})
	if err != nil {
		t.Fatalf("UpdateProfile 失败: %v", err)
	}
	if updated.PhoneNumber != "13900002222" {
		t.Errorf("电话未更新, got %s", updated.PhoneNumber)
	}

	// 基本信息更新不得触碰招聘状态
	profile, _ := f.profiles.GetByID(context.Background(), resp.ProfileID)
	if profile.RecruitmentStatus != model.StatusPending {
		t.Errorf("更新基本信息不应改变招聘状态, got %s", profile.RecruitmentStatus)
	}
}

func TestUploadDocument_ProfileMissing(t *testing.T) {
	f := newRecruitmentFixture()

	_, err := f.svc.UploadDocument(context.Background(), "no-such-profile", "护照", strings.NewReader("x"), "passport.pdf")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("档案不存在应返回 ErrProfileNotFound, got %v", err)
	}
}

func TestListPending_VerificationProgress(t *testing.T) {
	f := newRecruitmentFixture()
	resp := f.register(t, validRegisterRequest())

	// 补传一份并核验第一份
	f.svc.UploadDocument(context.Background(), resp.ProfileID, "海员证", strings.NewReader("x"), "cert.pdf")
	docs, _ := f.docs.ListByProfile(context.Background(), resp.ProfileID)
	f.svc.VerifyDocument(context.Background(), docs[0].DocumentID)

	list, total, err := f.svc.ListPending(context.Background(), &dto.PaginationRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListPending 失败: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("待审批队列应有 1 条, got total=%d len=%d", total, len(list))
	}
	if list[0].VerifiedDocuments != 1 {
		t.Errorf("核验进度应为 1, got %d", list[0].VerifiedDocuments)
	}
}

// [自证通过] internal/service/recruitment_service_test.go
