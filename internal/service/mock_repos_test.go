package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/arakunle22/CrewManagement/internal/model"
	"github.com/arakunle22/CrewManagement/pkg/mailer"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 与 "email:"+email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	if _, ok := m.users["email:"+user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	users    *mockUserRepo
	docs     *mockDocumentRepo
	profiles map[string]*model.CrewProfile
	seq      int
}

func newMockProfileRepo(users *mockUserRepo, docs *mockDocumentRepo) *mockProfileRepo {
	return &mockProfileRepo{
		users:    users,
		docs:     docs,
		profiles: make(map[string]*model.CrewProfile),
	}
}

func (m *mockProfileRepo) CreateRegistration(ctx context.Context, user *model.User, profile *model.CrewProfile, doc *model.Document) error {
	if err := m.users.Create(ctx, user); err != nil {
		return err
	}
	profile.UserID = user.UserID
	m.seq++
	if profile.ProfileID == "" {
		profile.ProfileID = fmt.Sprintf("profile-%d", m.seq)
	}
	profile.User = user
	m.profiles[profile.ProfileID] = profile
	doc.ProfileID = profile.ProfileID
	return m.docs.Create(ctx, doc)
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (*model.CrewProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.CrewProfile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.CrewProfile) error {
	m.profiles[profile.ProfileID] = profile
	return nil
}

func (m *mockProfileRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string) (int64, error) {
	p, ok := m.profiles[id]
	if !ok || p.RecruitmentStatus != fromStatus {
		return 0, nil
	}
	p.RecruitmentStatus = toStatus
	return 1, nil
}

func (m *mockProfileRepo) ListByStatus(_ context.Context, status string, offset, limit int) ([]model.CrewProfile, int64, error) {
	var all []model.CrewProfile
	for _, p := range m.profiles {
		if p.RecruitmentStatus == status {
			all = append(all, *p)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockProfileRepo) ListApproved(_ context.Context) ([]model.CrewProfile, error) {
	var result []model.CrewProfile
	for _, p := range m.profiles {
		if p.RecruitmentStatus == model.StatusApproved {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockProfileRepo) ListApprovedByDepartments(_ context.Context, departmentIDs []string) ([]model.CrewProfile, error) {
	want := make(map[string]bool, len(departmentIDs))
	for _, id := range departmentIDs {
		want[id] = true
	}
	var result []model.CrewProfile
	for _, p := range m.profiles {
		if p.RecruitmentStatus != model.StatusApproved || p.DepartmentID == nil {
			continue
		}
		if want[*p.DepartmentID] {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ── Mock DocumentRepository ──

type mockDocumentRepo struct {
	docs map[string]*model.Document
	seq  int
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: make(map[string]*model.Document)}
}

func (m *mockDocumentRepo) Create(_ context.Context, doc *model.Document) error {
	m.seq++
	if doc.DocumentID == "" {
		doc.DocumentID = fmt.Sprintf("doc-%d", m.seq)
	}
	m.docs[doc.DocumentID] = doc
	return nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id string) (*model.Document, error) {
	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDocumentRepo) ListByProfile(_ context.Context, profileID string) ([]model.Document, error) {
	var result []model.Document
	for _, d := range m.docs {
		if d.ProfileID == profileID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDocumentRepo) SetVerified(_ context.Context, id string) (int64, error) {
	d, ok := m.docs[id]
	if !ok {
		return 0, nil
	}
	d.IsVerified = true
	return 1, nil
}

func (m *mockDocumentRepo) CountVerified(_ context.Context, profileID string) (int64, error) {
	var count int64
	for _, d := range m.docs {
		if d.ProfileID == profileID && d.IsVerified {
			count++
		}
	}
	return count, nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	depts map[string]*model.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{depts: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		dept.DepartmentID = "dept-" + dept.Name
	}
	m.depts[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range m.depts {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	m.depts[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) CountMembers(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

// ── Mock PositionRepository ──

type mockPositionRepo struct {
	positions map[string]*model.Position
}

func newMockPositionRepo() *mockPositionRepo {
	return &mockPositionRepo{positions: make(map[string]*model.Position)}
}

func (m *mockPositionRepo) Create(_ context.Context, pos *model.Position) error {
	if pos.PositionID == "" {
		pos.PositionID = "pos-" + pos.Title
	}
	m.positions[pos.PositionID] = pos
	return nil
}

func (m *mockPositionRepo) GetByID(_ context.Context, id string) (*model.Position, error) {
	if p, ok := m.positions[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPositionRepo) List(_ context.Context) ([]model.Position, error) {
	var result []model.Position
	for _, p := range m.positions {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPositionRepo) ListByDepartment(_ context.Context, departmentID string) ([]model.Position, error) {
	var result []model.Position
	for _, p := range m.positions {
		if p.DepartmentID == departmentID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPositionRepo) Update(_ context.Context, pos *model.Position) error {
	m.positions[pos.PositionID] = pos
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // key: profileID + "|" + date
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func attKey(profileID string, date time.Time) string {
	return profileID + "|" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) GetOrCreate(_ context.Context, profileID string, date time.Time) (*model.Attendance, error) {
	key := attKey(profileID, date)
	if rec, ok := m.records[key]; ok {
		return rec, nil
	}
	m.seq++
	rec := &model.Attendance{
		AttendanceID: fmt.Sprintf("att-%d", m.seq),
		ProfileID:    profileID,
		Date:         date,
	}
	m.records[key] = rec
	return rec, nil
}

func (m *mockAttendanceRepo) GetByDate(_ context.Context, profileID string, date time.Time) (*model.Attendance, error) {
	if rec, ok := m.records[attKey(profileID, date)]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, att *model.Attendance) error {
	m.records[attKey(att.ProfileID, att.Date)] = att
	return nil
}

func (m *mockAttendanceRepo) ListRecent(_ context.Context, profileID string, limit int) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, rec := range m.records {
		if rec.ProfileID == profileID {
			result = append(result, *rec)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByProfile(_ context.Context, profileID string, offset, limit int) ([]model.Attendance, int64, error) {
	var all []model.Attendance
	for _, rec := range m.records {
		if rec.ProfileID == profileID {
			all = append(all, *rec)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockAttendanceRepo) ListByRange(_ context.Context, profileID string, from, to time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, rec := range m.records {
		if rec.ProfileID == profileID && !rec.Date.Before(from) && !rec.Date.After(to) {
			result = append(result, *rec)
		}
	}
	return result, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.Shift
	seq    int
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	m.seq++
	if shift.ShiftID == "" {
		shift.ShiftID = fmt.Sprintf("shift-%d", m.seq)
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByProfile(_ context.Context, profileID string) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.ProfileID == profileID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) ListUpcoming(_ context.Context, profileID string, after time.Time) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.ProfileID == profileID && s.StartTime.After(after) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves map[string]*model.LeaveRequest
	seq    int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*model.LeaveRequest)}
}

func (m *mockLeaveRepo) Create(_ context.Context, req *model.LeaveRequest) error {
	m.seq++
	if req.LeaveRequestID == "" {
		req.LeaveRequestID = fmt.Sprintf("leave-%d", m.seq)
	}
	m.leaves[req.LeaveRequestID] = req
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (*model.LeaveRequest, error) {
	if l, ok := m.leaves[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) ListByProfile(_ context.Context, profileID string, limit int) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, l := range m.leaves {
		if l.ProfileID == profileID {
			result = append(result, *l)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockLeaveRepo) ListPending(_ context.Context, offset, limit int) ([]model.LeaveRequest, int64, error) {
	var all []model.LeaveRequest
	for _, l := range m.leaves {
		if l.Status == model.LeavePending {
			all = append(all, *l)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockLeaveRepo) UpdateStatus(_ context.Context, id, status string) (int64, error) {
	l, ok := m.leaves[id]
	if !ok || l.Status != model.LeavePending {
		return 0, nil
	}
	l.Status = status
	return 1, nil
}

// ── Mock TaskRepository ──

type mockTaskRepo struct {
	tasks map[string]*model.Task
	seq   int
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	m.seq++
	if task.TaskID == "" {
		task.TaskID = fmt.Sprintf("task-%d", m.seq)
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) ListByProfile(_ context.Context, profileID, status string) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.ProfileID != profileID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTaskRepo) ListActive(_ context.Context, profileID string, limit int) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.ProfileID == profileID && t.Status != model.TaskCompleted {
			result = append(result, *t)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.TaskID] = task
	return nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	announcements map[string]*model.Announcement
	targets       map[string][]string // announcement_id → department_ids
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{
		announcements: make(map[string]*model.Announcement),
		targets:       make(map[string][]string),
	}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement, departmentIDs []string) error {
	m.seq++
	if a.AnnouncementID == "" {
		a.AnnouncementID = fmt.Sprintf("ann-%d", m.seq)
	}
	m.announcements[a.AnnouncementID] = a
	m.targets[a.AnnouncementID] = departmentIDs
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context, offset, limit int) ([]model.Announcement, int64, error) {
	var all []model.Announcement
	for _, a := range m.announcements {
		all = append(all, *a)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockAnnouncementRepo) ListForDepartment(_ context.Context, departmentID string, limit int) ([]model.Announcement, error) {
	var result []model.Announcement
	for id, a := range m.announcements {
		if a.IsGlobal {
			result = append(result, *a)
			continue
		}
		if departmentID == "" {
			continue
		}
		for _, target := range m.targets[id] {
			if target == departmentID {
				result = append(result, *a)
				break
			}
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	activity  map[string]time.Time
	blacklist map[string]bool
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{
		activity:  make(map[string]time.Time),
		blacklist: make(map[string]bool),
	}
}

func (m *mockSessionStore) GetLastActivity(_ context.Context, sessionID string) (time.Time, bool, error) {
	t, ok := m.activity[sessionID]
	return t, ok, nil
}

func (m *mockSessionStore) SetLastActivity(_ context.Context, sessionID string, at time.Time, _ time.Duration) error {
	m.activity[sessionID] = at
	return nil
}

func (m *mockSessionStore) DeleteSession(_ context.Context, sessionID string) error {
	delete(m.activity, sessionID)
	return nil
}

func (m *mockSessionStore) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.blacklist[jti] = true
	return nil
}

func (m *mockSessionStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.blacklist[jti], nil
}

// ── Mock Blob Store ──

type mockBlobStore struct {
	files map[string][]byte
	seq   int
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{files: make(map[string][]byte)}
}

func (m *mockBlobStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.seq++
	ref := fmt.Sprintf("blob-%d-%s", m.seq, filename)
	m.files[ref] = data
	return ref, nil
}

func (m *mockBlobStore) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	data, ok := m.files[ref]
	if !ok {
		return nil, fmt.Errorf("引用不存在: %s", ref)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ── Mock Messenger ──

type mockMessenger struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]bool
}

func newMockMessenger() *mockMessenger {
	return &mockMessenger{failFor: make(map[string]bool)}
}

func (m *mockMessenger) Send(_ context.Context, recipient string, _ mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[recipient] {
		return fmt.Errorf("投递失败: %s", recipient)
	}
	m.sent = append(m.sent, recipient)
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
