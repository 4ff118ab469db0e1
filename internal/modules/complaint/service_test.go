package complaint

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

type MockComplaintAPI struct {
	mock.Mock
}

func (m *MockComplaintAPI) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintAPI) CreateComplaint(ctx context.Context, req api.CreateComplaintRequest) (*domain.Complaint, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *MockComplaintAPI) UpdateComplaint(ctx context.Context, id int64, req api.UpdateComplaintRequest) (*domain.Complaint, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func TestService_File(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	serviceID := int64(7)
	created := &domain.Complaint{ID: 1, ComplaintType: domain.ComplaintServiceIssue, Status: domain.ComplaintPending}
	mockAPI.On("CreateComplaint", mock.Anything, api.CreateComplaintRequest{
		ComplaintType: domain.ComplaintServiceIssue,
		Description:   "provider never showed up",
		Service:       &serviceID,
	}).Return(created, nil)

	got, err := svc.File(context.Background(), domain.ComplaintServiceIssue, "provider never showed up", &serviceID, nil)

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintPending, got.Status)
	mockAPI.AssertExpectations(t)
}

func TestService_File_Validation(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	_, err := svc.File(context.Background(), "SPAM", "something", nil, nil)
	assert.ErrorIs(t, err, ErrTypeRequired)

	_, err = svc.File(context.Background(), domain.ComplaintOther, "   ", nil, nil)
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	mockAPI.AssertNotCalled(t, "CreateComplaint", mock.Anything, mock.Anything)
}

func TestService_Moderate(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	resolved := &domain.Complaint{ID: 3, Status: domain.ComplaintResolved, AdminResponse: "refund issued"}
	mockAPI.On("UpdateComplaint", mock.Anything, int64(3), api.UpdateComplaintRequest{
		Status:        domain.ComplaintResolved,
		AdminResponse: "refund issued",
	}).Return(resolved, nil)

	got, err := svc.Moderate(context.Background(), 3, domain.ComplaintResolved, "refund issued")

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintResolved, got.Status)
}

func TestService_Moderate_UnknownStatus(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	_, err := svc.Moderate(context.Background(), 3, "ESCALATED", "")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockAPI.AssertNotCalled(t, "UpdateComplaint", mock.Anything, mock.Anything, mock.Anything)
}

func TestPoller_DeliversRefreshes(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	mockAPI.On("ListComplaints", mock.Anything).Return([]domain.Complaint{{ID: 1}}, nil)

	var mu sync.Mutex
	updates := 0
	poller := NewPoller(svc, 10*time.Millisecond, func(cs []domain.Complaint) {
		mu.Lock()
		updates++
		mu.Unlock()
	}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	poller.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Greater(t, updates, 0)
}

func TestPoller_SurvivesFailedRefresh(t *testing.T) {
	mockAPI := new(MockComplaintAPI)
	svc := NewService(mockAPI, zap.NewNop())

	mockAPI.On("ListComplaints", mock.Anything).Return(nil, assert.AnError)

	delivered := false
	poller := NewPoller(svc, 10*time.Millisecond, func([]domain.Complaint) {
		delivered = true
	}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	poller.Run(ctx)

	assert.False(t, delivered)
}
