package slot

import (
	"context"
	"errors"
	"testing"

	"tutorbook/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotRepo struct{ mock.Mock }

func (m *MockSlotRepo) ListSlots(ctx context.Context) ([]TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockSlotRepo) SetAvailability(ctx context.Context, time string, available bool) (int64, error) {
	args := m.Called(ctx, time, available)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotRepo) SetAvailabilityChecked(ctx context.Context, time string, available bool) (int64, error) {
	args := m.Called(ctx, time, available)
	return args.Get(0).(int64), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestService_ListSlots(t *testing.T) {
	repo := new(MockSlotRepo)
	repo.On("ListSlots", mock.Anything).Return([]TimeSlot{{ID: 1, Time: "10:00", Available: true}}, nil)

	svc := NewService(repo, Options{})
	slots, err := svc.ListSlots(context.Background())

	require.NoError(t, err)
	assert.Len(t, slots, 1)
	repo.AssertExpectations(t)
}

func TestService_ListSlots_DatastoreError(t *testing.T) {
	repo := new(MockSlotRepo)
	repo.On("ListSlots", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	svc := NewService(repo, Options{})
	_, err := svc.ListSlots(context.Background())

	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindDatastore))
	assert.Equal(t, "dial tcp: connection refused", err.Error())
}

func TestService_SetSlotAvailability(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		req        SetAvailabilityRequest
		setupMocks func(*MockSlotRepo)
		wantKind   api.Kind
	}{
		{
			name: "false is a valid value",
			req:  SetAvailabilityRequest{Time: "10:00", Available: boolPtr(false)},
			setupMocks: func(r *MockSlotRepo) {
				r.On("SetAvailability", mock.Anything, "10:00", false).Return(int64(1), nil)
			},
		},
		{
			name: "unknown time is a silent no-op",
			req:  SetAvailabilityRequest{Time: "09:00", Available: boolPtr(true)},
			setupMocks: func(r *MockSlotRepo) {
				r.On("SetAvailability", mock.Anything, "09:00", true).Return(int64(0), nil)
			},
		},
		{
			name:       "missing available",
			req:        SetAvailabilityRequest{Time: "10:00"},
			setupMocks: func(r *MockSlotRepo) {},
			wantKind:   api.KindValidation,
		},
		{
			name:       "missing time",
			req:        SetAvailabilityRequest{Available: boolPtr(true)},
			setupMocks: func(r *MockSlotRepo) {},
			wantKind:   api.KindValidation,
		},
		{
			name: "datastore failure",
			req:  SetAvailabilityRequest{Time: "10:00", Available: boolPtr(true)},
			setupMocks: func(r *MockSlotRepo) {
				r.On("SetAvailability", mock.Anything, "10:00", true).Return(int64(0), errors.New("deadlock detected"))
			},
			wantKind: api.KindDatastore,
		},
		{
			name: "exclusive policy uses checked update",
			opts: Options{ExclusiveSlots: true},
			req:  SetAvailabilityRequest{Time: "10:00", Available: boolPtr(false)},
			setupMocks: func(r *MockSlotRepo) {
				r.On("SetAvailabilityChecked", mock.Anything, "10:00", false).Return(int64(1), nil)
			},
		},
		{
			name: "exclusive policy refuses to reopen held slot",
			opts: Options{ExclusiveSlots: true},
			req:  SetAvailabilityRequest{Time: "10:00", Available: boolPtr(true)},
			setupMocks: func(r *MockSlotRepo) {
				r.On("SetAvailabilityChecked", mock.Anything, "10:00", true).Return(int64(0), ErrSlotHeld)
			},
			wantKind: api.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSlotRepo)
			tt.setupMocks(repo)

			svc := NewService(repo, tt.opts)
			err := svc.SetSlotAvailability(context.Background(), tt.req)

			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.True(t, api.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
