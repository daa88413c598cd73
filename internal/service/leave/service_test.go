package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/dataset"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
	"github.com/worksphere/worksphere-backend-go/internal/repository/memory"
)

var today = time.Date(2025, 7, 29, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (leave.LeaveService, *sse.Hub) {
	t.Helper()
	snap, err := dataset.Embedded()
	require.NoError(t, err)
	w := memory.NewWorkforce(snap)
	hub := sse.NewHub()
	return NewLeaveService(memory.NewLeaveRepository(w), memory.NewEmployeeRepository(w), hub), hub
}

func TestApprove(t *testing.T) {
	svc, hub := newTestService(t)
	ctx := context.Background()
	events, cancel := hub.Subscribe("employee")
	defer cancel()

	got, err := svc.Approve(ctx, 1, "2024-12-01")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, "Sibongile Nkosi", got.EmployeeName)

	select {
	case e := <-events:
		assert.Equal(t, leave.EventUpdated, e.Name)
	case <-time.After(time.Second):
		t.Fatal("no leave.updated event")
	}

	_, err = svc.Approve(ctx, 1, "2024-12-01")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	_, err = svc.Reject(ctx, 1, "2024-12-01")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestReject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.Reject(ctx, 3, "2024-12-05")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusDenied, got.Status)

	_, err = svc.Approve(ctx, 3, "2024-12-05")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Approve(ctx, 1, "1999-01-01")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	_, err = svc.Reject(ctx, 404, "2024-12-01")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecide_ConcurrentApproveAndReject(t *testing.T) {
	svc, hub := newTestService(t)
	ctx := context.Background()
	events, cancel := hub.Subscribe("admin")
	defer cancel()

	var (
		wg         sync.WaitGroup
		approveErr error
		rejectErr  error
	)
	start := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		_, approveErr = svc.Approve(ctx, 1, "2024-12-01")
	}()
	go func() {
		defer wg.Done()
		<-start
		_, rejectErr = svc.Reject(ctx, 1, "2024-12-01")
	}()
	close(start)
	wg.Wait()

	if approveErr == nil {
		assert.ErrorIs(t, rejectErr, leave.ErrLeaveRequestAlreadyProcessed)
	} else {
		assert.ErrorIs(t, approveErr, leave.ErrLeaveRequestAlreadyProcessed)
		assert.NoError(t, rejectErr)
	}

	assert.Len(t, events, 1, "only the winning decision is published")
}

func TestSubmitRange_OverlapFilesNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 3, Date: "2025-08-03", LeaveType: "sick", Reason: "flu"})
	require.NoError(t, err)

	_, err = svc.SubmitRange(ctx, 3, leave.RangeLeaveRequest{
		LeaveType: "vacation", StartDate: "2025-08-01", EndDate: "2025-08-05", Reason: "trip",
	}, today)
	assert.ErrorIs(t, err, leave.ErrDuplicateLeaveDate)

	all, err := svc.ListByEmployee(ctx, 3)
	require.NoError(t, err)
	for _, r := range all {
		assert.NotEqual(t, "2025-08-01", r.Date)
		assert.NotEqual(t, "2025-08-05", r.Date)
	}
}

func TestSubmit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 4, Date: "2025-08-04", LeaveType: "sick", Reason: "flu"})
	require.NoError(t, err)
	assert.Equal(t, "Sick Leave", got.Reason)
	assert.Equal(t, leave.StatusPending, got.Status)

	_, err = svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 4, Date: "2025-08-04", LeaveType: "vacation", Reason: "beach"})
	assert.ErrorIs(t, err, leave.ErrDuplicateLeaveDate)

	_, err = svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 404, Date: "2025-08-04", LeaveType: "sick", Reason: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 4, Date: "04/08/2025", LeaveType: "sick", Reason: "x"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestSubmitRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.SubmitRange(ctx, 3, leave.RangeLeaveRequest{
		LeaveType: "vacation", StartDate: "2025-08-01", EndDate: "2025-08-03", Reason: "family trip",
	}, today)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
	require.Len(t, resp.Requests, 3)
	assert.Equal(t, "2025-08-03", resp.Requests[2].Date)
	assert.Equal(t, "Vacation Leave", resp.Requests[0].Reason)

	all, err := svc.ListByEmployee(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSubmitRange_SingleDayStartingToday(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.SubmitRange(context.Background(), 3, leave.RangeLeaveRequest{
		LeaveType: "personal", StartDate: "2025-07-29", EndDate: "2025-07-29", Reason: "errand",
	}, today)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestSubmitRange_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     leave.RangeLeaveRequest
		wantErr error
	}{
		{"end before start", leave.RangeLeaveRequest{LeaveType: "sick", StartDate: "2025-08-05", EndDate: "2025-08-01", Reason: "x"}, leave.ErrDateOrder},
		{"start in past", leave.RangeLeaveRequest{LeaveType: "sick", StartDate: "2025-07-28", EndDate: "2025-08-01", Reason: "x"}, leave.ErrStartDateInPast},
		{"overlaps existing", leave.RangeLeaveRequest{LeaveType: "sick", StartDate: "2025-07-29", EndDate: "2025-07-29", Reason: "x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 3, Date: "2025-07-29", LeaveType: "sick", Reason: "x"})
				require.NoError(t, err)
				tt.wantErr = leave.ErrDuplicateLeaveDate
			}

			_, err := svc.SubmitRange(ctx, 3, tt.req, today)
			assert.ErrorIs(t, err, tt.wantErr)

			all, err := svc.ListByEmployee(ctx, 3)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(all), 3, "nothing filed on rejection")
		})
	}
}

func TestListPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListPending(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	preview, err := svc.ListPending(ctx, 3)
	require.NoError(t, err)
	require.Len(t, preview, 3)
	assert.Equal(t, 1, preview[0].EmployeeID)
	assert.Equal(t, 3, preview[1].EmployeeID)
	assert.Equal(t, 5, preview[2].EmployeeID)
}

func TestReasonLabel(t *testing.T) {
	assert.Equal(t, "Sick Leave", leave.ReasonLabel("sick"))
	assert.Equal(t, "Maternity leave", leave.ReasonLabel("maternity leave"))
	assert.Equal(t, "", leave.ReasonLabel("  "))
}
