package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 0)

	pending, err := h.leaveService.ListPending(r.Context(), limit)
	if err != nil {
		slog.Error("ListPendingLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("SubmitLeave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("SubmitLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// decisionTarget reads the {employeeID}/{date} pair that identifies a request.
func decisionTarget(r *http.Request) (int, string, error) {
	employeeID, err := intURLParam(r, "employeeID")
	if err != nil {
		return 0, "", err
	}
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		return 0, "", validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return employeeID, date, nil
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	employeeID, date, err := decisionTarget(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.leaveService.Approve(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("ApproveLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", approved)
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	employeeID, date, err := decisionTarget(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.leaveService.Reject(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("RejectLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}
