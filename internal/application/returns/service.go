package returns

import (
	"context"
	"time"

	"github.com/ecom/backend/internal/domain/returns"
	"go.uber.org/zap"
)

// SubmitRequest is the payload for requesting a return
type SubmitRequest struct {
	OrderItemID int64  `json:"order_item_id" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"required,min=1,max=500"`
}

// RequestResponse is a return request in API responses
type RequestResponse struct {
	ID          int64     `json:"id"`
	OrderItemID int64     `json:"order_item_id"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"request_date"`
}

// Service handles return requests
type Service struct {
	repo   returns.Repository
	logger *zap.Logger
}

// NewService creates a new returns service
func NewService(repo returns.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit files a return request for an order item. The refund target
// payment is resolved from the item's order, never taken from the
// caller.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*RequestResponse, error) {
	paymentID, err := s.repo.ResolvePayment(ctx, req.OrderItemID)
	if err != nil {
		return nil, err
	}

	request := returns.NewRequest(req.OrderItemID, paymentID, req.Reason)
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("return request filed",
		zap.Int64("return_id", request.ID),
		zap.Int64("order_item_id", req.OrderItemID))
	return toRequestResponse(request), nil
}

// List returns the customer's return requests, newest first
func (s *Service) List(ctx context.Context, customerID int64) ([]*RequestResponse, error) {
	requests, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toRequestResponse(&requests[i]))
	}
	return out, nil
}

func toRequestResponse(r *returns.Request) *RequestResponse {
	return &RequestResponse{
		ID:          r.ID,
		OrderItemID: r.OrderItemID,
		Reason:      r.Reason,
		Status:      string(r.Status),
		RequestDate: r.RequestDate,
	}
}
