package service

import (
	"context"
	"sync"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/internal/repository"
	"go-erp-admin/internal/workflow"
	"go-erp-admin/pkg/latency"
)

const entityPurchaseOrder = "purchase order"

// PurchaseFlow is Draft -> Pending -> Approved. Rejected has no way in.
var PurchaseFlow = workflow.New(
	workflow.Rule[model.PurchaseStatus]{From: model.PurchaseDraft, Action: workflow.Submit, To: model.PurchasePending},
	workflow.Rule[model.PurchaseStatus]{From: model.PurchasePending, Action: workflow.Approve, To: model.PurchaseApproved},
)

type PurchaseService interface {
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.PurchaseOrder], error)
	Get(ctx context.Context, id int64) (*model.PurchaseOrder, error)
	Create(ctx context.Context, req *model.PurchaseOrderRequest) (*model.PurchaseOrder, error)
	Submit(ctx context.Context, id int64) (*model.PurchaseOrder, error)
	Approve(ctx context.Context, id int64) (*model.PurchaseOrder, error)
}

type purchaseService struct {
	mu   sync.Mutex
	repo repository.PurchaseRepository
	seq  *Sequence
	rt   Runtime
}

func NewPurchaseService(repo repository.PurchaseRepository, rt Runtime) PurchaseService {
	return &purchaseService{repo: repo, seq: NewSequence("PO"), rt: rt}
}

func (s *purchaseService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.PurchaseOrder], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.PurchaseOrder]{}, err
	}
	return query.Page(rows, params, func(o model.PurchaseOrder) []string { return []string{o.OrderNo, o.Supplier} }), nil
}

func (s *purchaseService) Get(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityPurchaseOrder, id)
	}
	return o, nil
}

// Create adds a draft order at the top of the list with a fresh order number
func (s *purchaseService) Create(ctx context.Context, req *model.PurchaseOrderRequest) (*model.PurchaseOrder, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.rt.now()
	orderNo, err := s.seq.nextFree(ctx, now, s.repo.ExistsOrderNo)
	if err != nil {
		return nil, err
	}

	order := &model.PurchaseOrder{
		OrderNo:    orderNo,
		Supplier:   req.Supplier,
		Amount:     req.Amount,
		Status:     model.PurchaseDraft,
		CreateDate: now.Format(model.DateLayout),
	}
	order.Stamp(now)
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityPurchaseOrder, order.ID, order.OrderNo)
	return order, nil
}

func (s *purchaseService) Submit(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	return s.transition(ctx, id, workflow.Submit, ActionSubmitted)
}

func (s *purchaseService) Approve(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	return s.transition(ctx, id, workflow.Approve, ActionApproved)
}

func (s *purchaseService) transition(ctx context.Context, id int64, action workflow.Action, event string) (*model.PurchaseOrder, error) {
	ctx = s.rt.wait(ctx, latency.Transition)

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityPurchaseOrder, id)
	}

	next, err := PurchaseFlow.Next(order.Status, action)
	if err != nil {
		return nil, err
	}
	order.Status = next
	order.Touch(s.rt.now())
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, event, entityPurchaseOrder, order.ID, order.OrderNo)
	return order, nil
}
