package service

import (
	"context"
	"sync"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/internal/repository"
	"go-erp-admin/internal/workflow"
	"go-erp-admin/pkg/latency"

	"github.com/pkg/errors"
)

const entitySalesOrder = "sales order"

// SalesFlow is Draft -> Pending. Approved and Rejected only come from seeded data.
var SalesFlow = workflow.New(
	workflow.Rule[model.SalesStatus]{From: model.SalesDraft, Action: workflow.Submit, To: model.SalesPending},
)

type SalesService interface {
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.SalesOrder], error)
	Get(ctx context.Context, id string) (*model.SalesOrder, error)
	// Save creates the order when req has no id and replaces the stored order otherwise
	Save(ctx context.Context, req *model.SalesOrder) (*model.SalesOrder, error)
	Submit(ctx context.Context, id string) (*model.SalesOrder, error)
}

type salesService struct {
	mu        sync.Mutex
	repo      repository.SalesRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	seq       *Sequence
	rt        Runtime
}

func NewSalesService(
	repo repository.SalesRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	rt Runtime,
) SalesService {
	return &salesService{
		repo:      repo,
		customers: customers,
		products:  products,
		seq:       NewSequence("SO"),
		rt:        rt,
	}
}

func (s *salesService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.SalesOrder], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.SalesOrder]{}, err
	}
	return query.Page(rows, params, func(o model.SalesOrder) []string { return []string{o.ID, o.CustomerName} }), nil
}

func (s *salesService) Get(ctx context.Context, id string) (*model.SalesOrder, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entitySalesOrder, id)
	}
	return o, nil
}

func (s *salesService) Save(ctx context.Context, req *model.SalesOrder) (*model.SalesOrder, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fill(ctx, req); err != nil {
		return nil, err
	}
	now := s.rt.now()

	if req.ID == "" {
		id, err := s.seq.nextFree(ctx, now, s.exists)
		if err != nil {
			return nil, err
		}
		req.ID = id
		req.Status = model.SalesDraft
		if req.Date == "" {
			req.Date = now.Format(model.DateLayout)
		}
		req.Stamp(now)
		if err := s.repo.Create(ctx, req); err != nil {
			return nil, err
		}
		s.rt.publish(ctx, ActionCreated, entitySalesOrder, req.ID, req.CustomerName)
		return req, nil
	}

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, notFound(err, entitySalesOrder, req.ID)
	}
	req.Status = existing.Status
	req.Position = existing.Position
	req.CreateTime = existing.CreateTime
	if req.Date == "" {
		req.Date = existing.Date
	}
	req.Touch(now)
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entitySalesOrder, req.ID, req.CustomerName)
	return req, nil
}

func (s *salesService) Submit(ctx context.Context, id string) (*model.SalesOrder, error) {
	ctx = s.rt.wait(ctx, latency.Transition)

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entitySalesOrder, id)
	}

	next, err := SalesFlow.Next(order.Status, workflow.Submit)
	if err != nil {
		return nil, err
	}
	order.Status = next
	order.Touch(s.rt.now())
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionSubmitted, entitySalesOrder, order.ID, order.CustomerName)
	return order, nil
}

// fill recomputes line totals and the order total, and looks up the
// customer and product names the payload left empty
func (s *salesService) fill(ctx context.Context, order *model.SalesOrder) error {
	if order.CustomerName == "" {
		c, err := s.customers.FindByID(ctx, order.CustomerID)
		switch {
		case err == nil:
			order.CustomerName = c.Name
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
	}

	order.TotalAmount = 0
	for i := range order.Items {
		item := &order.Items[i]
		if item.ProductName == "" {
			p, err := s.products.FindByID(ctx, item.ProductID)
			switch {
			case err == nil:
				item.ProductName = p.Name
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}
		}
		item.Total = item.Price * item.Quantity
		order.TotalAmount += item.Total
	}
	return nil
}

func (s *salesService) exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
