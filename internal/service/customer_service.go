package service

import (
	"context"
	"sync"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/latency"
)

const entityCustomer = "customer"

type CustomerService interface {
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.Customer], error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, req *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id int64, req *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	Options(ctx context.Context) ([]model.Option, error)
}

type customerService struct {
	mu   sync.Mutex
	repo repository.CustomerRepository
	rt   Runtime
}

func NewCustomerService(repo repository.CustomerRepository, rt Runtime) CustomerService {
	return &customerService{repo: repo, rt: rt}
}

func customerFields(c model.Customer) []string {
	return []string{c.Name, c.Contact}
}

func (s *customerService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.Customer], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.Customer]{}, err
	}
	return query.Page(rows, params, customerFields), nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityCustomer, id)
	}
	return c, nil
}

// Create adds the customer at the top of the list
func (s *customerService) Create(ctx context.Context, req *model.Customer) (*model.Customer, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = 0
	req.Stamp(s.rt.now())
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityCustomer, req.ID, req.Name)
	return req, nil
}

// Update replaces every field of the customer, keeping its create time and place in the list
func (s *customerService) Update(ctx context.Context, id int64, req *model.Customer) (*model.Customer, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityCustomer, id)
	}

	req.ID = existing.ID
	req.Position = existing.Position
	req.CreateTime = existing.CreateTime
	req.Touch(s.rt.now())
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entityCustomer, req.ID, req.Name)
	return req, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityCustomer, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, entityCustomer, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityCustomer, id, existing.Name)
	return nil
}

// Options lists every customer as an id/name pair for the sales order form
func (s *customerService) Options(ctx context.Context) ([]model.Option, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]model.Option, 0, len(rows))
	for _, c := range rows {
		options = append(options, model.Option{ID: c.ID, Name: c.Name})
	}
	return options, nil
}
