package service

import (
	"context"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/pkg/latency"
)

const entityProduct = "product"

type ProductService interface {
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.Product], error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req *model.Product) (*model.Product, error)
	Update(ctx context.Context, id int64, req *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	Options(ctx context.Context) ([]model.Option, error)
}

type productService struct {
	catalog *Catalog
	rt      Runtime
}

func NewProductService(catalog *Catalog, rt Runtime) ProductService {
	return &productService{catalog: catalog, rt: rt}
}

func productFields(p model.Product) []string {
	return []string{p.Name, p.Code}
}

func (s *productService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.Product], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Products.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.Product]{}, err
	}
	return query.Page(rows, params, productFields), nil
}

func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	p, err := s.catalog.Products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityProduct, id)
	}
	return p, nil
}

// Create adds a product with no stock. Reference names are copied from the catalog.
func (s *productService) Create(ctx context.Context, req *model.Product) (*model.Product, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	req.ID = 0
	req.Stock = 0
	if req.Images == nil {
		req.Images = []string{}
	}
	if err := resolveProductNames(ctx, s.catalog, req); err != nil {
		return nil, err
	}
	req.Stamp(s.rt.now())
	if err := s.catalog.Products.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityProduct, req.ID, req.Name)
	return req, nil
}

// Update replaces the product. Stock is never taken from the payload, and a
// payload without images keeps the stored ones.
func (s *productService) Update(ctx context.Context, id int64, req *model.Product) (*model.Product, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	existing, err := s.catalog.Products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityProduct, id)
	}

	req.ID = existing.ID
	req.CreateTime = existing.CreateTime
	req.Stock = existing.Stock
	if req.Images == nil {
		req.Images = existing.Images
	}
	if err := resolveProductNames(ctx, s.catalog, req); err != nil {
		return nil, err
	}
	req.Touch(s.rt.now())
	if err := s.catalog.Products.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entityProduct, req.ID, req.Name)
	return req, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	defer s.catalog.lock()()

	existing, err := s.catalog.Products.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityProduct, id)
	}
	if err := s.catalog.Products.Delete(ctx, id); err != nil {
		return notFound(err, entityProduct, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityProduct, id, existing.Name)
	return nil
}

// Options lists products with their sale price for the sales order form
func (s *productService) Options(ctx context.Context) ([]model.Option, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]model.Option, 0, len(rows))
	for _, p := range rows {
		options = append(options, model.Option{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return options, nil
}
