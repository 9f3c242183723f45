package service

import (
	"context"
	"fmt"
	"strconv"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/latency"
	"go-erp-admin/pkg/validator"

	"github.com/pkg/errors"
)

const entityCategory = "category"

type CategoryService interface {
	// List filters by parentID first when it is given, then by keyword
	List(ctx context.Context, params model.ListParams, parentID *int64) (model.PageResult[model.Category], error)
	All(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, req *model.Category) (*model.Category, error)
	Update(ctx context.Context, id int64, req *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	catalog *Catalog
	rt      Runtime
}

func NewCategoryService(catalog *Catalog, rt Runtime) CategoryService {
	return &categoryService{catalog: catalog, rt: rt}
}

func (s *categoryService) List(ctx context.Context, params model.ListParams, parentID *int64) (model.PageResult[model.Category], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Categories.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.Category]{}, err
	}
	if parentID != nil {
		rows = query.Filter(rows, func(c model.Category) bool { return c.ParentID == *parentID })
	}
	return query.Page(rows, params, func(c model.Category) []string { return []string{c.Name} }), nil
}

func (s *categoryService) All(ctx context.Context) ([]model.Category, error) {
	ctx = s.rt.wait(ctx, latency.Read)
	return s.catalog.Categories.FindAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	c, err := s.catalog.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityCategory, id)
	}
	return c, nil
}

func (s *categoryService) Create(ctx context.Context, req *model.Category) (*model.Category, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	req.ID = 0
	req.Stamp(s.rt.now())
	if err := s.catalog.Categories.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityCategory, req.ID, req.Name)
	return req, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req *model.Category) (*model.Category, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.ParentID == id {
		return nil, &ValidationError{Fields: []*validator.ErrorResponse{
			{FailedField: "parentId", Tag: "ne", Value: "id"},
		}}
	}

	defer s.catalog.lock()()

	existing, err := s.catalog.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityCategory, id)
	}
	cycle, err := s.isDescendant(ctx, req.ParentID, id)
	if err != nil {
		return nil, err
	}
	if cycle {
		return nil, &ValidationError{Fields: []*validator.ErrorResponse{
			{FailedField: "parentId", Tag: "nocycle", Value: strconv.FormatInt(req.ParentID, 10)},
		}}
	}

	req.ID = existing.ID
	req.CreateTime = existing.CreateTime
	req.Touch(s.rt.now())
	if err := s.catalog.Categories.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entityCategory, req.ID, req.Name)
	return req, nil
}

// isDescendant walks up from category id and reports whether ancestor is on
// the way to a root. A missing parent ends the walk.
func (s *categoryService) isDescendant(ctx context.Context, id, ancestor int64) (bool, error) {
	seen := make(map[int64]bool)
	for id != 0 && !seen[id] {
		if id == ancestor {
			return true, nil
		}
		seen[id] = true
		c, err := s.catalog.Categories.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		id = c.ParentID
	}
	return false, nil
}

// Delete refuses categories that still have children or products
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	defer s.catalog.lock()()

	existing, err := s.catalog.Categories.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityCategory, id)
	}

	children, err := s.catalog.Categories.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return &GuardError{Entity: entityCategory, ID: id,
			Reason: fmt.Sprintf("category '%s' has %d child categories and cannot be deleted", existing.Name, children)}
	}

	products, err := s.catalog.Products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return &GuardError{Entity: entityCategory, ID: id,
			Reason: fmt.Sprintf("category '%s' has %d products and cannot be deleted", existing.Name, products)}
	}

	if err := s.catalog.Categories.Delete(ctx, id); err != nil {
		return notFound(err, entityCategory, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityCategory, id, existing.Name)
	return nil
}
