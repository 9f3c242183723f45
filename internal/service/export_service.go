package service

import (
	"context"
	"strconv"

	"go-erp-admin/internal/model"

	"github.com/pkg/errors"
)

var ErrUnknownResource = errors.New("unknown export resource")

// Table is a list rendered as text cells, ready for CSV or a spreadsheet
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

type ExportService interface {
	// Table renders every record of resource matching keyword
	Table(ctx context.Context, resource, keyword string) (*Table, error)
}

type exportService struct {
	customers CustomerService
	products  ProductService
	purchases PurchaseService
	sales     SalesService
}

func NewExportService(customers CustomerService, products ProductService, purchases PurchaseService, sales SalesService) ExportService {
	return &exportService{customers: customers, products: products, purchases: purchases, sales: sales}
}

func (s *exportService) Table(ctx context.Context, resource, keyword string) (*Table, error) {
	params := model.ListParams{Keyword: keyword}

	switch resource {
	case "customers":
		page, err := s.customers.List(ctx, params)
		if err != nil {
			return nil, err
		}
		t := &Table{Name: "customers", Headers: []string{"ID", "Name", "Contact", "Phone", "Email", "Address", "Level"}}
		for _, c := range page.List {
			t.Rows = append(t.Rows, []string{formatID(c.ID), c.Name, c.Contact, c.Phone, c.Email, c.Address, c.Level})
		}
		return t, nil

	case "products":
		page, err := s.products.List(ctx, params)
		if err != nil {
			return nil, err
		}
		t := &Table{Name: "products", Headers: []string{"ID", "Code", "Name", "Category", "Unit", "Warehouse", "Location", "Price", "Purchase Price", "Stock"}}
		for _, p := range page.List {
			t.Rows = append(t.Rows, []string{
				formatID(p.ID), p.Code, p.Name, p.CategoryName, p.UnitName, p.DefaultWarehouseName, p.DefaultLocationName,
				money(p.Price), money(p.PurchasePrice), quantity(p.Stock),
			})
		}
		return t, nil

	case "purchase-orders":
		page, err := s.purchases.List(ctx, params)
		if err != nil {
			return nil, err
		}
		t := &Table{Name: "purchase orders", Headers: []string{"ID", "Order No", "Supplier", "Amount", "Status", "Create Date"}}
		for _, o := range page.List {
			t.Rows = append(t.Rows, []string{formatID(o.ID), o.OrderNo, o.Supplier, money(o.Amount), o.Status.String(), o.CreateDate})
		}
		return t, nil

	case "sales-orders":
		page, err := s.sales.List(ctx, params)
		if err != nil {
			return nil, err
		}
		t := &Table{Name: "sales orders", Headers: []string{"ID", "Customer", "Date", "Status", "Items", "Total Amount"}}
		for _, o := range page.List {
			t.Rows = append(t.Rows, []string{o.ID, o.CustomerName, o.Date, string(o.Status), strconv.Itoa(len(o.Items)), money(o.TotalAmount)})
		}
		return t, nil
	}
	return nil, errors.Wrapf(ErrUnknownResource, "%q", resource)
}

func formatID(n int64) string { return strconv.FormatInt(n, 10) }

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func quantity(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
