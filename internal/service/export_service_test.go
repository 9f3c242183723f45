package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTables(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		resource string
		keyword  string
		rows     int
		first    []string
	}{
		{"customers", "", 3, []string{"1", "华为技术有限公司"}},
		{"customers", "小米", 1, []string{"2", "小米科技"}},
		{"products", "", 3, []string{"1", "P001", "无线静音鼠标"}},
		{"purchase-orders", "", 3, []string{"1", "PO-20231001-001", "联想供应商", "50000.00", "approved"}},
		{"sales-orders", "", 1, []string{"SO-20231027-001", "华为技术有限公司", "2023-10-27", "Approved", "1", "10000.00"}},
		{"products", "nothing matches", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.resource+"/"+tt.keyword, func(t *testing.T) {
			table, err := e.export.Table(ctx, tt.resource, tt.keyword)
			require.NoError(t, err)
			require.Len(t, table.Rows, tt.rows)
			for _, row := range table.Rows {
				assert.Len(t, row, len(table.Headers))
			}
			if tt.first != nil {
				assert.Equal(t, tt.first, table.Rows[0][:len(tt.first)])
			}
		})
	}
}

func TestExportProductCells(t *testing.T) {
	e := newEnv(t)

	table, err := e.export.Table(context.Background(), "products", "P003")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{
		"3", "P003", "27寸 4K 显示器", "显示器", "台", "成品仓库", "C01-01", "1999.00", "1200.00", "10",
	}, table.Rows[0])
}

func TestExportUnknownResource(t *testing.T) {
	e := newEnv(t)

	_, err := e.export.Table(context.Background(), "users", "")
	assert.ErrorIs(t, err, ErrUnknownResource)
}
