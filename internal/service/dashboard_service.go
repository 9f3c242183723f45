package service

import (
	"context"

	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/latency"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	rt   Runtime
}

func NewDashboardService(repo repository.DashboardRepository, rt Runtime) DashboardService {
	return &dashboardService{repo: repo, rt: rt}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	ctx = s.rt.wait(ctx, latency.Read)
	return s.repo.GetDashboardStats(ctx)
}
