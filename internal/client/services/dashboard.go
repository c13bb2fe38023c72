package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vltrn/datav/internal/client/client"
	"github.com/vltrn/datav/internal/client/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Health(ctx context.Context) (*models.Health, error)
}

type dashboardService struct {
	client  client.Client
	variant Variant
}

func NewDashboardService(c client.Client, v Variant) DashboardService {
	return &dashboardService{client: c, variant: v}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	raw, err := s.client.Request(ctx, client.Request{Path: s.variant.path("/dashboard/stats"), Method: http.MethodGet})
	if err != nil {
		return nil, fmt.Errorf("dashboard stats error: %w", err)
	}

	st, err := decode[models.DashboardStats](raw, "dashboard stats")
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Health needs no session; the backend answers it unauthenticated.
func (s *dashboardService) Health(ctx context.Context) (*models.Health, error) {
	raw, err := s.client.Request(ctx, client.Request{Path: s.variant.path(healthPath), Method: http.MethodGet})
	if err != nil {
		return nil, fmt.Errorf("health check error: %w", err)
	}

	h, err := decode[models.Health](raw, "health")
	if err != nil {
		return nil, err
	}
	return &h, nil
}
