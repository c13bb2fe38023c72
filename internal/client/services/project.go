package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vltrn/datav/internal/client/client"
	"github.com/vltrn/datav/internal/client/models"
)

type ProjectService interface {
	Create(ctx context.Context, name, description string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	client  client.Client
	variant Variant
}

func NewProjectService(c client.Client, v Variant) ProjectService {
	return &projectService{client: c, variant: v}
}

func (s *projectService) Create(ctx context.Context, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	raw, err := s.client.Request(ctx, client.Request{
		Path:   s.variant.path("/projects"),
		Method: http.MethodPost,
		Body:   models.CreateProjectRequest{Name: name, Description: description},
	})
	if err != nil {
		return nil, fmt.Errorf("create project error: %w", err)
	}

	p, err := decode[models.Project](raw, "project")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	raw, err := s.client.Request(ctx, client.Request{Path: s.variant.path("/projects"), Method: http.MethodGet})
	if err != nil {
		return nil, fmt.Errorf("list projects error: %w", err)
	}

	list, err := decode[[]models.Project](raw, "project list")
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Project{}
	}
	return list, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	raw, err := s.client.Request(ctx, client.Request{
		Path:   s.variant.path("/projects/" + segment(id)),
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, fmt.Errorf("get project error: %w", err)
	}

	p, err := decode[models.Project](raw, "project")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Request(ctx, client.Request{
		Path:   s.variant.path("/projects/" + segment(id)),
		Method: http.MethodDelete,
	})
	if err != nil {
		return fmt.Errorf("delete project error: %w", err)
	}
	return nil
}
