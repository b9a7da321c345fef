package admin

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"weddify/api"
	"weddify/models"

	"go.uber.org/zap"
)

// Record is one generic resource row; the CRUD admin framework renders
// these without knowing their shape.
type Record map[string]any

// ListResult is a page of records plus the total for pagination.
type ListResult struct {
	Data  []Record `json:"data"`
	Total int      `json:"total"`
}

// DataProvider maps the admin framework's generic operations onto the
// role-scoped REST resources. All list calls use the canonical
// page/limit pagination.
type DataProvider struct {
	API    *api.Client
	Role   models.Role
	Logger *zap.Logger
}

func NewDataProvider(client *api.Client, role models.Role, logger *zap.Logger) (*DataProvider, error) {
	switch role {
	case models.RoleAdmin, models.RoleEventPlanner:
	default:
		return nil, fmt.Errorf("role %s has no admin data provider", role)
	}
	return &DataProvider{API: client, Role: role, Logger: logger}, nil
}

func (p *DataProvider) resourcePath(resource string) string {
	return p.Role.PathPrefix() + "/" + strings.Trim(resource, "/")
}

type listEnvelope struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

// GetList fetches one page of a resource.
func (p *DataProvider) GetList(ctx context.Context, resource string, params api.ListParams) (ListResult, error) {
	var env listEnvelope
	if err := p.API.Get(ctx, p.resourcePath(resource), params.Query(), &env); err != nil {
		return ListResult{}, err
	}
	return ListResult{Data: env.Items, Total: env.Total}, nil
}

func (p *DataProvider) GetOne(ctx context.Context, resource, id string) (Record, error) {
	var rec Record
	err := p.API.Get(ctx, p.resourcePath(resource)+"/"+id, nil, &rec)
	return rec, err
}

// GetMany fetches a set of records by id in one call.
func (p *DataProvider) GetMany(ctx context.Context, resource string, ids []string) ([]Record, error) {
	q := url.Values{}
	for _, id := range ids {
		q.Add("id", id)
	}
	var recs []Record
	err := p.API.Get(ctx, p.resourcePath(resource), q, &recs)
	return recs, err
}

func (p *DataProvider) Create(ctx context.Context, resource string, data Record) (Record, error) {
	var rec Record
	if err := p.API.Post(ctx, p.resourcePath(resource), data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (p *DataProvider) Update(ctx context.Context, resource, id string, data Record) (Record, error) {
	var rec Record
	if err := p.API.Put(ctx, p.resourcePath(resource)+"/"+id, data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (p *DataProvider) Delete(ctx context.Context, resource, id string) error {
	return p.API.Delete(ctx, p.resourcePath(resource)+"/"+id)
}

// DeleteMany removes records one by one; the backend has no batch
// delete endpoint.
func (p *DataProvider) DeleteMany(ctx context.Context, resource string, ids []string) error {
	for _, id := range ids {
		if err := p.Delete(ctx, resource, id); err != nil {
			return err
		}
	}
	return nil
}
