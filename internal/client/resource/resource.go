// Package resource exposes the admin API entities through one generic CRUD
// contract.
package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/galeria/admin-api/internal/client/apiclient"
)

// Endpoint describes how one entity kind maps onto the API.
type Endpoint[F any] struct {
	// Path is the collection path, e.g. "/activities".
	Path string
	// Single and Plural are the response envelope keys.
	Single string
	Plural string
	// CreatePath overrides Path for create calls.
	CreatePath string
	// CreateBody and UpdateBody shape the request payload. Nil means F is sent as JSON.
	CreateBody func(F) (any, apiclient.ContentKind, error)
	UpdateBody func(F) (any, error)
}

// Resource is list/get/create/update/delete over one entity kind T with
// input fields F.
type Resource[T any, F any] struct {
	client *apiclient.Client
	ep     Endpoint[F]
}

// New returns a Resource for ep.
func New[T any, F any](client *apiclient.Client, ep Endpoint[F]) *Resource[T, F] {
	return &Resource[T, F]{client: client, ep: ep}
}

func (r *Resource[T, F]) List(ctx context.Context) ([]*T, error) {
	return r.list(ctx, nil)
}

func (r *Resource[T, F]) list(ctx context.Context, query url.Values) ([]*T, error) {
	var items []*T
	if err := r.do(ctx, apiclient.Request{Path: r.ep.Path, Query: query}, r.ep.Plural, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

func (r *Resource[T, F]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.do(ctx, apiclient.Request{Path: r.itemPath(id)}, r.ep.Single, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T, F]) Create(ctx context.Context, fields F) (*T, error) {
	var (
		body any = fields
		kind     = apiclient.ContentJSON
		err  error
	)
	if r.ep.CreateBody != nil {
		if body, kind, err = r.ep.CreateBody(fields); err != nil {
			return nil, err
		}
	}
	path := r.ep.Path
	if r.ep.CreatePath != "" {
		path = r.ep.CreatePath
	}

	var item T
	req := apiclient.Request{Method: http.MethodPost, Path: path, Body: body, Kind: kind}
	if err := r.do(ctx, req, r.ep.Single, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T, F]) Update(ctx context.Context, id string, fields F) (*T, error) {
	var body any = fields
	if r.ep.UpdateBody != nil {
		var err error
		if body, err = r.ep.UpdateBody(fields); err != nil {
			return nil, err
		}
	}

	var item T
	req := apiclient.Request{Method: http.MethodPut, Path: r.itemPath(id), Body: body}
	if err := r.do(ctx, req, r.ep.Single, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T, F]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, apiclient.Request{Method: http.MethodDelete, Path: r.itemPath(id)}, nil)
}

func (r *Resource[T, F]) itemPath(id string) string {
	return r.ep.Path + "/" + url.PathEscape(id)
}

// do performs req and decodes the value under key of the response envelope into out.
func (r *Resource[T, F]) do(ctx context.Context, req apiclient.Request, key string, out any) error {
	var envelope map[string]json.RawMessage
	if err := r.client.Do(ctx, req, &envelope); err != nil {
		return err
	}
	raw, ok := envelope[key]
	if !ok {
		return malformed(req, fmt.Sprintf("response has no %q field", key), nil)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return malformed(req, fmt.Sprintf("decode %q", key), err)
	}
	return nil
}

func malformed(req apiclient.Request, msg string, cause error) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	return &apiclient.Error{
		Kind:    apiclient.ErrMalformedResponse,
		Status:  http.StatusOK,
		Message: msg,
		Method:  method,
		Path:    req.Path,
		Cause:   cause,
	}
}
