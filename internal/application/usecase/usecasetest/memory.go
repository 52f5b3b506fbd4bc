// Package usecasetest provee repositorios y un cliente de base de datos en memoria
// para tests. Los filtros se evalúan con query.Matches en Go; no sustituye a los tests
// contra un motor real (collation, funciones SQL, tipos).
package usecasetest

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	mu         sync.Mutex
	Users      []*entity.User
	Tasks      []*entity.Task
	Orders     []*entity.Order
	Documents  []*entity.Document
	Activities []*entity.Activity
}

// NewStore crea un store vacío.
func NewStore() *Store { return &Store{} }

// Repos repositorios sobre el store.
func (s *Store) Repos() repository.Set {
	return repository.Set{
		Users:      userRepo{s},
		Tasks:      taskRepo{s},
		Orders:     orderRepo{s},
		Documents:  documentRepo{s},
		Activities: activityRepo{s},
		Stats:      statsRepo{s},
	}
}

type fields map[string]string

func (f fields) Field(name string) string { return f[name] }

// page aplica filtros, orden (created_at desc) y ventana.
func page[T any](items []*T, q query.Query, rec func(*T) fields, created func(*T) int64) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if query.Matches(q, rec(it)) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return created(out[i]) > created(out[j]) })
	if q.Page.Limit <= 0 {
		return out
	}
	skip := q.Page.Skip()
	if skip >= len(out) {
		return []*T{}
	}
	end := min(skip+q.Page.Limit, len(out))
	return out[skip:end]
}

type activityRepo struct{ s *Store }

func activityFields(a *entity.Activity) fields {
	return fields{"type": a.Type, "title": a.Title, "description": a.Description, "user_id": a.UserID}
}

func (r activityRepo) List(_ context.Context, q query.Query) ([]*entity.ActivityWithUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := page(r.s.Activities, q, activityFields, func(a *entity.Activity) int64 { return a.CreatedAt.UnixNano() })
	out := make([]*entity.ActivityWithUser, 0, len(list))
	for _, a := range list {
		w := &entity.ActivityWithUser{Activity: *a}
		for _, u := range r.s.Users {
			if u.ID == a.UserID {
				w.UserName, w.UserEmail, w.UserImage = u.Name, u.Email, u.Image
			}
		}
		out = append(out, w)
	}
	return out, nil
}

func (r activityRepo) Count(_ context.Context, q query.Query) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(page(r.s.Activities, q.WithoutPage(), activityFields, func(a *entity.Activity) int64 { return 0 })), nil
}

func (r activityRepo) Create(_ context.Context, a *entity.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.Activities = append(r.s.Activities, &cp)
	return nil
}

type taskRepo struct{ s *Store }

func taskFields(t *entity.Task) fields {
	return fields{"status": t.Status, "priority": t.Priority, "title": t.Title, "description": t.Description}
}

func (r taskRepo) List(_ context.Context, q query.Query) ([]*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.s.Tasks, q, taskFields, func(t *entity.Task) int64 { return t.CreatedAt.UnixNano() }), nil
}

func (r taskRepo) Count(_ context.Context, q query.Query) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(page(r.s.Tasks, q.WithoutPage(), taskFields, func(*entity.Task) int64 { return 0 })), nil
}

type orderRepo struct{ s *Store }

func orderFields(o *entity.Order) fields {
	return fields{"status": o.Status, "order_number": o.OrderNumber, "customer_name": o.CustomerName, "description": o.Description}
}

func (r orderRepo) List(_ context.Context, q query.Query) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.s.Orders, q, orderFields, func(o *entity.Order) int64 { return o.CreatedAt.UnixNano() }), nil
}

func (r orderRepo) Count(_ context.Context, q query.Query) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(page(r.s.Orders, q.WithoutPage(), orderFields, func(*entity.Order) int64 { return 0 })), nil
}

type documentRepo struct{ s *Store }

func documentFields(d *entity.Document) fields {
	return fields{"type": d.Type, "title": d.Title, "description": d.Description}
}

func (r documentRepo) List(_ context.Context, q query.Query) ([]*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.s.Documents, q, documentFields, func(d *entity.Document) int64 { return d.CreatedAt.UnixNano() }), nil
}

func (r documentRepo) Count(_ context.Context, q query.Query) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(page(r.s.Documents, q.WithoutPage(), documentFields, func(*entity.Document) int64 { return 0 })), nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.Users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.Users = append(r.s.Users, &cp)
	return nil
}

func (r userRepo) find(match func(*entity.User) bool, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "usuario", ID: id}
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }, id)
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }, email)
}

func (r userRepo) UpdateRole(_ context.Context, id, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return &domain.NotFoundError{Resource: "usuario", ID: id}
}

type statsRepo struct{ s *Store }

func (r statsRepo) Counts(context.Context) (*entity.Counts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return &entity.Counts{
		Users:      len(r.s.Users),
		Tasks:      len(r.s.Tasks),
		Orders:     len(r.s.Orders),
		Documents:  len(r.s.Documents),
		Activities: len(r.s.Activities),
	}, nil
}

var _ ports.DatabaseClient = (*Client)(nil)

// Client cliente en memoria. ConnectErr y PingErr simulan un motor caído.
// InTx no hace rollback: los tests que lo necesiten usan SQLite real.
type Client struct {
	Name       string
	Store      *Store
	ConnectErr error
	PingErr    error

	mu          sync.Mutex
	connected   bool
	Connects    int
	Disconnects int
}

// NewClient crea un cliente sobre store.
func NewClient(name string, store *Store) *Client {
	return &Client{Name: name, Store: store}
}

func (c *Client) Backend() string { return c.Name }

func (c *Client) Connect(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ConnectErr != nil {
		return c.ConnectErr
	}
	if !c.connected {
		c.connected = true
		c.Connects++
	}
	return nil
}

func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		c.connected = false
		c.Disconnects++
	}
	return nil
}

// Connected indica si hay una conexión tomada.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) Ping(context.Context) error {
	if !c.Connected() {
		return domain.ErrNotConnected
	}
	return c.PingErr
}

func (c *Client) Repos() repository.Set { return c.Store.Repos() }

func (c *Client) InTx(_ context.Context, fn func(repository.Set) error) error {
	if !c.Connected() {
		return domain.ErrNotConnected
	}
	return fn(c.Store.Repos())
}

// Provider entrega siempre el mismo cliente y cuenta las peticiones.
type Provider struct {
	Client   *Client
	mu       sync.Mutex
	Requests []string
}

// ClientFor implementa ports.ClientProvider.
func (p *Provider) ClientFor(databaseType string) ports.DatabaseClient {
	p.mu.Lock()
	p.Requests = append(p.Requests, databaseType)
	p.mu.Unlock()
	return p.Client
}

// Calls número de clientes pedidos.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Requests)
}
