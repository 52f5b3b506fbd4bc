package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/database"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

type seedOptions struct {
	Password string
	Tasks    int
	Orders   int
	Now      time.Time
}

const adminEmail = "admin@example.com"

var (
	taskStatuses  = []string{entity.TaskStatusTodo, entity.TaskStatusInProgress, entity.TaskStatusDone}
	priorities    = []string{"low", "medium", "high"}
	orderStatuses = []string{entity.OrderStatusPending, entity.OrderStatusProcessing, entity.OrderStatusCompleted, entity.OrderStatusCancelled}
	customers     = []string{"Acme S.A.S.", "Distribuidora Andina", "Café del Valle", "Textiles Norte"}
	docTypes      = []string{"invoice", "contract", "report"}
)

// seed inserta todo en una sola transacción. Si el admin demo ya existe no hace nada.
func seed(ctx context.Context, t database.Target, log *logger.Logger, opt seedOptions) error {
	_, err := sqlstore.NewUserRepository(t.DB, t.Dialect).GetByEmail(ctx, adminEmail)
	if err == nil {
		log.Info().Str("email", adminEmail).Msg("datos demo ya cargados, nada que hacer")
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opt.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var counts struct{ users, tasks, orders, docs, acts int }
	err = sqlstore.RunInTx(ctx, t.DB, func(tx sqlstore.Querier) error {
		users := sqlstore.NewUserRepository(tx, t.Dialect)
		tasks := sqlstore.NewTaskRepository(tx, t.Dialect)
		orders := sqlstore.NewOrderRepository(tx, t.Dialect)
		docs := sqlstore.NewDocumentRepository(tx, t.Dialect)
		acts := sqlstore.NewActivityRepository(tx, t.Dialect)

		at := func(i int) time.Time { return opt.Now.Add(-time.Duration(i) * time.Hour) }
		activity := func(userID, typ, title, desc string, when time.Time) error {
			counts.acts++
			return acts.Create(ctx, &entity.Activity{
				ID: uuid.NewString(), Type: typ, Title: title, Description: desc, UserID: userID, CreatedAt: when,
			})
		}

		var ids []string
		for i, u := range []struct{ email, name, role string }{
			{adminEmail, "Administrador", entity.RoleAdmin},
			{"manager@example.com", "Gerente Demo", entity.RoleManager},
			{"user@example.com", "Usuario Demo", entity.RoleUser},
		} {
			id := uuid.NewString()
			when := at(200 - i)
			if err := users.Create(ctx, &entity.User{
				ID: id, Email: u.email, Name: u.name, PasswordHash: string(hash), Role: u.role,
				CreatedAt: when, UpdatedAt: when,
			}); err != nil {
				return err
			}
			ids = append(ids, id)
			counts.users++
			if err := activity(id, "user_registered", "Nuevo usuario", u.email, when); err != nil {
				return err
			}
		}

		for i := 0; i < opt.Tasks; i++ {
			assignee := ids[i%len(ids)]
			due := opt.Now.AddDate(0, 0, i%10)
			when := at(opt.Tasks - i)
			task := &entity.Task{
				ID:          uuid.NewString(),
				Title:       fmt.Sprintf("Tarea %d", i+1),
				Description: fmt.Sprintf("Seguimiento del pedido #%d", 1000+i),
				Status:      taskStatuses[i%len(taskStatuses)],
				Priority:    priorities[i%len(priorities)],
				AssigneeID:  &assignee,
				DueDate:     &due,
				CreatedAt:   when,
				UpdatedAt:   when,
			}
			if err := tasks.Create(ctx, task); err != nil {
				return err
			}
			counts.tasks++
			if err := activity(assignee, "task_created", "Tarea creada", task.Title, when); err != nil {
				return err
			}
		}

		for i := 0; i < opt.Orders; i++ {
			when := at(opt.Orders - i)
			order := &entity.Order{
				ID:           uuid.NewString(),
				OrderNumber:  fmt.Sprintf("ORD-%05d", i+1),
				CustomerName: customers[i%len(customers)],
				Description:  "Pedido de demostración",
				Status:       orderStatuses[i%len(orderStatuses)],
				Total:        decimal.NewFromInt(int64(150000 + i*12500)).Div(decimal.NewFromInt(100)),
				CreatedBy:    ids[1],
				CreatedAt:    when,
				UpdatedAt:    when,
			}
			if err := orders.Create(ctx, order); err != nil {
				return err
			}
			counts.orders++
			if err := activity(ids[1], "order_created", "Pedido creado", order.OrderNumber+" "+order.CustomerName, when); err != nil {
				return err
			}
		}

		for i, typ := range docTypes {
			when := at(i)
			doc := &entity.Document{
				ID:          uuid.NewString(),
				Title:       fmt.Sprintf("Documento %s", typ),
				Description: "Documento de demostración",
				Type:        typ,
				URL:         fmt.Sprintf("https://example.com/docs/%s.pdf", typ),
				OwnerID:     ids[0],
				CreatedAt:   when,
				UpdatedAt:   when,
			}
			if err := docs.Create(ctx, doc); err != nil {
				return err
			}
			counts.docs++
			if err := activity(ids[0], "document_uploaded", "Documento subido", doc.Title, when); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cargar datos demo: %w", err)
	}

	log.Info().
		Int("users", counts.users).
		Int("tasks", counts.tasks).
		Int("orders", counts.orders).
		Int("documents", counts.docs).
		Int("activities", counts.acts).
		Msg("datos demo cargados")
	return nil
}
