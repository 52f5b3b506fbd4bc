package usecase

import (
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func toActivityResponse(a *entity.ActivityWithUser) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          a.ID,
		Type:        a.Type,
		Title:       a.Title,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		User: dto.ActivityUser{
			ID:    a.UserID,
			Name:  a.UserName,
			Email: a.UserEmail,
			Image: a.UserImage,
		},
	}
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Description:  o.Description,
		Status:       o.Status,
		Total:        o.Total,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		URL:         d.URL,
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToUserResponse salida pública de un usuario (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func mapSlice[T any, R any](in []*T, f func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
