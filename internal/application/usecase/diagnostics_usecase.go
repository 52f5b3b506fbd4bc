package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/ports"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// DiagnosticsUseCase sondas de conectividad. Nunca devuelven error: el fallo se
// reporta en el cuerpo y el handler decide el status.
type DiagnosticsUseCase struct {
	db  ports.DatabaseClient
	now func() time.Time
}

// NewDiagnosticsUseCase construye el caso de uso sobre un cliente sin conectar.
func NewDiagnosticsUseCase(db ports.DatabaseClient) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{db: db, now: time.Now}
}

// Health conecta y hace ping. ok=false si cualquiera de los dos falla.
func (uc *DiagnosticsUseCase) Health(ctx context.Context) (resp dto.HealthResponse, ok bool) {
	resp = dto.HealthResponse{
		Timestamp: uc.now().UTC().Format(time.RFC3339),
		Backend:   uc.db.Backend(),
	}
	err := uc.db.Connect(ctx)
	if err == nil {
		err = uc.db.Ping(ctx)
	}
	if err != nil {
		resp.Success = false
		resp.Message = "la base de datos no responde"
		resp.Database = "disconnected"
		resp.Status = "unhealthy"
		return resp, false
	}
	resp.Success = true
	resp.Message = "API funcionando correctamente"
	resp.Database = "connected"
	resp.Status = "healthy"
	return resp, true
}

// TestDB cuenta usuarios, tareas y pedidos. En fallo devuelve el mensaje y la
// traza completa de la causa.
func (uc *DiagnosticsUseCase) TestDB(ctx context.Context) (*dto.TestDBResponse, *dto.TestDBFailure) {
	fail := func(err error) *dto.TestDBFailure {
		f := &dto.TestDBFailure{Success: false, DatabaseType: uc.db.Backend(), Error: err.Error()}
		var ce *domain.ConnectionError
		if errors.As(err, &ce) {
			f.Stack = ce.Trace()
		} else {
			f.Stack = fmt.Sprintf("%+v", pkgerrors.WithStack(err))
		}
		return f
	}
	if err := uc.db.Connect(ctx); err != nil {
		return nil, fail(err)
	}
	c, err := uc.db.Repos().Stats.Counts(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return &dto.TestDBResponse{
		Success:      true,
		DatabaseType: uc.db.Backend(),
		Counts:       dto.TestDBCounts{Users: c.Users, Tasks: c.Tasks, Orders: c.Orders},
	}, nil
}
