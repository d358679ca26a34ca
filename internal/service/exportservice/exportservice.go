package exportservice

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/service/orderservice"
)

type Repo interface {
	ListOrdersByBucket(ctx context.Context, month, year int) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}

const dateTimeLayout = "02/01/2006, 15:04:05"

var orderHeader = []string{
	"ID",
	"Nombre del Pedido",
	"Precio (€)",
	"Adelanto (€)",
	"Porcentaje Alex (€)",
	"Pagado a Alex (€)",
	"Pendiente (€)",
	"Material Propio",
	"Estado",
	"Mes",
	"Año",
	"Creado por",
	"Fecha Creación",
	"Última Actualización",
}

var activityHeader = []string{
	"ID",
	"Fecha y Hora",
	"Usuario",
	"Acción",
	"Pedido",
	"Campo Modificado",
	"Valor Anterior",
	"Valor Nuevo",
	"ID Pedido",
}

var actionText = map[domain.Action]string{
	domain.ActionCreate:  "Crear pedido",
	domain.ActionUpdate:  "Modificar pedido",
	domain.ActionPayment: "Registrar pago",
}

type Service struct {
	repo Repo
	now  func() time.Time
	loc  *time.Location
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
}

func (s *Service) Orders(ctx context.Context, scope domain.ExportScope) (*domain.CSVFile, error) {
	var (
		orders []domain.Order
		err    error
	)
	switch {
	case scope.All:
		orders, err = s.repo.ListAllOrders(ctx)
	case scope.Month != 0 && scope.Year != 0:
		if scope.Month < 1 || scope.Month > 12 {
			return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
		}
		orders, err = s.repo.ListOrdersByBucket(ctx, scope.Month, scope.Year)
	}
	if err != nil {
		zap.L().Error("can't load orders for export", zap.Error(err))
		return nil, err
	}
	orderservice.SortNewestFirst(orders)

	rows := make([][]string, 0, len(orders)+1)
	rows = append(rows, orderHeader)
	for _, o := range orders {
		status := "Pendiente"
		if o.Settled() {
			status = "Pagado"
		}
		ownMaterial := "No"
		if o.IsOwnMaterial {
			ownMaterial = "Sí"
		}
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			o.Name,
			o.Price.StringFixed(2),
			o.AdvancePayment.StringFixed(2),
			o.AlexPercentage.StringFixed(2),
			o.PaidToAlex.StringFixed(2),
			o.Pending().StringFixed(2),
			ownMaterial,
			status,
			domain.MonthName(o.Month),
			strconv.Itoa(o.Year),
			domain.UserName(o.CreatedBy),
			o.CreatedAt.In(s.loc).Format(dateTimeLayout),
			o.UpdatedAt.In(s.loc).Format(dateTimeLayout),
		})
	}

	data, err := encode(rows)
	if err != nil {
		zap.L().Error("can't encode orders csv", zap.Error(err))
		return nil, err
	}
	return &domain.CSVFile{Filename: s.ordersFilename(scope), Data: data}, nil
}

func (s *Service) Activities(ctx context.Context) (*domain.CSVFile, error) {
	activities, err := s.repo.ListActivities(ctx, 0)
	if err != nil {
		zap.L().Error("can't load activities for export", zap.Error(err))
		return nil, err
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	rows := make([][]string, 0, len(activities)+1)
	rows = append(rows, activityHeader)
	for _, a := range activities {
		user := a.UserName
		if user == "" {
			user = "Usuario desconocido"
		}
		action, ok := actionText[a.Action]
		if !ok {
			action = string(a.Action)
		}
		orderName := a.OrderName
		if orderName == "" {
			orderName = "Sin nombre"
		}
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.CreatedAt.In(s.loc).Format(dateTimeLayout),
			user,
			action,
			orderName,
			a.FieldChanged,
			a.OldValue,
			a.NewValue,
			strconv.Itoa(a.OrderID),
		})
	}

	data, err := encode(rows)
	if err != nil {
		zap.L().Error("can't encode activities csv", zap.Error(err))
		return nil, err
	}
	return &domain.CSVFile{
		Filename: "registro-actividad-" + s.today() + ".csv",
		Data:     data,
	}, nil
}

func (s *Service) ordersFilename(scope domain.ExportScope) string {
	name := "pedidos"
	switch {
	case scope.All:
		name = "pedidos-todos"
	case scope.Month != 0 && scope.Year != 0:
		name = fmt.Sprintf("pedidos-%s-%d", strings.ToLower(domain.MonthName(scope.Month)), scope.Year)
	}
	return name + "-" + s.today() + ".csv"
}

func (s *Service) today() string {
	return s.now().UTC().Format(time.DateOnly)
}

func encode(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
