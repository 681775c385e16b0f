package orderrepo

import (
	"context"
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order. A duplicate id fails with the driver's error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites an existing order, including fields cleared to zero values.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}
	return nil
}

// Save upserts the order by id.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

func (r *GormOrderRepository) Get(ctx context.Context, id string) (*shipment.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find applies the list filter in SQL.
func (r *GormOrderRepository) Find(ctx context.Context, filter shipment.ListFilter) ([]*shipment.Order, error) {
	q := r.db.WithContext(ctx).Model(&OrderDTO{})

	switch filter.View {
	case shipment.ViewShipped:
		q = q.Where("awb_number <> ''")
	case shipment.ViewUnshipped:
		q = q.Where("awb_number = ''")
	case shipment.ViewPaid:
		q = q.Where("LOWER(payment_status) = LOWER(?)", string(shipment.PaymentPaid))
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + escapeLike(term) + "%"
		q = q.Where("(id ILIKE ? OR awb_number ILIKE ?)", like, like)
	}

	var dtos []OrderDTO
	if err := q.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetAllInTransit returns linked orders whose status is not final.
func (r *GormOrderRepository) GetAllInTransit(ctx context.Context) ([]*shipment.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("(shipment_id <> '' OR awb_number <> '')").
		Where("status NOT IN ?", finalStatusNames()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*shipment.Order, error) {
	orders := make([]*shipment.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func finalStatusNames() []string {
	return []string{
		shipment.Delivered.String(),
		shipment.DeliveredEarly.String(),
		shipment.Returned.String(),
		shipment.Cancelled.String(),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
