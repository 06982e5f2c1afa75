package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderEditabilityQueryHandler reads only status and creator type; the
// answer is then a pure policy lookup.
type GetOrderEditabilityQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderEditabilityQueryHandler(db *gorm.DB) GetOrderEditabilityQueryHandler {
	return GetOrderEditabilityQueryHandler{db: db}
}

func (h GetOrderEditabilityQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEditabilityQuery,
) (GetOrderEditabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderEditabilityQueryResponse{}, err
	}

	var row struct {
		Status      int
		CreatorType int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			creator_type
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&row.Status, &row.CreatorType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderEditabilityQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderEditabilityQueryResponse{}, err
	}

	status := order.Status(row.Status)
	creator := order.CreatorType(row.CreatorType)
	if err = errors.Join(status.Validate(), creator.Validate()); err != nil {
		return GetOrderEditabilityQueryResponse{}, err
	}

	fields := make(map[order.FieldKey]bool, len(order.AllFields()))
	for _, f := range order.AllFields() {
		fields[f] = order.IsFieldEditable(f, status, creator)
	}

	return GetOrderEditabilityQueryResponse{
		OrderID:             query.OrderID(),
		Status:              status,
		Creator:             creator,
		IsEditable:          order.IsOrderEditable(status),
		IsEditableByCreator: order.IsOrderEditableBy(status, creator),
		IsCancellable:       order.IsOrderCancellable(status),
		Fields:              fields,
	}, nil
}
