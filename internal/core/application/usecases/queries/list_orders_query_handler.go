package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves denormalized order rows from the database.
// Joins the user directory and the menu so each row carries the member name
// and the dish name and image.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery("chef", 0)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns order rows newest-first.
// Member-scoped queries return only the member's own orders.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.user_id,
			o.item_id,
			o.quantity,
			o.note,
			o.status,
			o.created_at,
			o.updated_at,
			u.name AS user_name,
			m.name AS item_name,
			m.image AS item_image
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN menu_items m ON m.id = o.item_id
	`

	var args []any
	if !query.Role().SeesAllOrders() {
		sql += " WHERE o.user_id = ?"
		args = append(args, query.UserID())
	}
	sql += " ORDER BY o.created_at DESC, o.id DESC"

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp ListOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.UserID,
			&orderResp.ItemID,
			&orderResp.Quantity,
			&orderResp.Note,
			&orderResp.Status,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
			&orderResp.UserName,
			&orderResp.ItemName,
			&orderResp.ItemImage,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
