package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/google/uuid"
)

type OrderQueries struct {
	DB *sql.DB
}

const orderColumns = `o.id, o.user_uid, o.supply_id, o.weight_unit, o.unit_price, o.area_unit, o.area,
			  o.desired_harvest_date, o.desired_sowing_date, o.is_solved`

func scanOrder(row interface{ Scan(...interface{}) error }) (models.Order, error) {
	o := models.Order{}
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.SupplyID,
		&o.WeightUnit,
		&o.UnitPrice,
		&o.AreaUnit,
		&o.Area,
		&o.DesiredHarvestDate,
		&o.DesiredSowingDate,
		&o.IsSolved,
	)
	return o, err
}

// buildOrderFilterQuery mirrors the publication facets with the date bounds
// applied to desired_harvest_date.
func buildOrderFilterQuery(f models.FeedFilter) (string, []interface{}) {
	query := `SELECT ` + orderColumns + `
			  FROM orders o
			  JOIN users u ON u.uid = o.user_uid
			  LEFT JOIN districts d ON d.id = u.district_id`

	var filters []string
	var args []interface{}
	argIndex := 1

	if f.SupplyID != 0 {
		filters = append(filters, fmt.Sprintf("o.supply_id = $%d", argIndex))
		args = append(args, f.SupplyID)
		argIndex++
	}
	if f.MinPrice != nil {
		filters = append(filters, fmt.Sprintf("o.unit_price >= $%d", argIndex))
		args = append(args, *f.MinPrice)
		argIndex++
	}
	if f.MaxPrice != nil {
		filters = append(filters, fmt.Sprintf("o.unit_price <= $%d", argIndex))
		args = append(args, *f.MaxPrice)
		argIndex++
	}
	if f.MinDate != nil {
		filters = append(filters, fmt.Sprintf("o.desired_harvest_date >= $%d", argIndex))
		args = append(args, *f.MinDate)
		argIndex++
	}
	if f.MaxDate != nil {
		filters = append(filters, fmt.Sprintf("o.desired_harvest_date <= $%d", argIndex))
		args = append(args, *f.MaxDate)
		argIndex++
	}
	if f.DepartmentID != 0 {
		filters = append(filters, fmt.Sprintf("d.department_id = $%d", argIndex))
		args = append(args, f.DepartmentID)
		argIndex++
	}
	if f.RegionID != 0 {
		filters = append(filters, fmt.Sprintf("d.region_id = $%d", argIndex))
		args = append(args, f.RegionID)
		argIndex++
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}
	return query, args
}

func (q *OrderQueries) FilterOrders(f models.FeedFilter) ([]models.Order, error) {
	orders := []models.Order{}

	query, args := buildOrderFilterQuery(f)
	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return orders, errors.New("unable to filter orders, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return orders, errors.New("error scanning order row")
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return orders, errors.New("error iterating order rows")
	}
	return orders, nil
}

func (q *OrderQueries) ListOrders() ([]models.Order, error) {
	return q.FilterOrders(models.FeedFilter{})
}

func (q *OrderQueries) ListOrdersByUser(userID uuid.UUID) ([]models.Order, error) {
	orders := []models.Order{}

	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.user_uid = $1`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return orders, errors.New("unable to get orders, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return orders, errors.New("error scanning order row")
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return orders, errors.New("error iterating order rows")
	}
	return orders, nil
}

func (q *OrderQueries) GetOrderByID(id int64) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`

	o, err := scanOrder(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return o, errors.New("order not found")
		}
		return o, errors.New("unable to get order, DB error")
	}
	return o, nil
}

func (q *OrderQueries) CreateOrder(o *models.Order) error {
	query := `INSERT INTO orders (user_uid, supply_id, weight_unit, unit_price, area_unit, area, desired_harvest_date, desired_sowing_date, is_solved)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := q.DB.QueryRow(query,
		o.UserID,
		o.SupplyID,
		o.WeightUnit,
		o.UnitPrice,
		o.AreaUnit,
		o.Area,
		o.DesiredHarvestDate,
		o.DesiredSowingDate,
		o.IsSolved,
	).Scan(&o.ID)
	if err != nil {
		return errors.New("unable to create order, DB error")
	}
	return nil
}

func (q *OrderQueries) UpdateOrder(id int64, req *models.UpdateOrderRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.WeightUnit != nil {
		setClauses = append(setClauses, fmt.Sprintf("weight_unit = $%d", argID))
		args = append(args, *req.WeightUnit)
		argID++
	}
	if req.UnitPrice != nil {
		setClauses = append(setClauses, fmt.Sprintf("unit_price = $%d", argID))
		args = append(args, *req.UnitPrice)
		argID++
	}
	if req.AreaUnit != nil {
		setClauses = append(setClauses, fmt.Sprintf("area_unit = $%d", argID))
		args = append(args, *req.AreaUnit)
		argID++
	}
	if req.Area != nil {
		setClauses = append(setClauses, fmt.Sprintf("area = $%d", argID))
		args = append(args, *req.Area)
		argID++
	}
	if req.DesiredHarvestDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("desired_harvest_date = $%d", argID))
		args = append(args, *req.DesiredHarvestDate)
		argID++
	}
	if req.DesiredSowingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("desired_sowing_date = $%d", argID))
		args = append(args, *req.DesiredSowingDate)
		argID++
	}
	if req.IsSolved != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_solved = $%d", argID))
		args = append(args, *req.IsSolved)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update order, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("order not found")
	}
	return nil
}

func (q *OrderQueries) DeleteOrder(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete order, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("order not found")
	}
	return nil
}
