package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PublishQueries struct {
	DB *sql.DB
}

const publishColumns = `p.id, p.user_uid, p.supply_id, p.weight_unit, p.unit_price, p.area_unit, p.area,
			  p.harvest_date, p.sowing_date, p.picture_urls, p.is_sold`

func scanPublish(row interface{ Scan(...interface{}) error }) (models.Publish, error) {
	p := models.Publish{}
	var price decimal.NullDecimal
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.SupplyID,
		&p.WeightUnit,
		&price,
		&p.AreaUnit,
		&p.Area,
		&p.HarvestDate,
		&p.SowingDate,
		&p.PictureURLs,
		&p.IsSold,
	)
	if price.Valid {
		p.UnitPrice = &price.Decimal
	}
	return p, err
}

// buildPublishFilterQuery translates a FeedFilter into one conjunctive SQL
// query. Unset fields contribute no predicate, which is equivalent to the
// open-ended bounds of the filter contract. Geographic facets constrain the
// owning user's district through its region/department foreign keys.
func buildPublishFilterQuery(f models.FeedFilter) (string, []interface{}) {
	query := `SELECT ` + publishColumns + `
			  FROM publications p
			  JOIN users u ON u.uid = p.user_uid
			  LEFT JOIN districts d ON d.id = u.district_id`

	var filters []string
	var args []interface{}
	argIndex := 1

	if f.SupplyID != 0 {
		filters = append(filters, fmt.Sprintf("p.supply_id = $%d", argIndex))
		args = append(args, f.SupplyID)
		argIndex++
	}
	if f.MinPrice != nil {
		filters = append(filters, fmt.Sprintf("p.unit_price >= $%d", argIndex))
		args = append(args, *f.MinPrice)
		argIndex++
	}
	if f.MaxPrice != nil {
		filters = append(filters, fmt.Sprintf("p.unit_price <= $%d", argIndex))
		args = append(args, *f.MaxPrice)
		argIndex++
	}
	if f.MinDate != nil {
		filters = append(filters, fmt.Sprintf("p.harvest_date >= $%d", argIndex))
		args = append(args, *f.MinDate)
		argIndex++
	}
	if f.MaxDate != nil {
		filters = append(filters, fmt.Sprintf("p.harvest_date <= $%d", argIndex))
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

// FilterPublishes returns every publication satisfying the conjunction of the
// supplied facets. No ordering or pagination is applied.
func (q *PublishQueries) FilterPublishes(f models.FeedFilter) ([]models.Publish, error) {
	publishes := []models.Publish{}

	query, args := buildPublishFilterQuery(f)
	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return publishes, errors.New("unable to filter publications, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPublish(rows)
		if err != nil {
			return publishes, errors.New("error scanning publication row")
		}
		publishes = append(publishes, p)
	}
	if err := rows.Err(); err != nil {
		return publishes, errors.New("error iterating publication rows")
	}
	return publishes, nil
}

func (q *PublishQueries) ListPublishes() ([]models.Publish, error) {
	return q.FilterPublishes(models.FeedFilter{})
}

func (q *PublishQueries) ListPublishesByUser(userID uuid.UUID) ([]models.Publish, error) {
	publishes := []models.Publish{}

	query := `SELECT ` + publishColumns + ` FROM publications p WHERE p.user_uid = $1`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return publishes, errors.New("unable to get publications, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPublish(rows)
		if err != nil {
			return publishes, errors.New("error scanning publication row")
		}
		publishes = append(publishes, p)
	}
	if err := rows.Err(); err != nil {
		return publishes, errors.New("error iterating publication rows")
	}
	return publishes, nil
}

func (q *PublishQueries) GetPublishByID(id int64) (models.Publish, error) {
	query := `SELECT ` + publishColumns + ` FROM publications p WHERE p.id = $1`

	p, err := scanPublish(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return p, errors.New("publication not found")
		}
		return p, errors.New("unable to get publication, DB error")
	}
	return p, nil
}

func (q *PublishQueries) CreatePublish(p *models.Publish) error {
	query := `INSERT INTO publications (user_uid, supply_id, weight_unit, unit_price, area_unit, area, harvest_date, sowing_date, picture_urls, is_sold)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	var price interface{}
	if p.UnitPrice != nil {
		price = *p.UnitPrice
	}

	err := q.DB.QueryRow(query,
		p.UserID,
		p.SupplyID,
		p.WeightUnit,
		price,
		p.AreaUnit,
		p.Area,
		p.HarvestDate,
		p.SowingDate,
		pq.StringArray(p.PictureURLs),
		p.IsSold,
	).Scan(&p.ID)
	if err != nil {
		return errors.New("unable to create publication, DB error")
	}
	return nil
}

func (q *PublishQueries) UpdatePublish(id int64, req *models.UpdatePublishRequest) error {
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
	if req.HarvestDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("harvest_date = $%d", argID))
		args = append(args, *req.HarvestDate)
		argID++
	}
	if req.SowingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("sowing_date = $%d", argID))
		args = append(args, *req.SowingDate)
		argID++
	}
	if req.PictureURLs != nil {
		setClauses = append(setClauses, fmt.Sprintf("picture_urls = $%d", argID))
		args = append(args, pq.StringArray(req.PictureURLs))
		argID++
	}
	if req.IsSold != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_sold = $%d", argID))
		args = append(args, *req.IsSold)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE publications SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update publication, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("publication not found")
	}
	return nil
}

func (q *PublishQueries) DeletePublish(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete publication, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("publication not found")
	}
	return nil
}
