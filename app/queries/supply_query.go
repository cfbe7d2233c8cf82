package queries

import (
	"database/sql"
	"errors"

	"github.com/agromercado/agromercado-backend/app/models"
)

type SupplyQueries struct {
	DB *sql.DB
}

func (q *SupplyQueries) ListSupplies() ([]models.Supply, error) {
	supplies := []models.Supply{}
	rows, err := q.DB.Query(`SELECT id, name, days_for_harvest FROM supplies ORDER BY name`)
	if err != nil {
		return supplies, errors.New("unable to get supplies, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Supply
		if err := rows.Scan(&s.ID, &s.Name, &s.DaysForHarvest); err != nil {
			return supplies, errors.New("error scanning supply row")
		}
		supplies = append(supplies, s)
	}
	if err := rows.Err(); err != nil {
		return supplies, errors.New("error iterating supply rows")
	}
	return supplies, nil
}

func (q *SupplyQueries) GetSupplyByID(id int64) (models.Supply, error) {
	s := models.Supply{}
	err := q.DB.QueryRow(`SELECT id, name, days_for_harvest FROM supplies WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.DaysForHarvest)
	if err != nil {
		if err == sql.ErrNoRows {
			return s, errors.New("supply not found")
		}
		return s, errors.New("unable to get supply, DB error")
	}
	return s, nil
}

func (q *SupplyQueries) CreateSupply(req *models.SupplyRequest) (models.Supply, error) {
	s := models.Supply{Name: req.Name, DaysForHarvest: req.DaysForHarvest}
	err := q.DB.QueryRow(`INSERT INTO supplies (name, days_for_harvest) VALUES ($1, $2) RETURNING id`,
		req.Name, req.DaysForHarvest).Scan(&s.ID)
	if err != nil {
		return s, errors.New("unable to create supply, DB error")
	}
	return s, nil
}

func (q *SupplyQueries) UpdateSupply(id int64, req *models.SupplyRequest) error {
	res, err := q.DB.Exec(`UPDATE supplies SET name = $1, days_for_harvest = $2 WHERE id = $3`,
		req.Name, req.DaysForHarvest, id)
	if err != nil {
		return errors.New("unable to update supply, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("supply not found")
	}
	return nil
}

func (q *SupplyQueries) DeleteSupply(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete supply, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("supply not found")
	}
	return nil
}
