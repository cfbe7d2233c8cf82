package queries

import (
	"database/sql"
	"errors"

	"github.com/agromercado/agromercado-backend/app/models"
)

type UbigeoQueries struct {
	DB *sql.DB
}

func (q *UbigeoQueries) ListDepartments() ([]models.Department, error) {
	departments := []models.Department{}
	rows, err := q.DB.Query(`SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return departments, errors.New("unable to get departments, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return departments, errors.New("error scanning department row")
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return departments, errors.New("error iterating department rows")
	}
	return departments, nil
}

func (q *UbigeoQueries) CreateDepartment(name string) (models.Department, error) {
	d := models.Department{Name: name}
	err := q.DB.QueryRow(`INSERT INTO departments (name) VALUES ($1) RETURNING id`, name).Scan(&d.ID)
	if err != nil {
		return d, errors.New("unable to create department, DB error")
	}
	return d, nil
}

func (q *UbigeoQueries) DeleteDepartment(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete department, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("department not found")
	}
	return nil
}

// ListRegions returns the regions of one department, or every region when
// departmentID is 0.
func (q *UbigeoQueries) ListRegions(departmentID int64) ([]models.Region, error) {
	regions := []models.Region{}

	query := `SELECT id, department_id, name FROM regions`
	args := []interface{}{}
	if departmentID != 0 {
		query += ` WHERE department_id = $1`
		args = append(args, departmentID)
	}
	query += ` ORDER BY id`

	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return regions, errors.New("unable to get regions, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.ID, &r.DepartmentID, &r.Name); err != nil {
			return regions, errors.New("error scanning region row")
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return regions, errors.New("error iterating region rows")
	}
	return regions, nil
}

func (q *UbigeoQueries) GetRegionByID(id int64) (models.Region, error) {
	r := models.Region{}
	err := q.DB.QueryRow(`SELECT id, department_id, name FROM regions WHERE id = $1`, id).
		Scan(&r.ID, &r.DepartmentID, &r.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return r, errors.New("region not found")
		}
		return r, errors.New("unable to get region, DB error")
	}
	return r, nil
}

func (q *UbigeoQueries) CreateRegion(departmentID int64, name string) (models.Region, error) {
	r := models.Region{DepartmentID: departmentID, Name: name}
	err := q.DB.QueryRow(`INSERT INTO regions (department_id, name) VALUES ($1, $2) RETURNING id`,
		departmentID, name).Scan(&r.ID)
	if err != nil {
		return r, errors.New("unable to create region, DB error")
	}
	return r, nil
}

func (q *UbigeoQueries) DeleteRegion(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete region, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("region not found")
	}
	return nil
}

// ListDistricts returns the districts of one region, or every district when
// regionID is 0.
func (q *UbigeoQueries) ListDistricts(regionID int64) ([]models.District, error) {
	districts := []models.District{}

	query := `SELECT id, region_id, department_id, name FROM districts`
	args := []interface{}{}
	if regionID != 0 {
		query += ` WHERE region_id = $1`
		args = append(args, regionID)
	}
	query += ` ORDER BY id`

	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return districts, errors.New("unable to get districts, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.RegionID, &d.DepartmentID, &d.Name); err != nil {
			return districts, errors.New("error scanning district row")
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return districts, errors.New("error iterating district rows")
	}
	return districts, nil
}

func (q *UbigeoQueries) GetDistrictByID(id int64) (models.District, error) {
	d := models.District{}
	err := q.DB.QueryRow(`SELECT id, region_id, department_id, name FROM districts WHERE id = $1`, id).
		Scan(&d.ID, &d.RegionID, &d.DepartmentID, &d.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return d, errors.New("district not found")
		}
		return d, errors.New("unable to get district, DB error")
	}
	return d, nil
}

// CreateDistrict derives the department from the region so a district can
// never point outside its region's department.
func (q *UbigeoQueries) CreateDistrict(regionID int64, name string) (models.District, error) {
	region, err := q.GetRegionByID(regionID)
	if err != nil {
		return models.District{}, err
	}

	d := models.District{RegionID: region.ID, DepartmentID: region.DepartmentID, Name: name}
	err = q.DB.QueryRow(`INSERT INTO districts (region_id, department_id, name) VALUES ($1, $2, $3) RETURNING id`,
		region.ID, region.DepartmentID, name).Scan(&d.ID)
	if err != nil {
		return d, errors.New("unable to create district, DB error")
	}
	return d, nil
}

func (q *UbigeoQueries) DeleteDistrict(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete district, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("district not found")
	}
	return nil
}
