package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/google/uuid"
)

type AdvertisementQueries struct {
	DB *sql.DB
}

var ErrInsufficientCredits = errors.New("insufficient credits")

const adColumns = `a.id, a.user_uid, a.remaining_credits, a.original_credits, a.region_id, a.department_id, a.district_id,
			  a.for_orders, a.for_publications, a.picture_url, a.url, a.name,
			  a.beginning_sowing_date, a.ending_sowing_date, a.beginning_harvest_date, a.ending_harvest_date`

func scanAdvertisement(row interface{ Scan(...interface{}) error }) (models.Advertisement, error) {
	a := models.Advertisement{}
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.RemainingCredits,
		&a.OriginalCredits,
		&a.RegionID,
		&a.DepartmentID,
		&a.DistrictID,
		&a.ForOrders,
		&a.ForPublications,
		&a.PictureURL,
		&a.URL,
		&a.Name,
		&a.BeginningSowingDate,
		&a.EndingSowingDate,
		&a.BeginningHarvestDate,
		&a.EndingHarvestDate,
	)
	return a, err
}

// CreateAdvertisement funds a new ad from the owner's credit balance and links
// the chosen supplies, all in one transaction.
func (q *AdvertisementQueries) CreateAdvertisement(userID uuid.UUID, req *models.AdvertisementRequest) (models.Advertisement, error) {
	ad := models.Advertisement{
		UserID:               userID,
		RemainingCredits:     req.OriginalCredits,
		OriginalCredits:      &req.OriginalCredits,
		RegionID:             req.Region,
		DepartmentID:         req.Department,
		DistrictID:           req.District,
		ForOrders:            true,
		ForPublications:      true,
		PictureURL:           req.PictureURL,
		URL:                  req.URL,
		Name:                 req.Name,
		BeginningSowingDate:  req.BeginningSowingDate,
		EndingSowingDate:     req.EndingSowingDate,
		BeginningHarvestDate: req.BeginningHarvestDate,
		EndingHarvestDate:    req.EndingHarvestDate,
		Supplies:             req.Supplies,
	}
	if req.ForOrders != nil {
		ad.ForOrders = *req.ForOrders
	}
	if req.ForPublications != nil {
		ad.ForPublications = *req.ForPublications
	}

	tx, err := q.DB.Begin()
	if err != nil {
		return ad, errors.New("unable to start transaction")
	}

	res, err := tx.Exec(`UPDATE users SET number_of_credits = number_of_credits - $1 WHERE uid = $2 AND number_of_credits >= $1`,
		req.OriginalCredits, userID)
	if err != nil {
		tx.Rollback()
		return ad, errors.New("unable to charge credits, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return ad, ErrInsufficientCredits
	}

	err = tx.QueryRow(`INSERT INTO advertisements (user_uid, remaining_credits, original_credits, region_id, department_id, district_id,
			for_orders, for_publications, picture_url, url, name,
			beginning_sowing_date, ending_sowing_date, beginning_harvest_date, ending_harvest_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`,
		ad.UserID, ad.RemainingCredits, ad.OriginalCredits, ad.RegionID, ad.DepartmentID, ad.DistrictID,
		ad.ForOrders, ad.ForPublications, ad.PictureURL, ad.URL, ad.Name,
		ad.BeginningSowingDate, ad.EndingSowingDate, ad.BeginningHarvestDate, ad.EndingHarvestDate,
	).Scan(&ad.ID)
	if err != nil {
		tx.Rollback()
		return ad, errors.New("unable to create advertisement, DB error")
	}

	for _, supplyID := range req.Supplies {
		if _, err := tx.Exec(`INSERT INTO linked_to (advertisement_id, supply_id) VALUES ($1, $2)`, ad.ID, supplyID); err != nil {
			tx.Rollback()
			return ad, errors.New("unable to link supply, DB error")
		}
	}

	if err := tx.Commit(); err != nil {
		return ad, errors.New("unable to commit transaction")
	}
	return ad, nil
}

func (q *AdvertisementQueries) linkedSupplies(adID int64) ([]int64, error) {
	ids := []int64{}
	rows, err := q.DB.Query(`SELECT supply_id FROM linked_to WHERE advertisement_id = $1`, adID)
	if err != nil {
		return ids, errors.New("unable to get linked supplies, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids, errors.New("error scanning linked supply row")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (q *AdvertisementQueries) GetAdvertisementByID(id int64) (models.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements a WHERE a.id = $1`

	ad, err := scanAdvertisement(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return ad, errors.New("advertisement not found")
		}
		return ad, errors.New("unable to get advertisement, DB error")
	}

	ad.Supplies, err = q.linkedSupplies(ad.ID)
	if err != nil {
		return ad, err
	}
	return ad, nil
}

func (q *AdvertisementQueries) ListAdvertisementsByUser(userID uuid.UUID) ([]models.Advertisement, error) {
	ads := []models.Advertisement{}

	query := `SELECT ` + adColumns + ` FROM advertisements a WHERE a.user_uid = $1 ORDER BY a.id`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return ads, errors.New("unable to get advertisements, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			return ads, errors.New("error scanning advertisement row")
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return ads, errors.New("error iterating advertisement rows")
	}

	for i := range ads {
		if ads[i].Supplies, err = q.linkedSupplies(ads[i].ID); err != nil {
			return ads, err
		}
	}
	return ads, nil
}

func (q *AdvertisementQueries) UpdateAdvertisement(id int64, req *models.UpdateAdvertisementRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.Region != nil {
		setClauses = append(setClauses, fmt.Sprintf("region_id = $%d", argID))
		args = append(args, *req.Region)
		argID++
	}
	if req.Department != nil {
		setClauses = append(setClauses, fmt.Sprintf("department_id = $%d", argID))
		args = append(args, *req.Department)
		argID++
	}
	if req.District != nil {
		setClauses = append(setClauses, fmt.Sprintf("district_id = $%d", argID))
		args = append(args, *req.District)
		argID++
	}
	if req.ForOrders != nil {
		setClauses = append(setClauses, fmt.Sprintf("for_orders = $%d", argID))
		args = append(args, *req.ForOrders)
		argID++
	}
	if req.ForPublications != nil {
		setClauses = append(setClauses, fmt.Sprintf("for_publications = $%d", argID))
		args = append(args, *req.ForPublications)
		argID++
	}
	if req.PictureURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("picture_url = $%d", argID))
		args = append(args, *req.PictureURL)
		argID++
	}
	if req.URL != nil {
		setClauses = append(setClauses, fmt.Sprintf("url = $%d", argID))
		args = append(args, *req.URL)
		argID++
	}
	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *req.Name)
		argID++
	}
	if req.BeginningSowingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("beginning_sowing_date = $%d", argID))
		args = append(args, *req.BeginningSowingDate)
		argID++
	}
	if req.EndingSowingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("ending_sowing_date = $%d", argID))
		args = append(args, *req.EndingSowingDate)
		argID++
	}
	if req.BeginningHarvestDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("beginning_harvest_date = $%d", argID))
		args = append(args, *req.BeginningHarvestDate)
		argID++
	}
	if req.EndingHarvestDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("ending_harvest_date = $%d", argID))
		args = append(args, *req.EndingHarvestDate)
		argID++
	}

	if len(setClauses) == 0 && req.Supplies == nil {
		return errors.New("no fields to update")
	}

	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	if len(setClauses) > 0 {
		query := fmt.Sprintf(`UPDATE advertisements SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argID)
		args = append(args, id)

		res, err := tx.Exec(query, args...)
		if err != nil {
			tx.Rollback()
			return errors.New("unable to update advertisement, DB error")
		}
		rows, _ := res.RowsAffected()
		if rows == 0 {
			tx.Rollback()
			return errors.New("advertisement not found")
		}
	}

	if req.Supplies != nil {
		if _, err := tx.Exec(`DELETE FROM linked_to WHERE advertisement_id = $1`, id); err != nil {
			tx.Rollback()
			return errors.New("unable to unlink supplies, DB error")
		}
		for _, supplyID := range req.Supplies {
			if _, err := tx.Exec(`INSERT INTO linked_to (advertisement_id, supply_id) VALUES ($1, $2)`, id, supplyID); err != nil {
				tx.Rollback()
				return errors.New("unable to link supply, DB error")
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}
	return nil
}

func (q *AdvertisementQueries) DeleteAdvertisement(id int64) error {
	res, err := q.DB.Exec(`DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return errors.New("unable to delete advertisement, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("advertisement not found")
	}
	return nil
}

// FeedForUser returns active ads for the given placement that are either
// untargeted or target the viewer's district, region or department. Each
// served ad is charged one credit in the same transaction, so an ad whose
// balance reaches zero drops out of the feed.
func (q *AdvertisementQueries) FeedForUser(viewer models.User, forPublications bool) ([]models.Advertisement, error) {
	ads := []models.Advertisement{}

	placement := "a.for_orders = TRUE"
	if forPublications {
		placement = "a.for_publications = TRUE"
	}

	var districtID, regionID, departmentID int64
	if viewer.DistrictID != nil {
		ubigeo := UbigeoQueries{DB: q.DB}
		district, err := ubigeo.GetDistrictByID(*viewer.DistrictID)
		if err != nil {
			return ads, err
		}
		districtID = district.ID
		regionID = district.RegionID
		departmentID = district.DepartmentID
	}

	tx, err := q.DB.Begin()
	if err != nil {
		return ads, errors.New("unable to start transaction")
	}

	query := `SELECT ` + adColumns + ` FROM advertisements a
			  WHERE a.remaining_credits > 0 AND ` + placement + `
			  AND ((a.district_id IS NULL AND a.region_id IS NULL AND a.department_id IS NULL)
			       OR a.district_id = $1 OR a.region_id = $2 OR a.department_id = $3)
			  ORDER BY a.id`

	rows, err := tx.Query(query, districtID, regionID, departmentID)
	if err != nil {
		tx.Rollback()
		return ads, errors.New("unable to get advertisement feed, DB error")
	}

	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			rows.Close()
			tx.Rollback()
			return ads, errors.New("error scanning advertisement row")
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return ads, errors.New("error iterating advertisement rows")
	}
	rows.Close()

	for i := range ads {
		if _, err := tx.Exec(`UPDATE advertisements SET remaining_credits = remaining_credits - 1 WHERE id = $1`, ads[i].ID); err != nil {
			tx.Rollback()
			return ads, errors.New("unable to charge advertisement, DB error")
		}
		ads[i].RemainingCredits--
	}

	if err := tx.Commit(); err != nil {
		return ads, errors.New("unable to commit transaction")
	}

	for i := range ads {
		if ads[i].Supplies, err = q.linkedSupplies(ads[i].ID); err != nil {
			return ads, err
		}
	}
	return ads, nil
}
