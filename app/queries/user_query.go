package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/google/uuid"
)

type UserQueries struct {
	DB *sql.DB
}

const userColumns = `uid, phone_number, email, first_name, last_name, profile_picture_url, number_of_credits,
			  ruc, dni, latitude, longitude, district_id, role, password_hash, is_active, is_admin, is_verified, registered_at`

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	user := models.User{}
	err := row.Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.ProfilePictureURL,
		&user.NumberOfCredits,
		&user.RUC,
		&user.DNI,
		&user.Latitude,
		&user.Longitude,
		&user.DistrictID,
		&user.Role,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsAdmin,
		&user.IsVerified,
		&user.RegisteredAt,
	)
	return user, err
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	user, err := scanUser(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}
	return user, nil
}

func (q *UserQueries) GetUserByPhone(phoneNumber string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`

	user, err := scanUser(q.DB.QueryRow(query, phoneNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}
	return user, nil
}

func (q *UserQueries) CreateUser(u *models.User) error {
	query := `INSERT INTO users (uid, phone_number, password_hash, role, is_active, is_admin, is_verified, registered_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.DB.Exec(query,
		u.ID,
		u.PhoneNumber,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		u.IsAdmin,
		u.IsVerified,
		u.RegisteredAt,
	)
	if err != nil {
		return errors.New("unable to create user, DB error")
	}
	return nil
}

func (q *UserQueries) ListUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY registered_at`

	rows, err := q.DB.Query(query)
	if err != nil {
		return users, errors.New("unable to get users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users, errors.New("error scanning user row")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}
	return users, nil
}

func (q *UserQueries) UpdateLocation(userID uuid.UUID, districtID int64, lat, lon float64) error {
	query := `UPDATE users SET district_id = $1, latitude = $2, longitude = $3 WHERE uid = $4`
	res, err := q.DB.Exec(query, districtID, lat, lon, userID)
	if err != nil {
		return errors.New("unable to update location, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateRole(userID uuid.UUID, role string) error {
	query := `UPDATE users SET role = $1 WHERE uid = $2`
	res, err := q.DB.Exec(query, role, userID)
	if err != nil {
		return errors.New("unable to update role, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateProfile(userID uuid.UUID, req *models.UpdateProfileRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argID))
		args = append(args, *req.Email)
		argID++
	}
	if req.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argID))
		args = append(args, *req.FirstName)
		argID++
	}
	if req.LastName != nil {
		setClauses = append(setClauses, fmt.Sprintf("last_name = $%d", argID))
		args = append(args, *req.LastName)
		argID++
	}
	if req.RUC != nil {
		setClauses = append(setClauses, fmt.Sprintf("ruc = $%d", argID))
		args = append(args, *req.RUC)
		argID++
	}
	if req.DNI != nil {
		setClauses = append(setClauses, fmt.Sprintf("dni = $%d", argID))
		args = append(args, *req.DNI)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE uid = $%d`, strings.Join(setClauses, ", "), argID)
	args = append(args, userID)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update user, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateProfilePictureURL(userID uuid.UUID, url string) error {
	query := `UPDATE users SET profile_picture_url = $1 WHERE uid = $2`
	res, err := q.DB.Exec(query, url, userID)
	if err != nil {
		return errors.New("unable to update profile picture, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) MarkVerified(userID uuid.UUID) error {
	query := `UPDATE users SET is_verified = TRUE WHERE uid = $1`
	res, err := q.DB.Exec(query, userID)
	if err != nil {
		return errors.New("unable to verify user, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) AddCredits(userID uuid.UUID, amount int) error {
	query := `UPDATE users SET number_of_credits = number_of_credits + $1 WHERE uid = $2`
	res, err := q.DB.Exec(query, amount, userID)
	if err != nil {
		return errors.New("unable to add credits, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) DeleteUser(id uuid.UUID) error {
	query := `DELETE FROM users WHERE uid = $1`

	res, err := q.DB.Exec(query, id)
	if err != nil {
		return errors.New("unable to delete user, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user deleted")
	}
	return nil
}
