package repository

import (
	"database/sql"

	"libraryapp/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail looks an account up by its natural key. Returns
// sql.ErrNoRows when no account uses the email.
func (r *UserRepository) GetByEmail(email string) (entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(`
        SELECT user_id, name, email, manager_role_level, student_grade_level
        FROM users
        WHERE email = $1
    `, email).Scan(&u.ID, &u.Name, &u.Email, &u.ManagerRoleLevel, &u.StudentGradeLevel)

	return u, err
}

// Create inserts a new account and returns it with the generated id.
func (r *UserRepository) Create(name, email string, manager bool) (entity.User, error) {
	u := entity.User{Name: name, Email: email}
	level := 1
	if manager {
		u.ManagerRoleLevel = &level
	} else {
		u.StudentGradeLevel = &level
	}

	err := r.db.QueryRow(`
        INSERT INTO users (name, email, manager_role_level, student_grade_level)
        VALUES ($1, $2, $3, $4)
        RETURNING user_id
    `, name, email, u.ManagerRoleLevel, u.StudentGradeLevel).Scan(&u.ID)

	return u, err
}
