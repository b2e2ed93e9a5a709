package entity

// User is a library account. Exactly one of the role levels is set:
// accounts created with the admin code get a manager level, everyone
// else starts as a grade-one student.
type User struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ManagerRoleLevel  *int   `json:"manager_role_level,omitempty"`
	StudentGradeLevel *int   `json:"student_grade_level,omitempty"`
}

func (u User) IsManager() bool {
	return u.ManagerRoleLevel != nil
}
