package models

type Role string

const (
	RoleStudent  Role = "student"
	RoleAssessor Role = "assessor"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAssessor || r == RoleAdmin
}
