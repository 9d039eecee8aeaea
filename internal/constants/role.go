package constants

type Role string

const (
	RoleEmployer Role = "employer"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleEmployee
}
