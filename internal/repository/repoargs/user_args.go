package repoargs

import "time"

type CreateUser struct {
	Username string
	Email    string
	Password string
	IsStaff  bool
}

type SubmitKYC struct {
	UserID      int64
	FullName    string
	DateOfBirth time.Time
	NICNumber   string
	Address     string
	Phone       string
}
