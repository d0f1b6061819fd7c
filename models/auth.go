package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by tokens for the administrative override endpoints.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}
