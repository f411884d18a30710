package models

import "time"

// Bonus is a one-off payment awarded to an employee.
type Bonus struct {
	ID           int64     `json:"id,omitempty"`
	EmployeeID   int64     `json:"employeeId"`
	EmployeeName string    `json:"employeeName,omitempty"`
	Type         string    `json:"type,omitempty"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Reason       string    `json:"reason,omitempty"`
	AwardedAt    time.Time `json:"awardedAt,omitempty"`
}
