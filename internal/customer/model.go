package customer

import "time"

// Customer is a buyer record with optional credit terms.
type Customer struct {
	ID             string     `json:"id"`
	CustomerType   string     `json:"customerType"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Phone          string     `json:"phone"`
	Gender         string     `json:"gender"`
	MaxCreditLimit float64    `json:"maxCreditLimit"`
	MaxCreditDays  int        `json:"maxCreditDays"`
	TaxPin         string     `json:"taxPin"`
	DOB            *time.Time `json:"dob,omitempty"`
	Email          string     `json:"email,omitempty"`
	NationalID     string     `json:"nationalID,omitempty"`
	Country        string     `json:"country"`
	Location       string     `json:"location"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
