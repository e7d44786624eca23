package supplier

import "time"

// Supplier is a vendor the business purchases stock from.
type Supplier struct {
	ID                 string    `json:"id"`
	SupplierType       string    `json:"supplierType"`
	Name               string    `json:"name"`
	ContactPerson      string    `json:"contactPerson"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email,omitempty"`
	Location           string    `json:"location"`
	Country            string    `json:"country"`
	Website            string    `json:"website"`
	TaxPin             string    `json:"taxPin"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	BankAccountNumber  string    `json:"bankAccountNumber"`
	BankName           string    `json:"bankName"`
	PaymentTerms       string    `json:"paymentTerms"`
	Logo               string    `json:"logo"`
	Rating             float64   `json:"rating"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
