package installment

import (
	"time"

	"github.com/petshield/petshield/internal/types"
)

// Installment is a single scheduled charge of a contract. InstallmentNumber
// is 1-based and strictly increasing within a contract.
type Installment struct {
	ID                string                  `json:"id"`
	ContractID        string                  `json:"contract_id"`
	InstallmentNumber int                     `json:"installment_number"`
	DueDate           time.Time               `json:"due_date"`
	Amount            types.Money             `json:"amount"`
	InstallmentStatus types.InstallmentStatus `json:"installment_status"`
	types.BaseModel
}
