package entity

// PrescriptionState estado derivado do flag Active.
type PrescriptionState string

const (
	PrescriptionActive PrescriptionState = "ACTIVE"
	PrescriptionClosed PrescriptionState = "CLOSED"
)

// Prescription prescrição de um produto para um residente.
// IsTreatment=true indica tratamento temporário (encerra ao zerar o saldo);
// false indica uso contínuo.
type Prescription struct {
	ID          string `json:"id"`
	ResidentID  string `json:"resident_id"`
	ProductID   string `json:"product_id"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	Active      bool   `json:"active"`
	IsTreatment bool   `json:"is_treatment"`
}

// State ACTIVE ou CLOSED.
func (p Prescription) State() PrescriptionState {
	if p.Active {
		return PrescriptionActive
	}
	return PrescriptionClosed
}
