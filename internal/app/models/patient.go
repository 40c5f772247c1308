package models

// BloodType is one of the 8 ABO/Rh combinations.
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

func (b BloodType) Valid() bool {
	switch b {
	case BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative:
		return true
	}
	return false
}

// Patient mirrors one record of the hosted record store. Treated as an
// immutable snapshot per request; ownership of the data stays with the store.
type Patient struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Age         int       `json:"age" bson:"age"`
	BloodType   BloodType `json:"bloodType" bson:"bloodType"`
	Allergies   []string  `json:"allergies" bson:"allergies"`
	Medications []string  `json:"medications" bson:"medications"`
	Conditions  []string  `json:"conditions" bson:"conditions"`
	TimeModel   `bson:",inline"`
}
