package models

type User struct {
	ID        string   `bson:"_id,omitempty"`
	Email     string   `bson:"email"`
	Username  string   `bson:"username"`
	Roles     []string `bson:"roles"`
	PatientID string   `bson:"patientId,omitempty"`
	TimeModel `bson:",inline"`
}
