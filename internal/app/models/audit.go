package models

import "time"

// AuditLog records one inference invocation. Written best-effort after the
// response is computed; a failed write never rolls the response back.
type AuditLog struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	UserID    string            `json:"userId" bson:"userId"`
	Action    string            `json:"action" bson:"action"`
	Metadata  map[string]string `json:"metadata" bson:"metadata"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}
