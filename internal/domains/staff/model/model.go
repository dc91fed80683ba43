package model

import "studyroom/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldPasswordHash = "password_hash"
)

type Staff struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}
