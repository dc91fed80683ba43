package dto

import (
	"strings"
	"time"

	"studyroom/internal/domains/staff/model"
	gModel "studyroom/shared/model"

	"github.com/google/uuid"
)

// ProvisionRequest creates a staff account or resets the password of an existing one.
type ProvisionRequest struct {
	Username string `toml:"username" validate:"required,max=100"`
	Password string `toml:"password" validate:"required,min=8"`
}

func (r *ProvisionRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *ProvisionRequest) ToModel(hash, actor string, now time.Time) model.Staff {
	return model.Staff{
		ID:           uuid.NewString(),
		Username:     r.Username,
		PasswordHash: hash,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  actor,
			ModifiedAt: now,
			ModifiedBy: actor,
		},
	}
}
