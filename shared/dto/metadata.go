package dto

import (
	"rentdesk/shared/constant"
	"rentdesk/shared/model"
	"rentdesk/shared/timezone"
	"time"
)

// Metadata is the audit trail shown next to a record, times in office time.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  stamp(source.CreatedAt),
		CreatedBy:  source.CreatedBy,
		ModifiedAt: stamp(source.ModifiedAt),
		ModifiedBy: source.ModifiedBy,
	}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
