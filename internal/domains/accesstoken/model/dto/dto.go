package dto

import (
	"rentdesk/infras/jwt"
	"rentdesk/internal/domains/accesstoken/model"
	gModel "rentdesk/shared/model"
	"time"
)

type IssueAccessTokenRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

func (r *IssueAccessTokenRequest) ToModel(issued jwt.IssuedToken, user string, now time.Time) model.AccessToken {
	return model.AccessToken{
		ID:        issued.ID,
		BookingID: r.BookingID,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Metadata:  gModel.NewMetadata(now, user),
	}
}

type AccessTokenResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Expired   bool      `json:"expired"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *AccessTokenResponse) FromModel(m model.AccessToken, now time.Time) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Token = m.Token
	r.ExpiresAt = m.ExpiresAt
	r.Expired = m.Expired(now)
	r.CreatedAt = m.CreatedAt
}
