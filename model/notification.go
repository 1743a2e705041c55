package model

import "github.com/muhammadheryan/storefront/constant"

// OTPDelivery is one code to hand to a delivery channel
type OTPDelivery struct {
	Channel   constant.DeliveryChannel `json:"channel"`
	Recipient string                   `json:"recipient"`
	Code      string                   `json:"code"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
