package model

type Result struct {
	ID         int64  `json:"id" db:"id"`
	Date       string `json:"date" db:"date"`
	Time       string `json:"time" db:"time"`
	CouponName string `json:"coupon_name" db:"coupon_name"`
	Number     string `json:"number" db:"number"`
}
