package rategrid

import "hotelmate/models"

func f(v float64) *float64 { return &v }

func u(v uint) *uint { return &v }

func str(s string) *string { return &s }

func paxRow(date string, defaultRate float64, pax map[int]float64) models.HotelRate {
	row := models.HotelRate{Date: date, DefaultRate: defaultRate}
	for n, v := range pax {
		_ = row.SetPax(n, f(v))
	}
	return row
}
