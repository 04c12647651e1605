package reservation

// TotalPrice charges pricePerNight for every occupied night.
func TotalPrice(dates DateRange, pricePerNight int) int {
	if pricePerNight < 0 {
		return 0
	}
	return dates.Nights() * pricePerNight
}
