// Package address holds the best-effort pickup-address decomposition
// used to pre-fill collection records. The guess is advisory: callers
// present it for editing and never reject anything because of it.
package address

import "strings"

type Parts struct {
	BuildingNo string
	StreetName string
}

// Split guesses a building number and street name from a free-text
// pickup address. Addresses usually read "12B, Temple Road" or
// "12B - Temple Road"; comma wins over dash, and with no separator the
// whole address becomes the street name.
func Split(pickupAddress string) Parts {
	pickupAddress = strings.TrimSpace(pickupAddress)
	if pickupAddress == "" {
		return Parts{}
	}

	if parts := splitOn(pickupAddress, ",", ", "); parts != nil {
		return *parts
	}
	if parts := splitOn(pickupAddress, "-", " - "); parts != nil {
		return *parts
	}
	return Parts{StreetName: pickupAddress}
}

func splitOn(raw, sep, rejoin string) *Parts {
	pieces := strings.Split(raw, sep)
	if len(pieces) < 2 {
		return nil
	}
	trimmed := make([]string, 0, len(pieces))
	for _, p := range pieces {
		trimmed = append(trimmed, strings.TrimSpace(p))
	}
	return &Parts{
		BuildingNo: trimmed[0],
		StreetName: strings.Join(trimmed[1:], rejoin),
	}
}
