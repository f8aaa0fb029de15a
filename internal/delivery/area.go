// Package delivery decides whether an address is inside the delivery area.
package delivery

import "strings"

// Area is a ZIP code whitelist. An Area built from no ZIPs accepts every
// address, since no restriction has been configured.
type Area struct {
	zips map[string]struct{}
}

func NewArea(zips []string) *Area {
	set := make(map[string]struct{}, len(zips))
	for _, z := range zips {
		if z = strings.TrimSpace(z); z != "" {
			set[z] = struct{}{}
		}
	}
	return &Area{zips: set}
}

func (a *Area) Restricted() bool {
	return len(a.zips) > 0
}

func (a *Area) Allows(zip string) bool {
	if !a.Restricted() {
		return true
	}
	_, ok := a.zips[strings.TrimSpace(zip)]
	return ok
}
