package display

import "slices"

// IconNotFound is returned for weather codes that belong to no group
const IconNotFound = "NOT FOUND"

type iconGroup struct {
	codes []int
	icon  string
}

// weatherIcons groups WMO weather codes by pictogram. Lookup is first match in declaration order.
var weatherIcons = []iconGroup{
	{codes: []int{0}, icon: "☀️"},
	{codes: []int{1}, icon: "🌤"},
	{codes: []int{2}, icon: "⛅️"},
	{codes: []int{3}, icon: "☁️"},
	{codes: []int{45, 48}, icon: "🌫"},
	{codes: []int{51, 56, 61, 66, 80}, icon: "🌦"},
	{codes: []int{53, 55, 63, 65, 57, 67, 81, 82}, icon: "🌧"},
	{codes: []int{71, 73, 75, 77, 85, 86}, icon: "🌨"},
	{codes: []int{95}, icon: "🌩"},
	{codes: []int{96, 99}, icon: "⛈"},
}

// WeatherIcon maps a WMO weather code to its pictogram, or IconNotFound.
func WeatherIcon(code int) string {
	for _, group := range weatherIcons {
		if slices.Contains(group.codes, code) {
			return group.icon
		}
	}
	return IconNotFound
}
