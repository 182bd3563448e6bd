// Package gst derives GST place-of-supply codes from addresses.
package gst

import (
	"fmt"
	"strings"
)

// OtherCountriesNumber is the state number used for addresses abroad.
const OtherCountriesNumber = "96"

var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep Islands",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"96": "Other Countries",
	"97": "Other Territory",
}

var stateNumbers = func() map[string]string {
	m := make(map[string]string, len(stateNames))
	for num, name := range stateNames {
		m[strings.ToLower(name)] = num
	}
	return m
}()

// StateName returns the state name for a two-digit state number.
func StateName(number string) (string, bool) {
	name, ok := stateNames[normalizeNumber(number)]
	return name, ok
}

// StateNumber returns the two-digit number of a state name. Matching ignores
// case and surrounding space.
func StateNumber(name string) (string, bool) {
	num, ok := stateNumbers[strings.ToLower(strings.TrimSpace(name))]
	return num, ok
}

// Code formats a place-of-supply code, e.g. "07-Delhi".
func Code(number, name string) string {
	return fmt.Sprintf("%s-%s", number, name)
}
