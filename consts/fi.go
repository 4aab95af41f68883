package consts

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FiCityName is keyed by the folded Finnish or Swedish city name.
var FiCityName map[string]string

func init() {
	FiCityName = make(map[string]string)

	FiCityName["oulu"] = "Oulu"
	FiCityName["uleaborg"] = "Oulu"
	FiCityName["helsinki"] = "Helsinki"
	FiCityName["helsingfors"] = "Helsinki"
	FiCityName["tampere"] = "Tampere"
	FiCityName["tammerfors"] = "Tampere"
	FiCityName["turku"] = "Turku"
	FiCityName["abo"] = "Turku"
	FiCityName["jyvaskyla"] = "Jyväskylä"
}

// FoldName lower-cases a place name and strips its diacritics.
func FoldName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// FiCityKey - convert a Finnish or Swedish city name into its display name
func FiCityKey(city string) (string, error) {
	name, ok := FiCityName[FoldName(city)]
	if !ok {
		return "", fmt.Errorf("%s not exist", city)
	}
	return name, nil
}
