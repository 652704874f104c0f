// Package timezone maps the API's TimezoneEnum values (TZ_UTC, TZ_EUROPE_PARIS, ...)
// to IANA locations and formats API timestamps in them.
package timezone

import (
	"strings"
	"sync"
	"time"
	// Embedded zone database, so slim images without /usr/share/zoneinfo
	// still resolve organization timezones.
	_ "time/tzdata"
)

type Enum string

const (
	UTC Enum = "TZ_UTC"

	// DateLayout renders dates like "Mar. 04, 2024".
	DateLayout = "Jan. 02, 2006"
	// TimeLayout renders the time of day of an event.
	TimeLayout = "15:04:05"
	// DateTimeLayout is used in detail panels.
	DateTimeLayout = "Jan. 02, 2006 15:04:05"
)

// Names whose IANA form cannot be derived by splitting on the first underscore.
var explicit = map[Enum]string{
	"TZ_UTC":                            "UTC",
	"TZ_AMERICA_ARGENTINA_BUENOS_AIRES": "America/Argentina/Buenos_Aires",
	"TZ_AMERICA_ARGENTINA_CORDOBA":      "America/Argentina/Cordoba",
	"TZ_AMERICA_INDIANA_INDIANAPOLIS":   "America/Indiana/Indianapolis",
	"TZ_AMERICA_KENTUCKY_LOUISVILLE":    "America/Kentucky/Louisville",
	"TZ_AMERICA_NORTH_DAKOTA_CENTER":    "America/North_Dakota/Center",
	"TZ_AMERICA_PORT_OF_SPAIN":          "America/Port_of_Spain",
	"TZ_AMERICA_PORT_AU_PRINCE":         "America/Port-au-Prince",
	"TZ_AFRICA_DAR_ES_SALAAM":           "Africa/Dar_es_Salaam",
	"TZ_AFRICA_PORTO_NOVO":              "Africa/Porto-Novo",
	"TZ_ASIA_HO_CHI_MINH":               "Asia/Ho_Chi_Minh",
	"TZ_ASIA_UST_NERA":                  "Asia/Ust-Nera",
	"TZ_ETC_UTC":                        "Etc/UTC",
	"TZ_EUROPE_ISLE_OF_MAN":             "Europe/Isle_of_Man",
	"TZ_PACIFIC_PORT_MORESBY":           "Pacific/Port_Moresby",
	"TZ_ANTARCTICA_DUMONT_D_URVILLE":    "Antarctica/DumontDUrville",
	"TZ_AMERICA_BLANC_SABLON":           "America/Blanc-Sablon",
	"TZ_AMERICA_ARGENTINA_SAN_LUIS":     "America/Argentina/San_Luis",
	"TZ_AMERICA_ARGENTINA_RIO_GALLEGOS": "America/Argentina/Rio_Gallegos",
	"TZ_AMERICA_INDIANA_KNOX":           "America/Indiana/Knox",
	"TZ_AMERICA_NORTH_DAKOTA_NEW_SALEM": "America/North_Dakota/New_Salem",
	"TZ_AMERICA_KENTUCKY_MONTICELLO":    "America/Kentucky/Monticello",
	"TZ_AMERICA_ARGENTINA_SAN_JUAN":     "America/Argentina/San_Juan",
	"TZ_AMERICA_ARGENTINA_LA_RIOJA":     "America/Argentina/La_Rioja",
	"TZ_AMERICA_ARGENTINA_JUJUY":        "America/Argentina/Jujuy",
	"TZ_AMERICA_ARGENTINA_MENDOZA":      "America/Argentina/Mendoza",
	"TZ_AMERICA_ARGENTINA_USHUAIA":      "America/Argentina/Ushuaia",
	"TZ_AMERICA_ARGENTINA_TUCUMAN":      "America/Argentina/Tucuman",
	"TZ_AMERICA_ARGENTINA_CATAMARCA":    "America/Argentina/Catamarca",
	"TZ_AMERICA_ARGENTINA_SALTA":        "America/Argentina/Salta",
	"TZ_AMERICA_INDIANA_VEVAY":          "America/Indiana/Vevay",
	"TZ_AMERICA_INDIANA_VINCENNES":      "America/Indiana/Vincennes",
	"TZ_AMERICA_INDIANA_WINAMAC":        "America/Indiana/Winamac",
	"TZ_AMERICA_INDIANA_MARENGO":        "America/Indiana/Marengo",
	"TZ_AMERICA_INDIANA_PETERSBURG":     "America/Indiana/Petersburg",
	"TZ_AMERICA_INDIANA_TELL_CITY":      "America/Indiana/Tell_City",
	"TZ_AMERICA_NORTH_DAKOTA_BEULAH":    "America/North_Dakota/Beulah",
}

var (
	locationsMu sync.RWMutex
	locations   = map[Enum]*time.Location{}
)

// IANA returns the IANA name for tz, or "" when tz is not a TimezoneEnum value.
func IANA(tz Enum) string {
	if name, ok := explicit[tz]; ok {
		return name
	}
	raw := strings.TrimPrefix(string(tz), "TZ_")
	if raw == string(tz) || raw == "" {
		return ""
	}
	area, city, found := strings.Cut(raw, "_")
	if !found {
		return titleWord(area)
	}
	parts := strings.Split(city, "_")
	for i, p := range parts {
		parts[i] = titleWord(p)
	}
	return titleWord(area) + "/" + strings.Join(parts, "_")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// Location resolves tz, falling back to UTC for empty or unknown values.
func Location(tz Enum) *time.Location {
	if tz == "" || tz == UTC {
		return time.UTC
	}
	locationsMu.RLock()
	loc, ok := locations[tz]
	locationsMu.RUnlock()
	if ok {
		return loc
	}

	loc = time.UTC
	if name := IANA(tz); name != "" {
		if l, err := time.LoadLocation(name); err == nil {
			loc = l
		}
	}
	locationsMu.Lock()
	locations[tz] = loc
	locationsMu.Unlock()
	return loc
}

// Parse reads an API timestamp (RFC 3339, with or without fractional seconds, or a bare date).
func Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateToTZ formats an API timestamp in tz. Unparseable input is returned unchanged.
func FormatDateToTZ(value string, tz Enum, layout string) string {
	if layout == "" {
		layout = DateLayout
	}
	t, ok := parseIn(value, Location(tz))
	if !ok {
		return value
	}
	return t.Format(layout)
}

// parseIn reads value and moves it to loc. A bare date is a calendar day, so
// it is taken as is in loc instead of being shifted from UTC.
func parseIn(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return d, true
	}
	t, ok := Parse(value)
	if !ok {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// Formatter binds a timezone for views.
type Formatter struct {
	Timezone Enum
	loc      *time.Location
}

func NewFormatter(tz Enum) Formatter {
	if tz == "" {
		tz = UTC
	}
	return Formatter{Timezone: tz, loc: Location(tz)}
}

func (f Formatter) location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

// Date formats value with DateLayout.
func (f Formatter) Date(value string) string {
	return f.Format(value, DateLayout)
}

func (f Formatter) Time(value string) string {
	return f.Format(value, TimeLayout)
}

func (f Formatter) DateTime(value string) string {
	return f.Format(value, DateTimeLayout)
}

func (f Formatter) Format(value, layout string) string {
	t, ok := parseIn(value, f.location())
	if !ok {
		return value
	}
	return t.Format(layout)
}

// Offset renders the zone's current UTC offset, e.g. "UTC+01:00".
func (f Formatter) Offset(at time.Time) string {
	_, offset := at.In(f.location()).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return "UTC" + sign + time.Date(0, 1, 1, offset/3600, (offset%3600)/60, 0, 0, time.UTC).Format("15:04")
}
