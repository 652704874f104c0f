package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIANA(t *testing.T) {
	cases := map[Enum]string{
		"TZ_UTC":                            "UTC",
		"TZ_EUROPE_PARIS":                   "Europe/Paris",
		"TZ_AMERICA_NEW_YORK":               "America/New_York",
		"TZ_AMERICA_ARGENTINA_BUENOS_AIRES": "America/Argentina/Buenos_Aires",
		"TZ_ASIA_TOKYO":                     "Asia/Tokyo",
		"TZ_AMERICA_PORT_AU_PRINCE":         "America/Port-au-Prince",
		"EUROPE_PARIS":                      "",
		"TZ_":                               "",
	}
	for in, want := range cases {
		require.Equal(t, want, IANA(in), string(in))
	}
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	require.Equal(t, time.UTC, Location(""))
	require.Equal(t, time.UTC, Location("TZ_NOWHERE_ATLANTIS"))
	require.Equal(t, time.UTC, Location("garbage"))
	require.Equal(t, "Europe/Paris", Location("TZ_EUROPE_PARIS").String())
}

func TestFormatDateToTZ(t *testing.T) {
	// 23:30 UTC is already the next day in Paris.
	require.Equal(t, "Mar. 04, 2024", FormatDateToTZ("2024-03-04T23:30:00Z", UTC, ""))
	require.Equal(t, "Mar. 05, 2024", FormatDateToTZ("2024-03-04T23:30:00Z", "TZ_EUROPE_PARIS", ""))
	require.Equal(t, "Mar. 04, 2024", FormatDateToTZ("2024-03-05T03:00:00.123Z", "TZ_AMERICA_NEW_YORK", DateLayout))
	require.Equal(t, "not a date", FormatDateToTZ("not a date", UTC, ""))
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("TZ_ASIA_TOKYO")
	require.Equal(t, "Jan. 01, 2024", f.Date("2023-12-31T20:00:00Z"))
	require.Equal(t, "05:00:00", f.Time("2023-12-31T20:00:00Z"))
	require.Equal(t, "Jan. 01, 2024 05:00:00", f.DateTime("2023-12-31T20:00:00Z"))
	require.Equal(t, "UTC+09:00", f.Offset(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	var zero Formatter
	require.Equal(t, "Dec. 31, 2023", zero.Date("2023-12-31T20:00:00Z"))
	require.Equal(t, UTC, NewFormatter("").Timezone)
	require.Equal(t, "UTC-05:00", NewFormatter("TZ_AMERICA_NEW_YORK").Offset(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestFormatter_BareDatesDoNotShift(t *testing.T) {
	require.Equal(t, "Mar. 04, 2024", NewFormatter("TZ_AMERICA_LOS_ANGELES").Date("2024-03-04"))
	require.Equal(t, "Mar. 04, 2024", FormatDateToTZ("2024-03-04", "TZ_ASIA_TOKYO", ""))
}

func TestLoadLocation_WithoutZoneinfo(t *testing.T) {
	t.Setenv("ZONEINFO", t.TempDir()+"/missing.zip")
	for _, tz := range []Enum{"TZ_EUROPE_PARIS", "TZ_AMERICA_NEW_YORK", "TZ_ASIA_KOLKATA", "TZ_AUSTRALIA_SYDNEY"} {
		loc, err := time.LoadLocation(IANA(tz))
		require.NoError(t, err, string(tz))
		require.Equal(t, IANA(tz), loc.String())
	}
}
