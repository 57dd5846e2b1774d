package extract

import (
	"time"

	"github.com/meteogo/bufrobs/bufr"
)

// computedColumn derives a value from component columns after extraction.
// A computed column is evaluated only when its name was requested, and a
// failed composition omits the column instead of failing the record.
type computedColumn struct {
	name  string
	deps  []string
	build func(rec *Record) (any, bool)
}

var computedColumns = []computedColumn{
	{
		name: "data_datetime",
		deps: []string{"year", "month", "day", "hour", "minute", "second"},
		build: func(rec *Record) (any, bool) {
			return datetimeFrom(rec, "year", "month", "day", "hour", "minute", "second")
		},
	},
	{
		name: "typical_datetime",
		deps: []string{"typicalYear", "typicalMonth", "typicalDay", "typicalHour", "typicalMinute", "typicalSecond"},
		build: func(rec *Record) (any, bool) {
			return datetimeFrom(rec, "typicalYear", "typicalMonth", "typicalDay", "typicalHour", "typicalMinute", "typicalSecond")
		},
	},
	{
		name: "WMO_station_id",
		deps: []string{"blockNumber", "stationNumber"},
		build: wmoStationID,
	},
}

// applyComputed appends each requested computed column that composes
// successfully.
func applyComputed(rec *Record, requested map[string]struct{}) {
	for _, col := range computedColumns {
		if _, ok := requested[col.name]; !ok {
			continue
		}
		if v, ok := col.build(rec); ok {
			rec.Set(col.name, v)
		}
	}
}

// datetimeFrom builds a UTC timestamp from calendar component entries. The
// seconds component defaults to zero when absent or missing; every other
// component is required and must form a valid calendar date.
func datetimeFrom(rec *Record, yearKey, monthKey, dayKey, hourKey, minuteKey, secondKey string) (any, bool) {
	year, ok := intComponent(rec, yearKey)
	if !ok {
		return nil, false
	}
	month, ok := intComponent(rec, monthKey)
	if !ok {
		return nil, false
	}
	day, ok := intComponent(rec, dayKey)
	if !ok {
		return nil, false
	}
	hour, ok := intComponent(rec, hourKey)
	if !ok {
		return nil, false
	}
	minute, ok := intComponent(rec, minuteKey)
	if !ok {
		return nil, false
	}
	second, ok := intComponent(rec, secondKey)
	if !ok {
		second = 0
	}

	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return nil, false
	}

	t := time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, time.UTC)
	// time.Date normalizes out of range days (April 31 becomes May 1);
	// reject those instead of inventing a date.
	if t.Day() != int(day) || t.Month() != time.Month(month) {
		return nil, false
	}

	return t, true
}

// wmoStationID combines the WMO block and station numbers into the five
// digit station identifier, block*1000 + station.
func wmoStationID(rec *Record) (any, bool) {
	block, ok := intComponent(rec, "blockNumber")
	if !ok {
		return nil, false
	}
	station, ok := intComponent(rec, "stationNumber")
	if !ok {
		return nil, false
	}

	return block*1000 + station, true
}

// intComponent reads an integer entry, treating absent and missing values
// alike.
func intComponent(rec *Record, name string) (int64, bool) {
	v, ok := rec.Get(name)
	if !ok || bufr.IsMissing(v) {
		return 0, false
	}

	return bufr.AsInt64(v)
}
