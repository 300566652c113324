package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Matches one "(key1, key2)=(value1, [value2" group of an exclusion
// violation detail, e.g.
//
//	Key (resource_id, timespan)=(room-1, ["2022-12-25 07:00:00+00","2022-12-28 03:00:00+00"))
//	conflicts with existing key (resource_id, timespan)=(room-1, [...)).
var conflictGroupRe = regexp.MustCompile(
	`\((?P<k1>[a-zA-Z0-9_-]+),\s*(?P<k2>[a-zA-Z0-9_-]+)\)=\((?P<v1>[a-zA-Z0-9_-]+),\s*\[(?P<v2>[^\)\]]+)`,
)

var conflictTimeLayouts = []string{
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05-07:00",
}

const (
	conflictKeyResourceID = "resource_id"
	conflictKeyTimespan   = "timespan"
)

type ConflictWindow struct {
	ResourceID string
	Start      time.Time
	End        time.Time
}

// Conflict holds the window being inserted (New) and the one already stored
// (Old).
type Conflict struct {
	New ConflictWindow
	Old ConflictWindow
}

// ConflictInfo is either parsed (Conflict != nil) or carries the raw
// diagnostic text only.
type ConflictInfo struct {
	Conflict *Conflict
	Raw      string
}

func (c ConflictInfo) IsParsed() bool {
	return c.Conflict != nil
}

func (c ConflictInfo) String() string {
	if c.Conflict == nil {
		return c.Raw
	}
	return fmt.Sprintf("new %s [%s,%s) conflicts with old %s [%s,%s)",
		c.Conflict.New.ResourceID, c.Conflict.New.Start.Format(time.RFC3339), c.Conflict.New.End.Format(time.RFC3339),
		c.Conflict.Old.ResourceID, c.Conflict.Old.Start.Format(time.RFC3339), c.Conflict.Old.End.Format(time.RFC3339),
	)
}

// ParseConflictInfo never fails: anything that does not look like exactly two
// key groups degrades to the unparsed variant.
func ParseConflictInfo(detail string) ConflictInfo {
	conflict, ok := parseConflict(detail)
	if !ok {
		return ConflictInfo{Raw: detail}
	}
	return ConflictInfo{Conflict: conflict, Raw: detail}
}

func parseConflict(detail string) (*Conflict, bool) {
	groups := conflictGroupRe.FindAllStringSubmatch(detail, -1)
	if len(groups) != 2 {
		return nil, false
	}

	newWindow, ok := parseConflictWindow(groupToMap(groups[0]))
	if !ok {
		return nil, false
	}
	oldWindow, ok := parseConflictWindow(groupToMap(groups[1]))
	if !ok {
		return nil, false
	}

	return &Conflict{New: newWindow, Old: oldWindow}, true
}

func groupToMap(match []string) map[string]string {
	m := make(map[string]string, 2)
	var k1, k2, v1, v2 string
	for i, name := range conflictGroupRe.SubexpNames() {
		switch name {
		case "k1":
			k1 = match[i]
		case "k2":
			k2 = match[i]
		case "v1":
			v1 = match[i]
		case "v2":
			v2 = match[i]
		}
	}
	m[k1] = v1
	m[k2] = v2
	return m
}

func parseConflictWindow(values map[string]string) (ConflictWindow, bool) {
	resourceID, ok := values[conflictKeyResourceID]
	if !ok || resourceID == "" {
		return ConflictWindow{}, false
	}
	timespan, ok := values[conflictKeyTimespan]
	if !ok {
		return ConflictWindow{}, false
	}

	parts := strings.SplitN(strings.ReplaceAll(timespan, `"`, ""), ",", 2)
	if len(parts) != 2 {
		return ConflictWindow{}, false
	}
	start, ok := parseConflictTime(parts[0])
	if !ok {
		return ConflictWindow{}, false
	}
	end, ok := parseConflictTime(parts[1])
	if !ok {
		return ConflictWindow{}, false
	}

	return ConflictWindow{ResourceID: resourceID, Start: start, End: end}, true
}

func parseConflictTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range conflictTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ConflictError is returned when a write violates resource exclusivity.
type ConflictError struct {
	Info ConflictInfo
}

func (e *ConflictError) Error() string {
	return "reservation conflict: " + e.Info.String()
}
