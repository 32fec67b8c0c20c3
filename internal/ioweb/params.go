package ioweb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tirthatlas/tirthdb/pkg/search"
)

// parseParams validates the raw query string and produces search
// parameters with defaults applied. Validation failures carry a
// client-facing message and map to 400; nothing reaches the
// compositor unvalidated.
func parseParams(values url.Values) (*search.Params, error) {
	p := &search.Params{
		Radius: search.DefaultRadius,
		Limit:  search.DefaultLimit,
	}

	q := strings.TrimSpace(values.Get("q"))
	if len(q) > search.MaxQueryLen {
		return nil, fmt.Errorf(
			"parameter 'q' must be at most %d characters",
			search.MaxQueryLen)
	}
	p.Query = q

	var err error
	if p.Place, err = filterValue(values, "place"); err != nil {
		return nil, err
	}
	if p.Sect, err = filterValue(values, "sect"); err != nil {
		return nil, err
	}
	if p.Deity, err = filterValue(values, "deity"); err != nil {
		return nil, err
	}
	if p.InstanceOf, err = filterValue(values, "instanceOf"); err != nil {
		return nil, err
	}

	lat, hasLat, err := floatValue(values, "latitude")
	if err != nil {
		return nil, err
	}
	lon, hasLon, err := floatValue(values, "longitude")
	if err != nil {
		return nil, err
	}
	if hasLat != hasLon {
		return nil, fmt.Errorf(
			"parameters 'latitude' and 'longitude' must be provided together")
	}
	if hasLat {
		if lat < -90 || lat > 90 {
			return nil, fmt.Errorf(
				"parameter 'latitude' must be between -90 and 90")
		}
		if lon < -180 || lon > 180 {
			return nil, fmt.Errorf(
				"parameter 'longitude' must be between -180 and 180")
		}
		p.Latitude, p.Longitude = &lat, &lon
	}

	if radius, ok, err := floatValue(values, "radius"); err != nil {
		return nil, err
	} else if ok {
		if radius < 0 || radius > search.MaxRadius {
			return nil, fmt.Errorf(
				"parameter 'radius' must be between 0 and %d",
				int(search.MaxRadius))
		}
		p.Radius = radius
	}

	if limit, ok, err := intValue(values, "limit"); err != nil {
		return nil, err
	} else if ok {
		if limit < 1 || limit > search.MaxLimit {
			return nil, fmt.Errorf(
				"parameter 'limit' must be between 1 and %d",
				search.MaxLimit)
		}
		p.Limit = limit
	}

	if offset, ok, err := intValue(values, "offset"); err != nil {
		return nil, err
	} else if ok {
		if offset < 0 || offset > search.MaxOffset {
			return nil, fmt.Errorf(
				"parameter 'offset' must be between 0 and %d",
				search.MaxOffset)
		}
		p.Offset = offset
	}

	return p, nil
}

// filterValue reads a category filter: trimmed, upper-cased, at most
// MaxFilterLen characters. Category codes are short by construction;
// length is the only slot for garbage input.
func filterValue(values url.Values, name string) (string, error) {
	v := strings.TrimSpace(values.Get(name))
	if v == "" {
		return "", nil
	}
	if len(v) > search.MaxFilterLen {
		return "", fmt.Errorf(
			"parameter '%s' must be at most %d characters",
			name, search.MaxFilterLen)
	}
	return strings.ToUpper(v), nil
}

func floatValue(values url.Values, name string) (float64, bool, error) {
	v := strings.TrimSpace(values.Get(name))
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parameter '%s' must be a number", name)
	}
	return f, true, nil
}

func intValue(values url.Values, name string) (int, bool, error) {
	v := strings.TrimSpace(values.Get(name))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("parameter '%s' must be an integer", name)
	}
	return n, true, nil
}
